// Copyright 2025 go-swar Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bitcount computes Hamming weights and Hamming distances of bitmaps
// stored as []uint64, one word at a time with the swar population count.
//
// The per-word kernel is chosen once at start-up: when swar.HardwarePopcount
// reports a population count instruction every word is counted whole;
// otherwise the byte-level reduction tree of swar is run on each word and the
// per-byte counts of up to 31 words are accumulated in SWAR lanes before
// being summed, which amortizes the final reduction levels.
package bitcount

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/ajroetker/go-swar/swar"
	"github.com/ajroetker/go-swar/swar/contrib/workerpool"
	"golang.org/x/sync/errgroup"
)

// ErrLengthMismatch is returned when two bitmaps do not have the same number
// of words.
var ErrLengthMismatch = errors.New("bitcount: bitmaps differ in length")

// DefaultChunk is the number of words each goroutine of DistanceContext
// handles when no chunk size is given.
const DefaultChunk = 4096

// byteBlock is how many words of per-byte counts (at most 8 each) fit in
// 8-bit lanes without overflow: 31 * 8 = 248.
const byteBlock = 31

// wordSource returns word i of the bitmap being counted.
type wordSource func(i int) uint64

// kernel counts the set bits of the first n words of a source.
type kernel func(n int, word wordSource) uint64

var (
	countKernel kernel = countBuiltin
	kernelName         = swar.PathBuiltin
)

// bytePairs keeps the low byte of every 16-bit lane.
var bytePairs = swar.MakeBitmask[swar.Bits16, uint64](0xFF)

func init() {
	if !swar.HardwarePopcount() {
		countKernel = countLogic
		kernelName = swar.PathLogic
	}
}

// Kernel returns the name of the per-word kernel in use.
func Kernel() string {
	return kernelName.String()
}

func countBuiltin(n int, word wordSource) uint64 {
	var total int
	for i := range n {
		total += swar.HammingWeight(word(i))
	}
	return uint64(total)
}

func countLogic(n int, word wordSource) uint64 {
	var total uint64
	for start := 0; start < n; start += byteBlock {
		var acc uint64
		for i := start; i < min(start+byteBlock, n); i++ {
			acc += swar.PopcountLogic(2, word(i))
		}
		// Byte lanes hold at most 248; pairs of them fit in 16-bit lanes,
		// whose sum (at most 1984) fits in the top 16 bits after the multiply.
		acc = acc&bytePairs + (acc>>8)&bytePairs
		total += (acc * swar.LSBs16x64) >> 48
	}
	return total
}

// Count returns the number of set bits in words.
func Count(words []uint64) int {
	return int(countKernel(len(words), func(i int) uint64 { return words[i] }))
}

// Distance returns the number of bit positions where a and b differ.
func Distance(a, b []uint64) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d words", ErrLengthMismatch, len(a), len(b))
	}
	return int(distance(a, b)), nil
}

func distance(a, b []uint64) uint64 {
	return countKernel(len(a), func(i int) uint64 { return a[i] ^ b[i] })
}

// ParallelCount is Count split across the workers of pool.
func ParallelCount(pool *workerpool.Pool, words []uint64) int {
	return int(pool.ParallelReduce(len(words), func(start, end int) uint64 {
		chunk := words[start:end]
		return countKernel(len(chunk), func(i int) uint64 { return chunk[i] })
	}))
}

// DistanceContext is Distance split into chunks of chunk words, at most
// GOMAXPROCS of them in flight. It stops early and returns the context's
// error when ctx is done. A chunk <= 0 uses DefaultChunk.
func DistanceContext(ctx context.Context, a, b []uint64, chunk int) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d words", ErrLengthMismatch, len(a), len(b))
	}
	if chunk <= 0 {
		chunk = DefaultChunk
	}

	partials := make([]uint64, (len(a)+chunk-1)/chunk)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range partials {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := i * chunk
			end := min(start+chunk, len(a))
			partials[i] = distance(a[start:end], b[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("bitcount: distance: %w", err)
	}

	var total uint64
	for _, p := range partials {
		total += p
	}
	return int(total), nil
}
