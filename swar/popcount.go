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

package swar

import (
	"math/bits"

	"github.com/ajroetker/go-swar/swar/meta"
)

//go:generate go run ../cmd/swargen -output zz_masks.go -pkg swar

// logicLevels is the deepest reduction level computed with pure logic when the
// built-in path is enabled. Deeper levels count whole 16, 32 or 64 bit fields
// with math/bits instead.
const logicLevels = 2

var popcountMasks = [...]uint64{
	popcountMask0,
	popcountMask1,
	popcountMask2,
	popcountMask3,
	popcountMask4,
	popcountMask5,
}

// Popcount counts the set bits of every 2^(level+1) bit field of v and returns
// the counts packed in place of those fields. Level 5 is the Hamming weight of
// the whole word. level must be in [0, 5].
//
// Whether a level is computed by the reduction tree or by counting chunks with
// math/bits is fixed at build time (see the purego build tag); both give the
// same result.
func Popcount(level int, v uint64) uint64 {
	if hardwarePopcount && level > logicLevels {
		return PopcountBuiltin(level-2, v)
	}
	return PopcountLogic(level, v)
}

// HammingWeight returns the number of set bits in v.
func HammingWeight(v uint64) int {
	return int(Popcount(5, v))
}

// PopcountLogic is the pure reduction tree behind Popcount. Each level adds
// neighbouring fields of the previous level, doubling the field width.
func PopcountLogic(level int, v uint64) uint64 {
	// Count of every bit pair: 00->00, 01->01, 10->01, 11->10.
	v -= (v >> 1) & popcountMask0
	for l := 1; l <= level; l++ {
		m, shift := popcountMasks[l], 1<<l
		v = (v>>shift)&m + v&m
	}
	return v
}

// PopcountBuiltin counts the set bits of every 2^(level+3) bit chunk of v with
// math/bits and packs the counts back in place of the chunks. level must be in
// [0, 3]; PopcountBuiltin(level-2, v) matches PopcountLogic(level, v) for
// levels 2 through 5.
func PopcountBuiltin(level int, v uint64) uint64 {
	chunk := 1 << (level + 3)
	var rv uint64
	for n := 64 - chunk; n >= 0; n -= chunk {
		rv |= uint64(onesCount(v>>n, chunk)) << n
	}
	return rv
}

// onesCount counts the set bits in the low width bits of v.
func onesCount(v uint64, width int) int {
	switch width {
	case 8:
		return bits.OnesCount8(uint8(v))
	case 16:
		return bits.OnesCount16(uint16(v))
	case 32:
		return bits.OnesCount32(uint32(v))
	default:
		return bits.OnesCount64(v)
	}
}

// LanePopcount replaces every lane of s with the number of bits set in it.
func LanePopcount[L Width, T Word](s SWAR[L, T]) SWAR[L, T] {
	n := LaneBits[L]()
	if n == 1 {
		return s
	}
	return SWAR[L, T]{v: T(Popcount(meta.LogFloor(uint64(n))-1, uint64(s.v)))}
}
