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

// Package scan searches byte slices eight bytes at a time.
//
// Each group of eight bytes is loaded little-endian into a uint64 and treated
// as eight 8-bit SWAR lanes, so byte i of the group is lane i. A match test
// turns the group into a swar.BooleanSWAR whose First, Best and Count give the
// first match, the last match and the number of matches without looking at
// the bytes one by one.
//
//	scan.IndexByte([]byte("hello, world"), 'w')  // 7
//	scan.Count([]byte("banana"), 'a')            // 3
package scan

import (
	"encoding/binary"

	"github.com/ajroetker/go-swar/swar"
)

const groupSize = 8

type (
	group = swar.SWAR[swar.Bits8, uint64]
	lanes = swar.BooleanSWAR[swar.Bits8, uint64]
)

// laneIndexes holds i in lane i.
var laneIndexes = swar.FromLanes[swar.Bits8, uint64](0, 1, 2, 3, 4, 5, 6, 7)

// load reads up to eight bytes of s into a group. Missing bytes are zero.
func load(s []byte) group {
	if len(s) >= groupSize {
		return swar.New[swar.Bits8](binary.LittleEndian.Uint64(s))
	}
	var buf [groupSize]byte
	copy(buf[:], s)
	return swar.New[swar.Bits8](binary.LittleEndian.Uint64(buf[:]))
}

// present is true in the first n lanes.
func present(n int) lanes {
	return swar.GreaterEqual(laneIndexes, uint64(n)).Not()
}

// equal is true in the lanes of g that hold c.
func equal(g group, c byte) lanes {
	diff := g.Xor(swar.Broadcast(swar.New[swar.Bits8](uint64(c))))
	return swar.GreaterEqual(diff, 1).Not()
}

// matchGroups calls fn on every group of s with the lanes selected by match,
// restricted to bytes that exist. fn returns false to stop.
func matchGroups(s []byte, match func(group) lanes, fn func(offset int, m lanes) bool) {
	i := 0
	for ; i+groupSize <= len(s); i += groupSize {
		if !fn(i, match(load(s[i:]))) {
			return
		}
	}
	if i < len(s) {
		fn(i, match(load(s[i:])).And(present(len(s)-i)))
	}
}

// IndexByte returns the index of the first c in s, or -1.
func IndexByte(s []byte, c byte) int {
	return index(s, func(g group) lanes { return equal(g, c) })
}

// IndexZero returns the index of the first zero byte in s, or -1.
func IndexZero(s []byte) int {
	return index(s, func(g group) lanes { return swar.GreaterEqual(g, 1).Not() })
}

// IndexNonASCII returns the index of the first byte of s with its high bit set,
// or -1.
func IndexNonASCII(s []byte) int {
	return index(s, func(g group) lanes { return swar.GreaterEqual(g, 0x80) })
}

func index(s []byte, match func(group) lanes) int {
	found := -1
	matchGroups(s, match, func(offset int, m lanes) bool {
		if m.Any() {
			found = offset + m.First()
			return false
		}
		return true
	})
	return found
}

// LastIndexByte returns the index of the last c in s, or -1.
func LastIndexByte(s []byte, c byte) int {
	tail := len(s) % groupSize
	end := len(s) - tail
	if tail > 0 {
		if m := equal(load(s[end:]), c).And(present(tail)); m.Any() {
			return end + m.Best()
		}
	}
	for i := end - groupSize; i >= 0; i -= groupSize {
		if m := equal(load(s[i:]), c); m.Any() {
			return i + m.Best()
		}
	}
	return -1
}

// Count returns the number of bytes of s equal to c.
func Count(s []byte, c byte) int {
	n := 0
	matchGroups(s, func(g group) lanes { return equal(g, c) }, func(_ int, m lanes) bool {
		n += m.Count()
		return true
	})
	return n
}
