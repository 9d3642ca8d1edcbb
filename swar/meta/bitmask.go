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

package meta

import "unsafe"

// Unsigned is the set of backing integer types a pattern can be repeated into.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitWidth returns the number of bits in T.
func BitWidth[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Repeat replicates the low patternBits bits of pattern across the whole of T.
//
// The copied span doubles on every step. A pattern wider than half of T is
// returned unchanged.
//
// patternBits should be a power of two no wider than T. Other widths do not
// reach the width of T by doubling and are unsupported: the result keeps a
// truncated copy at the top (Repeat(uint64(5), 3) is 0xDB6DB6DB6DB6DB6D),
// which callers must strip with ClearTop. The swar lane widths are all powers
// of two.
func Repeat[T Unsigned](pattern T, patternBits int) T {
	width := BitWidth[T]()
	if patternBits <= 0 || 2*patternBits > width {
		return pattern
	}
	v := pattern
	for size := patternBits; size < width; size *= 2 {
		v |= v << size
	}
	return v
}

// RepeatCount replicates pattern copies times, without truncation beyond what T
// imposes. RepeatCount(1, 1, 4) is 0b1111.
func RepeatCount[T Unsigned](pattern T, patternBits, copies int) T {
	v := pattern
	for ; copies > 1; copies-- {
		v = v<<patternBits | pattern
	}
	return v
}

// ClearTop returns the mask that keeps only the whole copies of a
// patternBits-wide pattern in T. When patternBits divides the width of T the
// mask is all ones.
//
// A 12 bit pattern in 32 bits keeps 24 bits: 0x00FFFFFF.
func ClearTop[T Unsigned](patternBits int) T {
	width := BitWidth[T]()
	if patternBits <= 0 || width%patternBits == 0 {
		return ^T(0)
	}
	keep := width - width%patternBits
	return T(1)<<keep - 1
}
