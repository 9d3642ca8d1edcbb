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

import "math/bits"

// This file provides lane-agnostic bit isolation helpers. They work on the raw
// backing integer rather than on a SWAR value.

// ClearLSB returns v with its lowest set bit cleared. ClearLSB(0) is 0.
func ClearLSB[T Word](v T) T {
	return v & (v - 1)
}

// IsolateLSB returns v with only its lowest set bit kept. IsolateLSB(0) is 0.
//
// IsolateLSB(v) | ClearLSB(v) == v and IsolateLSB(v) & ClearLSB(v) == 0.
func IsolateLSB[T Word](v T) T {
	return v &^ ClearLSB(v)
}

// MaskLowBits returns a word with the low LaneBits[L] bits set.
func MaskLowBits[L Width, T Word]() T {
	// Built from the top bit down so a lane as wide as T does not overflow.
	top := T(1) << (LaneBits[L]() - 1)
	return top | (top - 1)
}

// IsolateLSBits keeps the LaneBits[L] bits of v that start at its lowest set
// bit, and clears everything else. IsolateLSBits(0) is 0.
func IsolateLSBits[L Width, T Word](v T) T {
	return v & (MaskLowBits[L, T]() << bits.TrailingZeros64(uint64(v)))
}

// ClearLSBits clears the LaneBits[L] bits of v that start at its lowest set
// bit. ClearLSBits(0) is 0.
func ClearLSBits[L Width, T Word](v T) T {
	return v &^ (MaskLowBits[L, T]() << bits.TrailingZeros64(uint64(v)))
}

// MSBIndex returns the position of the most significant set bit of v.
// v must not be zero.
func MSBIndex[T Word](v T) int {
	return bits.Len64(uint64(v)) - 1
}

// LSBIndex returns the position of the least significant set bit of v.
// v must not be zero.
func LSBIndex[T Word](v T) int {
	return bits.TrailingZeros64(uint64(v))
}
