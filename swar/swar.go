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
	"strconv"
	"strings"
)

// SWAR is a lane-packed word: LaneCount[L, T] unsigned lanes of LaneBits[L]
// bits each, lane i stored at bit offset i*LaneBits[L].
//
// SWAR is a value type. Operations that look like mutations (Clear, Set)
// return a modified copy. SWAR values cannot be compared with ==; use
// HorizontalEquality so the call site states what is being compared.
type SWAR[L Width, T Word] struct {
	_ [0]func()
	v T
}

// New wraps v as a lane-packed word.
func New[L Width, T Word](v T) SWAR[L, T] {
	return SWAR[L, T]{v: v}
}

// FromLanes builds a word from per-lane values, lane 0 first. Values are
// truncated to the lane width; extra values beyond LaneCount are ignored.
func FromLanes[L Width, T Word](lanes ...T) SWAR[L, T] {
	n := LaneBits[L]()
	mask := laneMask[L, T]()
	var v T
	for i, lane := range lanes[:min(len(lanes), LaneCount[L, T]())] {
		v |= (lane & mask) << (i * n)
	}
	return SWAR[L, T]{v: v}
}

// Value returns the backing integer.
func (s SWAR[L, T]) Value() T {
	return s.v
}

// At returns the value held in lane.
func (s SWAR[L, T]) At(lane int) T {
	return (s.v >> (lane * LaneBits[L]())) & laneMask[L, T]()
}

// Clear returns a copy with every bit of lane zeroed.
func (s SWAR[L, T]) Clear(lane int) SWAR[L, T] {
	return SWAR[L, T]{v: s.v &^ (laneMask[L, T]() << (lane * LaneBits[L]()))}
}

// Set returns a copy with bit set inside lane.
func (s SWAR[L, T]) Set(lane, bit int) SWAR[L, T] {
	return SWAR[L, T]{v: s.v | T(1)<<(lane*LaneBits[L]()+bit)}
}

// Top returns the index of the lane holding the most significant set bit.
// The word must not be zero.
func (s SWAR[L, T]) Top() int {
	return MSBIndex(s.v) / LaneBits[L]()
}

// LSBIndex returns the index of the lane holding the least significant set
// bit. The word must not be zero.
func (s SWAR[L, T]) LSBIndex() int {
	return LSBIndex(s.v) / LaneBits[L]()
}

// Or returns the bitwise OR of two words.
func (s SWAR[L, T]) Or(o SWAR[L, T]) SWAR[L, T] {
	return SWAR[L, T]{v: s.v | o.v}
}

// And returns the bitwise AND of two words.
func (s SWAR[L, T]) And(o SWAR[L, T]) SWAR[L, T] {
	return SWAR[L, T]{v: s.v & o.v}
}

// Xor returns the bitwise XOR of two words.
func (s SWAR[L, T]) Xor(o SWAR[L, T]) SWAR[L, T] {
	return SWAR[L, T]{v: s.v ^ o.v}
}

// Lanes returns the lane values, lane 0 first.
func (s SWAR[L, T]) Lanes() []T {
	out := make([]T, LaneCount[L, T]())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// String renders the lanes in decimal, lane 0 first.
func (s SWAR[L, T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, lane := range s.Lanes() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(lane), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

// HorizontalEquality reports whether two words hold the same bits.
func HorizontalEquality[L Width, T Word](left, right SWAR[L, T]) bool {
	return left.v == right.v
}

// Broadcast multiplies v by the word with a 1 in every lane, copying a small
// scalar held in lane 0 into all lanes. The product must not overflow T; a
// scalar that does not fit in one lane spills into its neighbours.
func Broadcast[L Width, T Word](v SWAR[L, T]) SWAR[L, T] {
	return SWAR[L, T]{v: v.v * LSBs[L, T]()}
}
