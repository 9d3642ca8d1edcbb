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

// BooleanSWAR is a lane-packed word of truth values. Lane i is true when its
// most significant bit is set; the other bits of a lane carry no meaning.
//
// A BooleanSWAR only comes out of a comparison (GreaterEqual and friends) or
// out of another BooleanSWAR. The zero value has every lane false.
type BooleanSWAR[L Width, T Word] struct {
	w SWAR[L, T]
}

func booleanOf[L Width, T Word](v T) BooleanSWAR[L, T] {
	return BooleanSWAR[L, T]{w: SWAR[L, T]{v: v}}
}

// truthBit returns the mask of the truth bit of lane.
func truthBit[L Width, T Word](lane int) T {
	n := LaneBits[L]()
	return T(1) << (lane*n + n - 1)
}

// Value returns the backing integer.
func (b BooleanSWAR[L, T]) Value() T {
	return b.w.v
}

// Word returns the truth values as a plain lane-packed word.
func (b BooleanSWAR[L, T]) Word() SWAR[L, T] {
	return b.w
}

// Not flips the truth value of every lane. Not(Not(b)) is b.
func (b BooleanSWAR[L, T]) Not() BooleanSWAR[L, T] {
	return booleanOf[L](b.w.v ^ MSBs[L, T]())
}

// And is true in the lanes where both b and o are true.
func (b BooleanSWAR[L, T]) And(o BooleanSWAR[L, T]) BooleanSWAR[L, T] {
	return booleanOf[L](b.w.v & o.w.v)
}

// Or is true in the lanes where b or o is true.
func (b BooleanSWAR[L, T]) Or(o BooleanSWAR[L, T]) BooleanSWAR[L, T] {
	return booleanOf[L](b.w.v | o.w.v)
}

// Clear makes lane false and leaves the other lanes untouched.
func (b BooleanSWAR[L, T]) Clear(lane int) BooleanSWAR[L, T] {
	return booleanOf[L](b.w.v &^ truthBit[L, T](lane))
}

// Test reports whether lane is true.
func (b BooleanSWAR[L, T]) Test(lane int) bool {
	return b.w.v&truthBit[L, T](lane) != 0
}

// Best returns the highest-indexed true lane. At least one lane must be true.
func (b BooleanSWAR[L, T]) Best() int {
	return b.w.Top()
}

// First returns the lowest-indexed true lane. At least one lane must be true.
func (b BooleanSWAR[L, T]) First() int {
	return b.w.LSBIndex()
}

// Any reports whether at least one lane is true.
func (b BooleanSWAR[L, T]) Any() bool {
	return b.w.v != 0
}

// Count returns the number of true lanes.
func (b BooleanSWAR[L, T]) Count() int {
	return bits.OnesCount64(uint64(b.w.v & MSBs[L, T]()))
}

// BooleanEquality reports whether two truth words hold the same bits.
func BooleanEquality[L Width, T Word](left, right BooleanSWAR[L, T]) bool {
	return HorizontalEquality(left.w, right.w)
}

// GreaterEqualMSBOff compares lane by lane, left >= right, for words whose
// lanes all have their most significant bit clear.
//
// The most significant bit of every lane of left is forced on before right is
// subtracted. That guard bit absorbs any borrow, so no lane reaches into its
// neighbour, and it survives exactly when the lane of left was not smaller.
func GreaterEqualMSBOff[L CompareWidth, T Word](left, right SWAR[L, T]) BooleanSWAR[L, T] {
	msbs := MSBs[L, T]()
	return booleanOf[L](((left.v | msbs) - right.v) & msbs)
}

// GreaterEqualLanes compares lane by lane, left >= right, over the full range
// of each lane.
//
// The guard bit trick runs on the low LaneBits-1 bits; the most significant
// bits decide the lanes where they differ.
func GreaterEqualLanes[L CompareWidth, T Word](left, right SWAR[L, T]) BooleanSWAR[L, T] {
	msbs := MSBs[L, T]()
	low := ((left.v | msbs) - (right.v &^ msbs)) & msbs
	return booleanOf[L]((left.v&^right.v | ^(left.v^right.v)&low) & msbs)
}

// GreaterEqual returns the lanes of v that hold at least k. k must fit in one
// lane.
func GreaterEqual[L CompareWidth, T Word](v SWAR[L, T], k T) BooleanSWAR[L, T] {
	return GreaterEqualLanes(v, Broadcast(New[L](k)))
}
