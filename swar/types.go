// Package swar packs several fixed-width unsigned lanes into one machine word
// and operates on all of them at once with ordinary integer instructions
// (SIMD within a register).
//
// A lane-packed word is parameterized by its lane width, one of the marker
// types Bits1 ... Bits64, and by its backing unsigned integer type:
//
//	import "github.com/ajroetker/go-swar/swar"
//
//	// Eight 8-bit lanes in a uint64, lane 0 in the low byte.
//	w := swar.FromLanes[swar.Bits8, uint64](3, 7, 255, 0, 128, 1, 9, 64)
//
//	// Which lanes hold at least 100?
//	ge := swar.GreaterEqual(w, 100)
//	ge.Test(2) // true
//	ge.Best()  // 4, the highest lane that holds at least 100
//
// The operations in this package do not validate their inputs. Lane indexes
// out of range and most or least significant bit queries on a zero word are
// undefined; callers validate at their own boundary.
package swar

import "github.com/ajroetker/go-swar/swar/meta"

// Word is the constraint for the backing integer of a lane-packed word.
type Word interface {
	meta.Unsigned
}

// Bits1 through Bits64 name the lane width of a lane-packed word. They carry
// no data; only their type matters.
type (
	Bits1  struct{}
	Bits2  struct{}
	Bits4  struct{}
	Bits8  struct{}
	Bits16 struct{}
	Bits32 struct{}
	Bits64 struct{}
)

func (Bits1) laneBits() int  { return 1 }
func (Bits2) laneBits() int  { return 2 }
func (Bits4) laneBits() int  { return 4 }
func (Bits8) laneBits() int  { return 8 }
func (Bits16) laneBits() int { return 16 }
func (Bits32) laneBits() int { return 32 }
func (Bits64) laneBits() int { return 64 }

// lsbs and msbs return the 64-bit lane masks from zz_masks.go. Every lane
// width divides 64, so truncating them to a narrower word keeps whole lanes.
func (Bits1) lsbs() uint64  { return LSBs1x64 }
func (Bits2) lsbs() uint64  { return LSBs2x64 }
func (Bits4) lsbs() uint64  { return LSBs4x64 }
func (Bits8) lsbs() uint64  { return LSBs8x64 }
func (Bits16) lsbs() uint64 { return LSBs16x64 }
func (Bits32) lsbs() uint64 { return LSBs32x64 }
func (Bits64) lsbs() uint64 { return LSBs64x64 }

func (Bits1) msbs() uint64  { return MSBs1x64 }
func (Bits2) msbs() uint64  { return MSBs2x64 }
func (Bits4) msbs() uint64  { return MSBs4x64 }
func (Bits8) msbs() uint64  { return MSBs8x64 }
func (Bits16) msbs() uint64 { return MSBs16x64 }
func (Bits32) msbs() uint64 { return MSBs32x64 }
func (Bits64) msbs() uint64 { return MSBs64x64 }

// Width is the closed set of lane widths. Every member divides every word
// width it fits in, so a lane never straddles the top of the word.
type Width interface {
	Bits1 | Bits2 | Bits4 | Bits8 | Bits16 | Bits32 | Bits64
	laneBits() int
	lsbs() uint64
	msbs() uint64
}

// CompareWidth is Width without Bits1: comparisons need a guard bit on top of
// at least one value bit.
type CompareWidth interface {
	Bits2 | Bits4 | Bits8 | Bits16 | Bits32 | Bits64
	laneBits() int
	lsbs() uint64
	msbs() uint64
}

// LaneBits returns the number of bits per lane for L.
func LaneBits[L Width]() int {
	var l L
	return l.laneBits()
}

// WordBits returns the number of bits in T.
func WordBits[T Word]() int {
	return meta.BitWidth[T]()
}

// LaneCount returns how many L-wide lanes fit in T.
func LaneCount[L Width, T Word]() int {
	return WordBits[T]() / LaneBits[L]()
}

// Valid reports whether L lanes fit in T. The type system rejects lane widths
// that do not divide a power of two, but cannot reject a lane wider than its
// word (Bits64 over uint32). Such configurations are unsupported.
func Valid[L Width, T Word]() bool {
	return LaneBits[L]() <= WordBits[T]()
}

// laneMask has the low LaneBits[L] bits set.
func laneMask[L Width, T Word]() T {
	return MaskLowBits[L, T]()
}

// MakeBitmask repeats the lane-wide pattern into every lane of T. Bits of
// pattern above the lane width are dropped.
func MakeBitmask[L Width, T Word](pattern T) T {
	// One copy per lane; the lanes are disjoint so the product never carries.
	return (pattern & laneMask[L, T]()) * LSBs[L, T]()
}

// LSBs returns the word with the lowest bit of every lane set.
func LSBs[L Width, T Word]() T {
	var l L
	return T(l.lsbs())
}

// MSBs returns the word with the highest bit of every lane set. In a
// BooleanSWAR these are the truth bits.
func MSBs[L Width, T Word]() T {
	var l L
	return T(l.msbs())
}
