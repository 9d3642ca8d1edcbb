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
	"testing"

	"github.com/ajroetker/go-swar/swar/meta"
)

type maskRow struct {
	name       string
	lsbs, msbs func() uint64
	wantLSBs   uint64
	wantMSBs   uint64
}

func row[L Width, T Word](name string, lsbs, msbs uint64) maskRow {
	return maskRow{
		name:     name,
		lsbs:     func() uint64 { return uint64(LSBs[L, T]()) },
		msbs:     func() uint64 { return uint64(MSBs[L, T]()) },
		wantLSBs: lsbs,
		wantMSBs: msbs,
	}
}

// TestGeneratedMasks checks the swargen tables against the generic masks.
func TestGeneratedMasks(t *testing.T) {
	rows := []maskRow{
		row[Bits1, uint8]("1x8", LSBs1x8, MSBs1x8),
		row[Bits2, uint8]("2x8", LSBs2x8, MSBs2x8),
		row[Bits4, uint8]("4x8", LSBs4x8, MSBs4x8),
		row[Bits8, uint8]("8x8", LSBs8x8, MSBs8x8),
		row[Bits1, uint16]("1x16", LSBs1x16, MSBs1x16),
		row[Bits2, uint16]("2x16", LSBs2x16, MSBs2x16),
		row[Bits4, uint16]("4x16", LSBs4x16, MSBs4x16),
		row[Bits8, uint16]("8x16", LSBs8x16, MSBs8x16),
		row[Bits16, uint16]("16x16", LSBs16x16, MSBs16x16),
		row[Bits1, uint32]("1x32", LSBs1x32, MSBs1x32),
		row[Bits2, uint32]("2x32", LSBs2x32, MSBs2x32),
		row[Bits4, uint32]("4x32", LSBs4x32, MSBs4x32),
		row[Bits8, uint32]("8x32", LSBs8x32, MSBs8x32),
		row[Bits16, uint32]("16x32", LSBs16x32, MSBs16x32),
		row[Bits32, uint32]("32x32", LSBs32x32, MSBs32x32),
		row[Bits1, uint64]("1x64", LSBs1x64, MSBs1x64),
		row[Bits2, uint64]("2x64", LSBs2x64, MSBs2x64),
		row[Bits4, uint64]("4x64", LSBs4x64, MSBs4x64),
		row[Bits8, uint64]("8x64", LSBs8x64, MSBs8x64),
		row[Bits16, uint64]("16x64", LSBs16x64, MSBs16x64),
		row[Bits32, uint64]("32x64", LSBs32x64, MSBs32x64),
		row[Bits64, uint64]("64x64", LSBs64x64, MSBs64x64),
	}
	for _, r := range rows {
		t.Run(r.name, func(t *testing.T) {
			if got := r.lsbs(); got != r.wantLSBs {
				t.Errorf("LSBs: got %#x, want %#x", got, r.wantLSBs)
			}
			if got := r.msbs(); got != r.wantMSBs {
				t.Errorf("MSBs: got %#x, want %#x", got, r.wantMSBs)
			}
		})
	}
}

func checkMasksMatchRepeat[L Width, T Word](t *testing.T) {
	t.Helper()
	n := LaneBits[L]()
	if got, want := LSBs[L, T](), meta.Repeat(T(1), n); got != want {
		t.Errorf("LSBs[%d bits, %d bit word]: got %#x, want %#x", n, WordBits[T](), got, want)
	}
	if got, want := MSBs[L, T](), meta.Repeat(T(1)<<(n-1), n); got != want {
		t.Errorf("MSBs[%d bits, %d bit word]: got %#x, want %#x", n, WordBits[T](), got, want)
	}
	for _, pattern := range []T{0, 1, 3, 5, 0x7F, 0xA5, 0xFF} {
		pattern &= laneMask[L, T]()
		if got, want := MakeBitmask[L](pattern), meta.Repeat(pattern, n); got != want {
			t.Errorf("MakeBitmask[%d bits](%#x): got %#x, want %#x", n, pattern, got, want)
		}
	}
}

// TestMasksMatchRepeat checks the table-driven masks against the pattern
// generator for every supported lane and word width.
func TestMasksMatchRepeat(t *testing.T) {
	checkMasksMatchRepeat[Bits1, uint8](t)
	checkMasksMatchRepeat[Bits2, uint8](t)
	checkMasksMatchRepeat[Bits4, uint8](t)
	checkMasksMatchRepeat[Bits8, uint8](t)
	checkMasksMatchRepeat[Bits1, uint16](t)
	checkMasksMatchRepeat[Bits4, uint16](t)
	checkMasksMatchRepeat[Bits16, uint16](t)
	checkMasksMatchRepeat[Bits2, uint32](t)
	checkMasksMatchRepeat[Bits8, uint32](t)
	checkMasksMatchRepeat[Bits32, uint32](t)
	checkMasksMatchRepeat[Bits1, uint64](t)
	checkMasksMatchRepeat[Bits2, uint64](t)
	checkMasksMatchRepeat[Bits4, uint64](t)
	checkMasksMatchRepeat[Bits8, uint64](t)
	checkMasksMatchRepeat[Bits16, uint64](t)
	checkMasksMatchRepeat[Bits32, uint64](t)
	checkMasksMatchRepeat[Bits64, uint64](t)
}
