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

// Package meta builds the repeating bit patterns that every SWAR mask is
// derived from.
//
// A pattern of P significant bits is replicated across an unsigned integer by
// doubling: P, 2P, 4P, ... until the width of the integer is covered. Bits that
// spill past the top are dropped by the integer type itself, so a pattern
// whose width does not divide the integer width leaves a partial copy at the
// top. ClearTop gives the mask that removes it; Repeat never applies it on its
// own.
//
//	meta.Repeat[uint16](0xF0, 8)      // 0xF0F0
//	meta.Repeat[uint32](0xFED, 12)    // 0xEDFEDFED (partial copy on top)
//	meta.ClearTop[uint32](12)         // 0x00FFFFFF
package meta
