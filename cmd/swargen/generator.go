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

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ajroetker/go-swar/swar/meta"
	"golang.org/x/tools/imports"
)

// popcountLevels is the number of reduction levels of a 64 bit population
// count.
const popcountLevels = 6

var (
	laneWidths = []int{1, 2, 4, 8, 16, 32, 64}
	wordWidths = []int{8, 16, 32, 64}
)

// Generator writes the mask tables.
type Generator struct {
	OutputFile string       // Output Go file
	PackageOut string       // Output package name
	Logger     *slog.Logger // Defaults to slog.Default()
}

// Run generates the source and writes it to OutputFile.
func (g *Generator) Run() error {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	src, err := g.Generate()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(g.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	logger.Debug("wrote mask tables", "file", g.OutputFile, "bytes", len(src))
	return nil
}

// Generate returns the formatted source of the mask tables.
func (g *Generator) Generate() ([]byte, error) {
	if g.PackageOut == "" {
		return nil, fmt.Errorf("no output package name")
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by swargen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.PackageOut)

	buf.WriteString("// Reduction masks of the population count tree, one per level. Level L\n")
	buf.WriteString("// keeps the low 2^L bits of every 2^(L+1) bit field.\n")
	buf.WriteString("const (\n")
	for level := range popcountLevels {
		fmt.Fprintf(&buf, "\tpopcountMask%d = %s\n", level, hexLiteral(PopcountMask(level), 64))
	}
	buf.WriteString(")\n\n")

	g.emitLaneTable(&buf, "LSBs", "lowest", func(lane int) uint64 { return 1 })
	buf.WriteString("\n")
	g.emitLaneTable(&buf, "MSBs", "highest", func(lane int) uint64 { return 1 << (lane - 1) })

	formatted, err := imports.Process(g.OutputFile, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

// emitLaneTable writes one constant per (lane width, word width) pair whose
// value repeats bit(lane) into every lane.
func (g *Generator) emitLaneTable(buf *bytes.Buffer, prefix, which string, bit func(lane int) uint64) {
	fmt.Fprintf(buf, "// %s{N}x{W} has the %s bit of every N-bit lane of a W-bit word set.\n", prefix, which)
	buf.WriteString("const (\n")
	for _, word := range wordWidths {
		for _, lane := range laneWidths {
			if lane > word {
				continue
			}
			v := RepeatIn(word, bit(lane), lane)
			fmt.Fprintf(buf, "\t%s%dx%d = %s\n", prefix, lane, word, hexLiteral(v, word))
		}
	}
	buf.WriteString(")\n")
}

// PopcountMask returns the reduction mask of a population count level: the
// low 2^level bits of every 2^(level+1) bit field.
func PopcountMask(level int) uint64 {
	ones := meta.RepeatCount[uint64](1, 1, 1<<level)
	return meta.Repeat(ones, 1<<(level+1))
}

// RepeatIn repeats pattern into an unsigned integer of word bits.
func RepeatIn(word int, pattern uint64, patternBits int) uint64 {
	switch word {
	case 8:
		return uint64(meta.Repeat(uint8(pattern), patternBits))
	case 16:
		return uint64(meta.Repeat(uint16(pattern), patternBits))
	case 32:
		return uint64(meta.Repeat(uint32(pattern), patternBits))
	default:
		return meta.Repeat(pattern, patternBits)
	}
}

// hexLiteral formats v as a zero padded hex literal of width bits.
func hexLiteral(v uint64, width int) string {
	return fmt.Sprintf("0x%0*x", width/4, v)
}
