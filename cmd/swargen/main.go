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

// Command swargen generates the constant mask tables of the swar package.
//
// Usage:
//
//	swargen -output zz_masks.go -pkg swar
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/swargen -output zz_masks.go -pkg swar
//
// The generated file holds the reduction masks of the population count tree
// and, for every lane width dividing every word width from 8 to 64 bits, the
// words with the lowest and highest bit of each lane set. Every value is
// computed with the same pattern generator the swar package uses at run time.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var (
	outputFile = flag.String("output", "zz_masks.go", "Output Go file")
	packageOut = flag.String("pkg", "swar", "Output package name")
	verbose    = flag.Bool("v", false, "Verbose output for debugging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputFile: *outputFile,
		PackageOut: *packageOut,
		Logger:     logger,
	}

	if err := gen.Run(); err != nil {
		logger.Error("generation failed", "output", *outputFile, "err", err)
		os.Exit(1)
	}
}
