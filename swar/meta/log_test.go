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

import "testing"

func TestLogFloor(t *testing.T) {
	tests := []struct {
		input uint64
		want  int
	}{
		{0, -1},
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{255, 7},
		{256, 8},
		{1 << 63, 63},
		{^uint64(0), 63},
	}
	for _, tt := range tests {
		if got := LogFloor(tt.input); got != tt.want {
			t.Errorf("LogFloor(%#x): got %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestLogCeiling(t *testing.T) {
	tests := []struct {
		input uint64
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{100, 7},
		{128, 7},
		{129, 8},
		{1 << 63, 63},
		{1<<63 + 1, 64},
	}
	for _, tt := range tests {
		if got := LogCeiling(tt.input); got != tt.want {
			t.Errorf("LogCeiling(%d): got %d, want %d", tt.input, got, tt.want)
		}
	}
}
