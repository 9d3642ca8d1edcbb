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

import "math/bits"

// LogFloor returns floor(log2(v)). LogFloor(0) is -1.
func LogFloor(v uint64) int {
	return bits.Len64(v) - 1
}

// LogCeiling returns ceil(log2(v)). LogCeiling(0) and LogCeiling(1) are 0.
func LogCeiling(v uint64) int {
	if v <= 1 {
		return 0
	}
	return bits.Len64(v - 1)
}
