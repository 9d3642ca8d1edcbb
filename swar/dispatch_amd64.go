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

import "golang.org/x/sys/cpu"

func init() {
	// Check if hardware counting is disabled via environment variable
	if !hardwarePopcount || NoHardwareEnv() {
		setLogicMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// Without POPCNT, math/bits falls back to a software sequence equivalent
	// to the reduction tree.
	if cpu.X86.HasPOPCNT {
		currentPath = PathBuiltin
		return
	}
	setLogicMode()
}
