//go:build arm64

package swar

import "golang.org/x/sys/cpu"

func init() {
	// Check for SWAR_NO_HW environment variable first
	if !hardwarePopcount || NoHardwareEnv() {
		setLogicMode()
		return
	}

	// ARM64 (AArch64) always has ASIMD, which carries the CNT instruction
	// math/bits uses. We check it for consistency.
	if cpu.ARM64.HasASIMD {
		currentPath = PathBuiltin
	} else {
		setLogicMode()
	}
}
