package swar

import (
	"os"
	"strconv"
)

// PopcountPath names the code that counts bits at the deepest levels of
// Popcount on this build and CPU.
type PopcountPath int

const (
	// PathLogic indicates the pure SWAR reduction tree.
	PathLogic PopcountPath = iota

	// PathBuiltin indicates math/bits lowering to a population count
	// instruction (POPCNT on x86-64, CNT on arm64).
	PathBuiltin
)

// String returns a human-readable name for the path.
func (p PopcountPath) String() string {
	switch p {
	case PathLogic:
		return "logic"
	case PathBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}

// currentPath is the detected popcount path for this runtime.
// Set by init() in dispatch_*.go files.
var currentPath PopcountPath

// CurrentPath returns the popcount path in use.
func CurrentPath() PopcountPath {
	return currentPath
}

// HardwarePopcount reports whether counting bits with math/bits costs a single
// instruction on this CPU. It is false when built with the purego tag or when
// SWAR_NO_HW is set. Popcount itself is not affected; consumers that pick a
// kernel at run time (contrib/bitcount) are.
func HardwarePopcount() bool {
	return currentPath == PathBuiltin
}

// NoHardwareEnv checks if the SWAR_NO_HW environment variable is set.
// When set, hardware population count is reported as unavailable regardless
// of CPU capabilities. This is useful for testing and debugging.
func NoHardwareEnv() bool {
	val := os.Getenv("SWAR_NO_HW")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setLogicMode disables the builtin path.
func setLogicMode() {
	currentPath = PathLogic
}
