//go:build !amd64 && !arm64

package swar

func init() {
	// Other architectures are not probed; math/bits may still use an
	// instruction, but it is not reported.
	setLogicMode()
}
