//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectImpl reports NEON availability. On ARMv8 Advanced SIMD is
// mandatory, so this is effectively always true.
func detectImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
