//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectImpl is the fallback for other architectures: no SIMD flags.
func detectImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
