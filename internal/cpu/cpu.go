// Package cpu detects the SIMD capabilities relevant to aligned block
// processing. Detection runs once, lazily, and is safe to query from
// multiple goroutines.
package cpu

import "sync"

// Features describes the detected SIMD capabilities.
type Features struct {
	// x86/amd64
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM
	HasNEON bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detected   Features
	detectOnce sync.Once
)

// Detect returns the CPU features of the current system.
func Detect() Features {
	detectOnce.Do(func() {
		detected = detectImpl()
	})
	return detected
}

// VectorWidth returns the widest usable SIMD register width in bytes,
// or 8 (one float64) when no SIMD extension is available.
func VectorWidth(f Features) int {
	switch {
	case f.HasAVX512:
		return 64
	case f.HasAVX2, f.HasAVX:
		return 32
	case f.HasSSE2, f.HasNEON:
		return 16
	default:
		return 8
	}
}

// Names returns the detected extension names in display order.
func Names(f Features) []string {
	var names []string
	if f.HasSSE2 {
		names = append(names, "SSE2")
	}
	if f.HasAVX {
		names = append(names, "AVX")
	}
	if f.HasAVX2 {
		names = append(names, "AVX2")
	}
	if f.HasAVX512 {
		names = append(names, "AVX-512")
	}
	if f.HasNEON {
		names = append(names, "NEON")
	}
	return names
}
