// Package alignedbuf provides float64 buffers whose first element sits
// on a 64-byte boundary, suited to wide SIMD loads and stores. A Pool
// is the release counterpart: buffers go back to it instead of a free
// call.
package alignedbuf

import "unsafe"

// Alignment is the guaranteed byte alignment of a Buffer's first
// element. 64 bytes covers a cache line and the widest current SIMD
// registers (AVX-512).
const Alignment = 64

// alignWords is the worst-case padding in float64 elements.
const alignWords = Alignment / 8

// Buffer is a float64 slice with an aligned first element.
type Buffer struct {
	raw     []float64
	samples []float64
}

// New returns a zero-filled aligned buffer of the given length.
// It returns nil for a negative length; callers must check the result
// before use. A length of 0 yields a valid zero-length buffer whose
// backing store is still aligned.
func New(length int) *Buffer {
	if length < 0 {
		return nil
	}
	b := &Buffer{}
	b.alloc(length)
	return b
}

// alloc points samples at an aligned window of length elements inside
// a fresh over-allocated backing slice.
func (b *Buffer) alloc(length int) {
	raw := make([]float64, length+alignWords)
	off := 0
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	if rem := addr % Alignment; rem != 0 {
		off = int((Alignment - rem) / unsafe.Sizeof(float64(0)))
	}
	b.raw = raw
	b.samples = raw[off : off+length : len(raw)]
}

// Samples returns the aligned slice. Mutations are visible through the
// Buffer and vice versa.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// resize sets the length to n, reusing the backing store when it is
// large enough. Reslicing keeps the start address, so alignment is
// preserved. Contents are unspecified afterwards; callers zero as
// needed.
func (b *Buffer) resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
		return
	}
	b.alloc(n)
}
