// Package units provides ready-made processing units for flow
// workflows: gain, offset, coefficient modulation, decimation,
// rectification, and spectral magnitude. SIMD-accelerated block math
// comes from algo-vecmath where a matching kernel exists.
package units

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned by constructors for non-positive block sizes.
var ErrInvalidSize = errors.New("block size must be > 0")

// ErrBlockLength is returned by Process when a slice does not match the
// unit's declared counts.
var ErrBlockLength = errors.New("block length mismatch")

// checkBlock validates that in and out match the declared counts.
func checkBlock(in, out []float64, wantIn, wantOut int) error {
	if len(in) != wantIn {
		return fmt.Errorf("units: input block %d, want %d: %w", len(in), wantIn, ErrBlockLength)
	}
	if len(out) != wantOut {
		return fmt.Errorf("units: output block %d, want %d: %w", len(out), wantOut, ErrBlockLength)
	}
	return nil
}
