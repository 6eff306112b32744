package units

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Modulate multiplies each sample with a fixed coefficient vector,
// e.g. a window or an envelope.
type Modulate struct {
	coeffs []float64
}

// NewModulate returns a modulation unit over a copy of coeffs.
// The block size equals len(coeffs).
func NewModulate(coeffs []float64) (*Modulate, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("units: modulate coefficients empty: %w", ErrInvalidSize)
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Modulate{coeffs: c}, nil
}

// InputCount returns the coefficient count.
func (m *Modulate) InputCount() int { return len(m.coeffs) }

// OutputCount returns the coefficient count.
func (m *Modulate) OutputCount() int { return len(m.coeffs) }

// Process writes the elementwise product of in and the coefficients to out.
func (m *Modulate) Process(in, out []float64) error {
	if err := checkBlock(in, out, len(m.coeffs), len(m.coeffs)); err != nil {
		return err
	}
	vecmath.MulBlock(out, in, m.coeffs)
	return nil
}
