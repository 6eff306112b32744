package units

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Gain scales each sample by a constant factor.
type Gain struct {
	size int
	gain float64
}

// NewGain returns a gain unit for blocks of the given size.
func NewGain(size int, gain float64) (*Gain, error) {
	if size <= 0 {
		return nil, fmt.Errorf("units: gain size %d: %w", size, ErrInvalidSize)
	}
	return &Gain{size: size, gain: gain}, nil
}

// InputCount returns the block size.
func (g *Gain) InputCount() int { return g.size }

// OutputCount returns the block size.
func (g *Gain) OutputCount() int { return g.size }

// Process writes in scaled by the gain factor to out.
func (g *Gain) Process(in, out []float64) error {
	if err := checkBlock(in, out, g.size, g.size); err != nil {
		return err
	}
	vecmath.ScaleBlock(out, in, g.gain)
	return nil
}
