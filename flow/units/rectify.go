package units

import (
	"fmt"
	"math"
)

// Rectify replaces each sample with its absolute value.
type Rectify struct {
	size int
}

// NewRectify returns a full-wave rectifier for blocks of the given size.
func NewRectify(size int) (*Rectify, error) {
	if size <= 0 {
		return nil, fmt.Errorf("units: rectify size %d: %w", size, ErrInvalidSize)
	}
	return &Rectify{size: size}, nil
}

// InputCount returns the block size.
func (r *Rectify) InputCount() int { return r.size }

// OutputCount returns the block size.
func (r *Rectify) OutputCount() int { return r.size }

// Process writes the absolute value of each input sample to out.
func (r *Rectify) Process(in, out []float64) error {
	if err := checkBlock(in, out, r.size, r.size); err != nil {
		return err
	}
	for i, v := range in {
		out[i] = math.Abs(v)
	}
	return nil
}
