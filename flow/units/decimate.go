package units

import (
	"errors"
	"fmt"
)

// ErrInvalidFactor is returned by NewDecimate for factors < 1.
var ErrInvalidFactor = errors.New("decimation factor must be >= 1")

// Decimate keeps every factor-th sample, starting with the first.
// No anti-alias filtering is applied; put a filtering unit in front
// when the input is not already band-limited.
type Decimate struct {
	size   int
	factor int
}

// NewDecimate returns a decimation unit for blocks of the given size.
func NewDecimate(size, factor int) (*Decimate, error) {
	if size <= 0 {
		return nil, fmt.Errorf("units: decimate size %d: %w", size, ErrInvalidSize)
	}
	if factor < 1 {
		return nil, fmt.Errorf("units: decimate factor %d: %w", factor, ErrInvalidFactor)
	}
	return &Decimate{size: size, factor: factor}, nil
}

// InputCount returns the block size.
func (d *Decimate) InputCount() int { return d.size }

// OutputCount returns the number of retained samples per block.
func (d *Decimate) OutputCount() int {
	return (d.size + d.factor - 1) / d.factor
}

// Process writes every factor-th input sample to out.
func (d *Decimate) Process(in, out []float64) error {
	if err := checkBlock(in, out, d.size, d.OutputCount()); err != nil {
		return err
	}
	for i := range out {
		out[i] = in[i*d.factor]
	}
	return nil
}
