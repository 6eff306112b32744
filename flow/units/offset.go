package units

import "fmt"

// Offset adds a constant to each sample.
type Offset struct {
	size   int
	offset float64
}

// NewOffset returns an offset unit for blocks of the given size.
func NewOffset(size int, offset float64) (*Offset, error) {
	if size <= 0 {
		return nil, fmt.Errorf("units: offset size %d: %w", size, ErrInvalidSize)
	}
	return &Offset{size: size, offset: offset}, nil
}

// InputCount returns the block size.
func (o *Offset) InputCount() int { return o.size }

// OutputCount returns the block size.
func (o *Offset) OutputCount() int { return o.size }

// Process writes in shifted by the offset to out.
func (o *Offset) Process(in, out []float64) error {
	if err := checkBlock(in, out, o.size, o.size); err != nil {
		return err
	}
	for i, v := range in {
		out[i] = v + o.offset
	}
	return nil
}
