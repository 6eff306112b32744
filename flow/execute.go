package flow

import (
	"fmt"

	"github.com/cwbudde/algo-flow/flow/alignedbuf"
)

// scratchPool recycles the aligned ping-pong buffers used by Execute.
var scratchPool = alignedbuf.NewPool()

// Execute runs the chain on one input block and returns the resulting
// output block as a fresh slice of OutputCount samples.
//
// The input must hold at least InputCount samples; extra samples are
// ignored. Intermediate blocks bounce between two aligned scratch
// buffers of MaxUnitSize samples, so units never see each other's
// output in place. An empty workflow returns nil and no error.
func (w *Workflow) Execute(input []float64) ([]float64, error) {
	if len(w.units) == 0 {
		return nil, nil
	}
	if len(input) < w.InputCount() {
		return nil, fmt.Errorf("flow: have %d samples, need %d: %w",
			len(input), w.InputCount(), ErrShortInput)
	}

	size := w.MaxUnitSize()
	in := scratchPool.Get(size)
	out := scratchPool.Get(size)
	defer scratchPool.Put(in)
	defer scratchPool.Put(out)

	cur, next := in.Samples(), out.Samples()
	copy(cur, input[:w.InputCount()])

	for i, u := range w.units {
		n, m := u.InputCount(), u.OutputCount()
		if n > size {
			return nil, fmt.Errorf("flow: unit %d consumes %d samples, scratch holds %d: %w",
				i, n, size, ErrChainMismatch)
		}
		if err := u.Process(cur[:n], next[:m]); err != nil {
			return nil, fmt.Errorf("flow: unit %d: %w", i, err)
		}
		cur, next = next, cur
	}

	result := make([]float64, w.OutputCount())
	copy(result, cur[:len(result)])
	return result, nil
}
