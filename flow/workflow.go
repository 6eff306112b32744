package flow

import (
	"errors"
	"fmt"
)

// ErrUnitIndexOutOfRange is returned by UnitAt for an invalid index.
var ErrUnitIndexOutOfRange = errors.New("unit index out of range")

// ErrShortInput is returned by Execute when the input block holds fewer
// samples than the first unit consumes.
var ErrShortInput = errors.New("input shorter than workflow input size")

// ErrChainMismatch is returned by Validate when adjacent units disagree
// on block sizes.
var ErrChainMismatch = errors.New("adjacent unit block sizes differ")

// Workflow is an ordered chain of processing units.
// The zero value is an empty workflow ready for use.
type Workflow struct {
	units []Unit
}

// New returns an empty workflow.
func New() *Workflow {
	return &Workflow{}
}

// Add appends units to the end of the chain. Nil units are skipped.
func (w *Workflow) Add(units ...Unit) {
	for _, u := range units {
		if u != nil {
			w.units = append(w.units, u)
		}
	}
}

// Clear removes all units.
func (w *Workflow) Clear() {
	w.units = nil
}

// UnitCount returns the number of units in the chain.
func (w *Workflow) UnitCount() int {
	return len(w.units)
}

// UnitAt returns the unit at the given zero-based position.
// It returns an error wrapping [ErrUnitIndexOutOfRange] when index is
// not in [0, UnitCount()).
func (w *Workflow) UnitAt(index int) (Unit, error) {
	if index < 0 || index >= len(w.units) {
		return nil, fmt.Errorf("flow: unit %d of %d: %w", index, len(w.units), ErrUnitIndexOutOfRange)
	}
	return w.units[index], nil
}

// InputCount returns the number of samples the workflow consumes per
// block: the first unit's input count, or 0 for an empty workflow.
func (w *Workflow) InputCount() int {
	if len(w.units) == 0 {
		return 0
	}
	return w.units[0].InputCount()
}

// OutputCount returns the number of samples the workflow produces per
// block: the last unit's output count, or 0 for an empty workflow.
func (w *Workflow) OutputCount() int {
	if len(w.units) == 0 {
		return 0
	}
	return w.units[len(w.units)-1].OutputCount()
}

// MaxUnitSize returns the scratch buffer capacity the chain needs: the
// maximum of the first unit's input count and every unit's output
// count. A single buffer of this size can hold any intermediate block
// in the chain. Returns 0 for an empty workflow.
func (w *Workflow) MaxUnitSize() int {
	if len(w.units) == 0 {
		return 0
	}
	size := w.units[0].InputCount()
	for _, u := range w.units {
		if c := u.OutputCount(); c > size {
			size = c
		}
	}
	return size
}

// Validate checks that each unit's output count matches the next
// unit's input count. Execute does not require a valid chain (a unit
// consuming fewer samples than its predecessor produced simply ignores
// the tail), but a mismatch is usually a construction bug.
func (w *Workflow) Validate() error {
	for i := 0; i+1 < len(w.units); i++ {
		out := w.units[i].OutputCount()
		in := w.units[i+1].InputCount()
		if out != in {
			return fmt.Errorf("flow: unit %d produces %d samples, unit %d consumes %d: %w",
				i, out, i+1, in, ErrChainMismatch)
		}
	}
	return nil
}
