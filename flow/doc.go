// Package flow provides an ordered chain of block-processing units
// over float64 sample buffers.
//
// A [Workflow] holds units in insertion order; that order is the
// execution order. Each [Unit] declares how many samples it consumes
// and produces per block, and the workflow derives the scratch buffer
// capacity shared by the whole chain from those declarations (see
// [Workflow.MaxUnitSize]).
//
// [Workflow.Execute] runs the chain with two cache-aligned ping-pong
// scratch buffers drawn from an internal pool, so in steady state the
// only allocation per call is the result slice.
//
// A Workflow is not safe for concurrent use; callers that mutate and
// execute from multiple goroutines must provide their own locking.
package flow
