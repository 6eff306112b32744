package flow

// Unit is a single processing stage in a workflow.
//
// InputCount and OutputCount declare the block sizes the unit consumes
// and produces; both must stay constant while the unit is attached to a
// workflow, since the workflow sizes its scratch buffers from them.
type Unit interface {
	// InputCount returns the number of samples the unit reads per block.
	InputCount() int

	// OutputCount returns the number of samples the unit writes per block.
	OutputCount() int

	// Process reads InputCount samples from in and writes OutputCount
	// samples to out. The slices are sized exactly; in and out never
	// alias.
	Process(in, out []float64) error
}
