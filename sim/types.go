package sim

import "github.com/jamsim/jamsim/sim/workload"

// WorkItem is one unit of work placed on the submission timeline. The
// embedded workload.Item carries the generator-owned fields (sequence id,
// profile, cost); the runner attaches the submission epoch, slot and time.
// Once finalized, a WorkItem is immutable and retained only for reporting.
type WorkItem struct {
	workload.Item
	Epoch      uint32
	Slot       int
	SubmitTime float64 // seconds since simulation start
}

// AssignmentRecord captures one item-to-core assignment. Produced exactly
// once per work item by the assignment engine; immutable after creation.
type AssignmentRecord struct {
	Seq   uint64
	Core  int
	Epoch uint32
	Time  float64
}

// FinalityRecord captures when an assigned item became final. Latency is
// FinalizedAt - AssignedAt and is never negative.
type FinalityRecord struct {
	Seq         uint64
	AssignedAt  float64
	FinalizedAt float64
	Latency     float64
}
