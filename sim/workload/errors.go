package workload

import "fmt"

// GenerationError reports an invalid value produced by the workload
// distribution, such as a non-positive resource cost. Generation is
// deterministic given seed and epoch, so the same inputs always fail the
// same way; the error aborts the current run and is never retried.
type GenerationError struct {
	Epoch  uint32
	Seq    uint64
	Reason string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("workload generation failed at epoch %d, item %d: %s", e.Epoch, e.Seq, e.Reason)
}
