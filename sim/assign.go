package sim

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
	"gonum.org/v1/gonum/stat"
)

// CoreState holds one core's load accumulators. EpochLoad and EpochItems
// reset at every epoch boundary; the cumulative counters are monotone for
// the whole run.
type CoreState struct {
	EpochLoad  float64
	EpochItems int
	TotalLoad  float64
	TotalItems int
}

// AssignmentEngine maps work items onto the fixed core set and accumulates
// per-core load. The mapping hashes the item's sequence id together with the
// epoch's entropy draw, so for a fixed entropy the distribution over cores is
// close to uniform, while a different entropy re-shuffles where every
// sequence id lands. Core state is owned exclusively by the engine instance
// for one run.
type AssignmentEngine struct {
	coreCount int
	threshold float64
	cores     []CoreState
}

// NewAssignmentEngine creates an engine over coreCount cores. A bottleneck
// is flagged when a core's epoch load exceeds threshold times the mean epoch
// load. Fails with a *ConfigurationError when coreCount is not positive;
// assignment itself cannot fail.
func NewAssignmentEngine(coreCount int, threshold float64) (*AssignmentEngine, error) {
	if coreCount <= 0 {
		return nil, configErrorf("core_count", "must be positive, got %d", coreCount)
	}
	if threshold <= 0 {
		return nil, configErrorf("bottleneck_threshold", "must be positive, got %v", threshold)
	}
	return &AssignmentEngine{
		coreCount: coreCount,
		threshold: threshold,
		cores:     make([]CoreState, coreCount),
	}, nil
}

// CoreCount returns the size of the core set.
func (e *AssignmentEngine) CoreCount() int {
	return e.coreCount
}

// CoreIndex computes the core an item maps to under the given entropy,
// without touching any accumulator. Exposed for uniformity testing.
func (e *AssignmentEngine) CoreIndex(seq uint64, entropy uint64) int {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], seq)
	binary.LittleEndian.PutUint64(key[8:], entropy)
	return int(xxh3.Hash(key[:]) % uint64(e.coreCount))
}

// Assign routes one work item to a core under the epoch's entropy, updates
// that core's epoch and cumulative accumulators, and emits the assignment
// record.
func (e *AssignmentEngine) Assign(item *WorkItem, entropy uint64) AssignmentRecord {
	core := e.CoreIndex(item.Seq, entropy)
	c := &e.cores[core]
	c.EpochLoad += item.Cost
	c.EpochItems++
	c.TotalLoad += item.Cost
	c.TotalItems++
	return AssignmentRecord{Seq: item.Seq, Core: core, Epoch: item.Epoch, Time: item.SubmitTime}
}

// EpochStats summarizes one epoch's per-core loads.
type EpochStats struct {
	Epoch       uint32
	Items       int
	CoreLoads   []float64
	CoreCounts  []int
	MeanLoad    float64
	MaxLoad     float64
	StdDevLoad  float64
	Bottlenecks []int // core indices whose load exceeded threshold * mean

	// Supplementary series filled in by the runner.
	EffectiveTPS float64
	FinalizedTPS float64
	Cost         float64
}

// Contended reports whether any core was flagged this epoch.
func (s *EpochStats) Contended() bool {
	return len(s.Bottlenecks) > 0
}

// EpochStats computes the load statistics and bottleneck flags for the
// current epoch's accumulators. An epoch with no items reports all-zero
// statistics and no bottlenecks. The flags are advisory output only; the
// engine never reroutes based on them.
func (e *AssignmentEngine) EpochStats(epoch uint32) EpochStats {
	loads := make([]float64, e.coreCount)
	counts := make([]int, e.coreCount)
	items := 0
	maxLoad := 0.0
	for i := range e.cores {
		loads[i] = e.cores[i].EpochLoad
		counts[i] = e.cores[i].EpochItems
		items += e.cores[i].EpochItems
		if loads[i] > maxLoad {
			maxLoad = loads[i]
		}
	}

	stats := EpochStats{
		Epoch:      epoch,
		Items:      items,
		CoreLoads:  loads,
		CoreCounts: counts,
		MaxLoad:    maxLoad,
	}
	if items == 0 {
		return stats
	}

	stats.MeanLoad = stat.Mean(loads, nil)
	stats.StdDevLoad = stat.StdDev(loads, nil)
	if stats.MeanLoad > 0 {
		limit := e.threshold * stats.MeanLoad
		for i, load := range loads {
			if load > limit {
				stats.Bottlenecks = append(stats.Bottlenecks, i)
			}
		}
	}
	return stats
}

// ResetEpoch clears the per-epoch accumulators at an epoch boundary. The
// cumulative counters are untouched.
func (e *AssignmentEngine) ResetEpoch() {
	for i := range e.cores {
		e.cores[i].EpochLoad = 0
		e.cores[i].EpochItems = 0
	}
}

// Cores returns a copy of the per-core state for reporting.
func (e *AssignmentEngine) Cores() []CoreState {
	out := make([]CoreState, len(e.cores))
	copy(out, e.cores)
	return out
}
