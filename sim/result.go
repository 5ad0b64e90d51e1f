package sim

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/jamsim/jamsim/sim/workload"
)

// ScenarioResult aggregates everything one run produced: the full assignment
// and finality logs, per-epoch core statistics, and the run summary. It is
// owned by the Runner until Run returns, after which it is read-only and
// safe to share.
type ScenarioResult struct {
	Scenario    workload.Scenario
	Config      Config
	Items       []WorkItem
	Assignments []AssignmentRecord
	Finalities  []FinalityRecord
	Epochs      []EpochStats
	Summary     Summary
}

// Summary condenses a run for cross-scenario comparison.
type Summary struct {
	TotalItems       int
	MeanEpochLoad    float64 // mean over epochs of the mean per-core load
	MaxCoreLoad      float64 // highest single-core epoch load seen
	BottleneckEpochs int     // epochs with at least one flagged core

	MeanLatency   float64 // seconds
	MedianLatency float64
	P99Latency    float64

	TheoreticalTPS  float64 // C * T / P
	AvgEffectiveTPS float64
	AvgFinalizedTPS float64
	AvgEpochCost    float64 // USD
}

// computeSummary derives the run summary from the aggregate logs.
func computeSummary(cfg *Config, epochs []EpochStats, finalities []FinalityRecord) Summary {
	s := Summary{
		TheoreticalTPS: float64(cfg.CoreCount) * ExtrinsicsPerPackage / cfg.SlotPeriod,
	}

	var epochMeans, effective, finalized, costs []float64
	for i := range epochs {
		e := &epochs[i]
		s.TotalItems += e.Items
		epochMeans = append(epochMeans, e.MeanLoad)
		effective = append(effective, e.EffectiveTPS)
		finalized = append(finalized, e.FinalizedTPS)
		costs = append(costs, e.Cost)
		if e.MaxLoad > s.MaxCoreLoad {
			s.MaxCoreLoad = e.MaxLoad
		}
		if e.Contended() {
			s.BottleneckEpochs++
		}
	}
	if len(epochs) > 0 {
		s.MeanEpochLoad = stat.Mean(epochMeans, nil)
		s.AvgEffectiveTPS = stat.Mean(effective, nil)
		s.AvgFinalizedTPS = stat.Mean(finalized, nil)
		s.AvgEpochCost = stat.Mean(costs, nil)
	}

	if len(finalities) > 0 {
		latencies := make([]float64, len(finalities))
		for i, f := range finalities {
			latencies[i] = f.Latency
		}
		slices.Sort(latencies)
		s.MeanLatency = stat.Mean(latencies, nil)
		s.MedianLatency = stat.Quantile(0.5, stat.Empirical, latencies, nil)
		s.P99Latency = stat.Quantile(0.99, stat.Empirical, latencies, nil)
	}
	return s
}

// epochCost prices one epoch's submissions with the placeholder JAM economy:
// GammaA per workload plus GammaZ per ticket, one ticket per
// ExtrinsicsPerPackage extrinsics.
func epochCost(items int) float64 {
	tickets := items * ExtrinsicsPerPackage
	return GammaA*float64(items) + GammaZ*float64(tickets)
}
