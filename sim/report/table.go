package report

import (
	"fmt"
	"io"

	"github.com/jamsim/jamsim/sim"
)

// PrintSummary displays one run's aggregated statistics.
func PrintSummary(w io.Writer, res *sim.ScenarioResult) {
	s := &res.Summary
	fmt.Fprintf(w, "--- Scenario: %s ---\n", res.Scenario)
	fmt.Fprintf(w, "Total items           : %d\n", s.TotalItems)
	fmt.Fprintf(w, "Mean epoch load       : %.3f MB/core\n", s.MeanEpochLoad)
	fmt.Fprintf(w, "Max core load         : %.3f MB\n", s.MaxCoreLoad)
	fmt.Fprintf(w, "Bottleneck epochs     : %d of %d\n", s.BottleneckEpochs, len(res.Epochs))
	fmt.Fprintf(w, "Mean latency          : %.2f s\n", s.MeanLatency)
	fmt.Fprintf(w, "Median latency        : %.2f s\n", s.MedianLatency)
	fmt.Fprintf(w, "p99 latency           : %.2f s\n", s.P99Latency)
	fmt.Fprintf(w, "Theoretical TPS       : %.2f\n", s.TheoreticalTPS)
	fmt.Fprintf(w, "Avg effective TPS     : %.2f\n", s.AvgEffectiveTPS)
	fmt.Fprintf(w, "Avg finalized TPS     : %.2f\n", s.AvgFinalizedTPS)
	fmt.Fprintf(w, "Avg cost per epoch    : $%.4f\n", s.AvgEpochCost)
}

// PrintComparison displays the cross-scenario summary table produced by
// sim.CompareScenarios.
func PrintComparison(w io.Writer, results []*sim.ScenarioResult) {
	fmt.Fprintf(w, "%-12s %10s %12s %12s %12s %12s %12s\n",
		"scenario", "items", "mean_load", "max_load", "btl_epochs", "mean_lat", "p99_lat")
	for _, res := range results {
		s := &res.Summary
		fmt.Fprintf(w, "%-12s %10d %12.3f %12.3f %12d %12.2f %12.2f\n",
			res.Scenario, s.TotalItems, s.MeanEpochLoad, s.MaxCoreLoad,
			s.BottleneckEpochs, s.MeanLatency, s.P99Latency)
	}
}
