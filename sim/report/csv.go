// Package report renders ScenarioResults to tabular form. It is a
// presentation adapter over read-only results; the sim package never calls
// into it.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jamsim/jamsim/sim"
)

// WriteEpochCSV writes one row per epoch: item volume, load statistics,
// bottleneck flags and throughput series.
func WriteEpochCSV(w io.Writer, res *sim.ScenarioResult) error {
	cw := csv.NewWriter(w)
	header := []string{"epoch", "items", "mean_load", "max_load", "stddev_load",
		"bottleneck_cores", "contended", "effective_tps", "finalized_tps", "cost_usd"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range res.Epochs {
		e := &res.Epochs[i]
		row := []string{
			strconv.FormatUint(uint64(e.Epoch), 10),
			strconv.Itoa(e.Items),
			formatFloat(e.MeanLoad),
			formatFloat(e.MaxLoad),
			formatFloat(e.StdDevLoad),
			strconv.Itoa(len(e.Bottlenecks)),
			strconv.FormatBool(e.Contended()),
			formatFloat(e.EffectiveTPS),
			formatFloat(e.FinalizedTPS),
			formatFloat(e.Cost),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write epoch row %d: %w", e.Epoch, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLatencyCSV writes one row per work item: its core assignment and
// finality latency.
func WriteLatencyCSV(w io.Writer, res *sim.ScenarioResult) error {
	if len(res.Assignments) != len(res.Finalities) {
		return fmt.Errorf("result has %d assignments but %d finality records",
			len(res.Assignments), len(res.Finalities))
	}
	cw := csv.NewWriter(w)
	header := []string{"seq", "epoch", "core", "assigned_at", "finalized_at", "latency"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range res.Assignments {
		a := &res.Assignments[i]
		f := &res.Finalities[i]
		row := []string{
			strconv.FormatUint(a.Seq, 10),
			strconv.FormatUint(uint64(a.Epoch), 10),
			strconv.Itoa(a.Core),
			formatFloat(f.AssignedAt),
			formatFloat(f.FinalizedAt),
			formatFloat(f.Latency),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write item row %d: %w", a.Seq, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
