package sim

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jamsim/jamsim/sim/workload"
)

// Runner drives one full scenario run: for each epoch it draws entropy,
// generates the epoch's work items, assigns them in submission order,
// finalizes them, and rolls the epoch's per-core loads into the aggregate
// result before resetting the accumulators.
//
// A Runner owns its entropy source, generator, engine and tracker, so
// independent Runners never interfere; runs are single-goroutine and
// deterministic end-to-end for a fixed Config.
type Runner struct {
	cfg      Config
	entropy  *EntropySource
	gen      *workload.Generator
	engine   *AssignmentEngine
	finality *FinalityTracker
}

// NewRunner validates the configuration and wires up the run. All
// configuration failures surface here, before any epoch runs.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(cfg.Seed)

	gen, err := workload.NewGenerator(cfg.Scenario, cfg.arrivalSampler(), cfg.MixtureWeight, rng.ForSubsystem(SubsystemWorkload))
	if err != nil {
		// Validate already covered these; keep the guard for direct misuse.
		return nil, configErrorf("scenario", "%v", err)
	}

	engine, err := NewAssignmentEngine(cfg.CoreCount, cfg.BottleneckThreshold)
	if err != nil {
		return nil, err
	}

	finality, err := NewFinalityTracker(cfg.BlockDelay, rng.ForSubsystem(SubsystemFinality))
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:      cfg,
		entropy:  NewEntropySource(cfg.Seed),
		gen:      gen,
		engine:   engine,
		finality: finality,
	}, nil
}

// Config returns the validated configuration this Runner was built with.
func (r *Runner) Config() Config {
	return r.cfg
}

// Run executes epochs 0..EpochCount-1 in order and returns the aggregate
// result. The only mid-run failure is a workload *workload.GenerationError,
// which aborts the run.
func (r *Runner) Run() (*ScenarioResult, error) {
	logrus.Infof("Starting %s run: %d cores, %d epochs, seed=%d",
		r.cfg.Scenario, r.cfg.CoreCount, r.cfg.EpochCount, r.cfg.Seed)

	result := &ScenarioResult{
		Scenario: r.cfg.Scenario,
		Config:   r.cfg,
	}
	dur := r.cfg.EpochDuration()

	for epoch := uint32(0); epoch < uint32(r.cfg.EpochCount); epoch++ {
		entropy := r.entropy.Draw(epoch)

		items, err := r.gen.Generate(epoch)
		if err != nil {
			return nil, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		epochStart := float64(epoch) * dur
		for i := range items {
			wi := WorkItem{
				Item:  items[i],
				Epoch: epoch,
				Slot:  slotFor(i, len(items), r.cfg.SlotsPerEpoch),
			}
			wi.SubmitTime = epochStart + float64(wi.Slot)*r.cfg.SlotPeriod

			rec := r.engine.Assign(&wi, entropy)
			result.Items = append(result.Items, wi)
			result.Assignments = append(result.Assignments, rec)
			result.Finalities = append(result.Finalities, r.finality.Finalize(wi.Seq, rec.Time))
		}

		stats := r.engine.EpochStats(epoch)
		stats.EffectiveTPS = float64(stats.Items) * ExtrinsicsPerPackage / dur
		stats.Cost = epochCost(stats.Items)
		result.Epochs = append(result.Epochs, stats)

		logrus.Debugf("Epoch %d: %d items, mean load %.3f, max load %.3f, %d bottlenecks",
			epoch, stats.Items, stats.MeanLoad, stats.MaxLoad, len(stats.Bottlenecks))

		r.engine.ResetEpoch()
	}

	fillFinalizedTPS(result.Epochs, result.Finalities, dur)
	result.Summary = computeSummary(&r.cfg, result.Epochs, result.Finalities)

	logrus.Infof("Run complete: %d items, %d bottleneck epochs, mean latency %.2fs",
		result.Summary.TotalItems, result.Summary.BottleneckEpochs, result.Summary.MeanLatency)
	return result, nil
}

// slotFor spreads an epoch's items evenly across its slots, preserving
// submission order.
func slotFor(i, count, slotsPerEpoch int) int {
	if count <= 0 {
		return 0
	}
	slot := i * slotsPerEpoch / count
	if slot >= slotsPerEpoch {
		slot = slotsPerEpoch - 1
	}
	return slot
}

// fillFinalizedTPS computes the finalized-throughput series: extrinsics
// whose finality landed inside each epoch window, divided by the epoch
// duration. Finality past the last epoch falls outside the series, matching
// the lag between effective and finalized throughput.
func fillFinalizedTPS(epochs []EpochStats, finalities []FinalityRecord, dur float64) {
	if len(epochs) == 0 {
		return
	}
	counts := make([]int, len(epochs))
	for _, f := range finalities {
		idx := int(f.FinalizedAt / dur)
		if idx >= 0 && idx < len(counts) {
			counts[idx]++
		}
	}
	for i := range epochs {
		epochs[i].FinalizedTPS = float64(counts[i]) * ExtrinsicsPerPackage / dur
	}
}

// RunScenario is the convenience entry point: validate, build, run.
func RunScenario(cfg Config) (*ScenarioResult, error) {
	r, err := NewRunner(cfg)
	if err != nil {
		return nil, err
	}
	return r.Run()
}

// CompareScenarios runs every workload scenario independently under the same
// seed and epoch count and returns the results in workload.Scenarios order,
// so load and latency summaries are directly comparable.
func CompareScenarios(base Config) ([]*ScenarioResult, error) {
	results := make([]*ScenarioResult, 0, len(workload.Scenarios))
	for _, scenario := range workload.Scenarios {
		cfg := base
		cfg.Scenario = scenario
		res, err := RunScenario(cfg)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// RunTrials executes repeated independent runs of one configuration for
// statistical averaging, one goroutine per trial. Trial t runs with seed
// base.Seed + t; every trial owns its own Runner, entropy source and core
// state, so trials cannot interfere. The configuration is validated once up
// front so no goroutine starts on a bad config.
func RunTrials(base Config, trials int) ([]*ScenarioResult, error) {
	if trials <= 0 {
		return nil, configErrorf("trials", "must be positive, got %d", trials)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	results := make([]*ScenarioResult, trials)
	errs := make([]error, trials)
	var wg sync.WaitGroup
	for t := 0; t < trials; t++ {
		wg.Add(1)
		go func(t int) {
			defer wg.Done()
			cfg := base
			cfg.Seed = base.Seed + int64(t)
			results[t], errs[t] = RunScenario(cfg)
		}(t)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
