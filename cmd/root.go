package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jamsim/jamsim/sim"
	"github.com/jamsim/jamsim/sim/report"
	"github.com/jamsim/jamsim/sim/workload"
)

var (
	// CLI flags shared by run and compare
	logLevel            string  // Log verbosity level
	coreCount           int     // Number of cores (C)
	epochCount          int     // Number of epochs to simulate
	seed                int64   // Entropy/workload reproducibility key
	scenarioName        string  // Workload scenario name
	arrivalDist         string  // "fixed" or "poisson"
	itemsPerEpoch       int     // Items per epoch when arrival is fixed
	arrivalMean         float64 // Mean items per epoch when arrival is poisson
	blockDelayDist      string  // "constant" or "uniform"
	blockDelay          float64 // Finality delay in seconds (constant)
	blockDelayMin       float64 // Jitter lower bound (uniform)
	blockDelayMax       float64 // Jitter upper bound (uniform)
	bottleneckThreshold float64 // Multiple of mean load flagged as contention
	mixtureWeight       float64 // State-heavy probability in the mixed scenario
	slotsPerEpoch       int     // Slots per epoch (E)
	slotPeriod          float64 // Slot period in seconds (P)
	trials              int     // Independent trials for statistical averaging
	presetsPath         string  // Path to a presets YAML file
	presetName          string  // Named preset to load
	epochCSVPath        string  // Per-epoch CSV output path
	latencyCSVPath      string  // Per-item latency CSV output path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "jamsim",
	Short: "Discrete-event simulator for JAM core assignment and contention",
}

// buildConfig resolves the effective configuration: defaults, then preset
// file (if given), then explicit flags.
func buildConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if presetsPath != "" {
		loaded, err := LoadPreset(presetsPath, presetName)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("cores") {
		cfg.CoreCount = coreCount
	}
	if cmd.Flags().Changed("scenario") {
		scenario, err := workload.ParseScenario(scenarioName)
		if err != nil {
			return cfg, err
		}
		cfg.Scenario = scenario
	}
	if cmd.Flags().Changed("epochs") {
		cfg.EpochCount = epochCount
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("arrival") || cmd.Flags().Changed("items-per-epoch") || cmd.Flags().Changed("arrival-mean") {
		cfg.ItemsPerEpoch = sim.ArrivalSpec{Distribution: arrivalDist, Count: itemsPerEpoch, Mean: arrivalMean}
	}
	if cmd.Flags().Changed("block-delay-dist") || cmd.Flags().Changed("block-delay") ||
		cmd.Flags().Changed("block-delay-min") || cmd.Flags().Changed("block-delay-max") {
		cfg.BlockDelay = sim.DelaySpec{Distribution: blockDelayDist, Value: blockDelay, Min: blockDelayMin, Max: blockDelayMax}
	}
	if cmd.Flags().Changed("bottleneck-threshold") {
		cfg.BottleneckThreshold = bottleneckThreshold
	}
	if cmd.Flags().Changed("mixture-weight") {
		cfg.MixtureWeight = mixtureWeight
	}
	if cmd.Flags().Changed("slots-per-epoch") {
		cfg.SlotsPerEpoch = slotsPerEpoch
	}
	if cmd.Flags().Changed("slot-period") {
		cfg.SlotPeriod = slotPeriod
	}
	return cfg, nil
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// exportCSVs writes the optional CSV outputs for one result.
func exportCSVs(res *sim.ScenarioResult, epochPath, latencyPath string) error {
	if epochPath != "" {
		f, err := os.Create(epochPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", epochPath, err)
		}
		defer f.Close()
		if err := report.WriteEpochCSV(f, res); err != nil {
			return err
		}
		logrus.Infof("Epoch CSV exported to %s", epochPath)
	}
	if latencyPath != "" {
		f, err := os.Create(latencyPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", latencyPath, err)
		}
		defer f.Close()
		if err := report.WriteLatencyCSV(f, res); err != nil {
			return err
		}
		logrus.Infof("Latency CSV exported to %s", latencyPath)
	}
	return nil
}

// runCmd executes one scenario using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one workload scenario",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Configuration error: %v", err)
		}

		if trials > 1 {
			results, err := sim.RunTrials(cfg, trials)
			if err != nil {
				logrus.Fatalf("Simulation failed: %v", err)
			}
			for i, res := range results {
				fmt.Printf("=== Trial %d (seed %d) ===\n", i, res.Config.Seed)
				report.PrintSummary(os.Stdout, res)
			}
			return
		}

		res, err := sim.RunScenario(cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		report.PrintSummary(os.Stdout, res)
		if err := exportCSVs(res, epochCSVPath, latencyCSVPath); err != nil {
			logrus.Fatalf("Export failed: %v", err)
		}
	},
}

// compareCmd runs every scenario under the same seed and epoch count
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all scenarios with the same seed and compare them",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Configuration error: %v", err)
		}

		results, err := sim.CompareScenarios(cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		report.PrintComparison(os.Stdout, results)

		for _, res := range results {
			if epochCSVPath != "" {
				path := fmt.Sprintf("%s.%s.csv", epochCSVPath, res.Scenario)
				if err := exportCSVs(res, path, ""); err != nil {
					logrus.Fatalf("Export failed: %v", err)
				}
			}
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addConfigFlags registers the shared configuration flag surface.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().IntVar(&coreCount, "cores", sim.DefaultCoreCount, "Number of cores in the validation network")
	cmd.Flags().IntVar(&epochCount, "epochs", 20, "Number of epochs to simulate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for entropy and workload generation")
	cmd.Flags().StringVar(&scenarioName, "scenario", "mixed", "Workload scenario (stateless, state-heavy, mixed)")
	cmd.Flags().StringVar(&arrivalDist, "arrival", "poisson", "Arrival volume distribution (fixed, poisson)")
	cmd.Flags().IntVar(&itemsPerEpoch, "items-per-epoch", 100, "Items per epoch (fixed arrivals)")
	cmd.Flags().Float64Var(&arrivalMean, "arrival-mean", 100, "Mean items per epoch (poisson arrivals)")
	cmd.Flags().StringVar(&blockDelayDist, "block-delay-dist", "constant", "Finality delay distribution (constant, uniform)")
	cmd.Flags().Float64Var(&blockDelay, "block-delay", sim.DefaultFinalityDelaySlots*sim.DefaultSlotPeriod, "Finality delay in seconds (constant)")
	cmd.Flags().Float64Var(&blockDelayMin, "block-delay-min", 6, "Finality delay jitter lower bound in seconds (uniform)")
	cmd.Flags().Float64Var(&blockDelayMax, "block-delay-max", 18, "Finality delay jitter upper bound in seconds (uniform)")
	cmd.Flags().Float64Var(&bottleneckThreshold, "bottleneck-threshold", sim.DefaultBottleneckThreshold, "Multiple of mean epoch load flagged as contention")
	cmd.Flags().Float64Var(&mixtureWeight, "mixture-weight", 0.5, "State-heavy probability in the mixed scenario")
	cmd.Flags().IntVar(&slotsPerEpoch, "slots-per-epoch", sim.DefaultSlotsPerEpoch, "Timeslots per epoch")
	cmd.Flags().Float64Var(&slotPeriod, "slot-period", sim.DefaultSlotPeriod, "Slot period in seconds")
	cmd.Flags().StringVar(&presetsPath, "presets", "", "Path to a presets YAML file")
	cmd.Flags().StringVar(&presetName, "preset", "reference", "Named preset to load from the presets file")
	cmd.Flags().StringVar(&epochCSVPath, "epoch-csv", "", "Write per-epoch statistics to this CSV file")
}

// init sets up CLI flags and subcommands
func init() {
	addConfigFlags(runCmd)
	runCmd.Flags().IntVar(&trials, "trials", 1, "Independent trials to run (seeds seed..seed+trials-1)")
	runCmd.Flags().StringVar(&latencyCSVPath, "latency-csv", "", "Write per-item latencies to this CSV file")

	addConfigFlags(compareCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
