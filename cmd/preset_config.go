package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jamsim/jamsim/sim"
	"github.com/jamsim/jamsim/sim/workload"
)

// ArrivalSpec mirrors sim.ArrivalSpec in a preset file.
type ArrivalSpec struct {
	Distribution string  `yaml:"distribution"`
	Count        int     `yaml:"count,omitempty"`
	Mean         float64 `yaml:"mean,omitempty"`
}

// DelaySpec mirrors sim.DelaySpec in a preset file.
type DelaySpec struct {
	Distribution string  `yaml:"distribution"`
	Value        float64 `yaml:"value,omitempty"`
	Min          float64 `yaml:"min,omitempty"`
	Max          float64 `yaml:"max,omitempty"`
}

// Preset is one named scenario configuration in a presets YAML file. Zero
// fields keep their defaults from sim.DefaultConfig.
type Preset struct {
	Cores               int          `yaml:"cores,omitempty"`
	Scenario            string       `yaml:"scenario,omitempty"`
	Epochs              int          `yaml:"epochs,omitempty"`
	Arrival             *ArrivalSpec `yaml:"arrival,omitempty"`
	Seed                *int64       `yaml:"seed,omitempty"`
	BlockDelay          *DelaySpec   `yaml:"block_delay,omitempty"`
	BottleneckThreshold float64      `yaml:"bottleneck_threshold,omitempty"`
	MixtureWeight       *float64     `yaml:"mixture_weight,omitempty"`
	SlotsPerEpoch       int          `yaml:"slots_per_epoch,omitempty"`
	SlotPeriod          float64      `yaml:"slot_period,omitempty"`
}

// PresetFile is the full presets YAML structure. All top-level sections must
// be listed to satisfy KnownFields(true) strict parsing.
type PresetFile struct {
	Version string            `yaml:"version"`
	Presets map[string]Preset `yaml:"presets"`
}

// LoadPreset reads a presets file and resolves the named preset over the
// default configuration. Typos in field names are errors, not silent skips.
func LoadPreset(path, name string) (sim.Config, error) {
	cfg := sim.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read presets file: %w", err)
	}

	var file PresetFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return cfg, fmt.Errorf("failed to parse presets YAML: %w", err)
	}

	preset, ok := file.Presets[name]
	if !ok {
		return cfg, fmt.Errorf("preset %q not found in %s", name, path)
	}
	return applyPreset(cfg, preset)
}

func applyPreset(cfg sim.Config, p Preset) (sim.Config, error) {
	if p.Cores != 0 {
		cfg.CoreCount = p.Cores
	}
	if p.Scenario != "" {
		scenario, err := workload.ParseScenario(p.Scenario)
		if err != nil {
			return cfg, err
		}
		cfg.Scenario = scenario
	}
	if p.Epochs != 0 {
		cfg.EpochCount = p.Epochs
	}
	if p.Arrival != nil {
		cfg.ItemsPerEpoch = sim.ArrivalSpec{
			Distribution: p.Arrival.Distribution,
			Count:        p.Arrival.Count,
			Mean:         p.Arrival.Mean,
		}
	}
	if p.Seed != nil {
		cfg.Seed = *p.Seed
	}
	if p.BlockDelay != nil {
		cfg.BlockDelay = sim.DelaySpec{
			Distribution: p.BlockDelay.Distribution,
			Value:        p.BlockDelay.Value,
			Min:          p.BlockDelay.Min,
			Max:          p.BlockDelay.Max,
		}
	}
	if p.BottleneckThreshold != 0 {
		cfg.BottleneckThreshold = p.BottleneckThreshold
	}
	if p.MixtureWeight != nil {
		cfg.MixtureWeight = *p.MixtureWeight
	}
	if p.SlotsPerEpoch != 0 {
		cfg.SlotsPerEpoch = p.SlotsPerEpoch
	}
	if p.SlotPeriod != 0 {
		cfg.SlotPeriod = p.SlotPeriod
	}
	return cfg, nil
}
