package sim

import (
	"github.com/jamsim/jamsim/sim/workload"
)

// Arrival distribution kinds for ArrivalSpec.
const (
	ArrivalFixed   = "fixed"
	ArrivalPoisson = "poisson"
)

// ArrivalSpec describes the per-epoch arrival volume: either an exact item
// count or a Poisson draw around a mean.
type ArrivalSpec struct {
	Distribution string  // ArrivalFixed or ArrivalPoisson
	Count        int     // items per epoch when fixed
	Mean         float64 // mean items per epoch when poisson
}

// Delay distribution kinds for DelaySpec.
const (
	DelayConstant = "constant"
	DelayUniform  = "uniform"
)

// DelaySpec describes the finality block-delay model: a fixed constant or a
// bounded uniform jitter, in seconds.
type DelaySpec struct {
	Distribution string  // DelayConstant or DelayUniform
	Value        float64 // delay when constant
	Min, Max     float64 // jitter bounds when uniform
}

// Config is the validated configuration for one scenario run. Validation
// happens once, at Runner construction, so invalid settings fail before any
// epoch runs rather than at first use.
type Config struct {
	CoreCount           int
	Scenario            workload.Scenario
	EpochCount          int
	ItemsPerEpoch       ArrivalSpec
	Seed                int64
	BlockDelay          DelaySpec
	BottleneckThreshold float64
	MixtureWeight       float64 // probability a mixed-scenario item is state-heavy

	// Epoch geometry. SlotsPerEpoch * SlotPeriod is the epoch duration in
	// seconds; items are spread across the epoch's slots in submission order.
	SlotsPerEpoch int
	SlotPeriod    float64
}

// DefaultConfig returns the reference JAM parameterization: 341 cores,
// one-hour epochs of 600 six-second slots, Poisson arrivals, and a constant
// two-slot finality delay.
func DefaultConfig() Config {
	return Config{
		CoreCount:           DefaultCoreCount,
		Scenario:            workload.ScenarioMixed,
		EpochCount:          20,
		ItemsPerEpoch:       ArrivalSpec{Distribution: ArrivalPoisson, Mean: 100},
		Seed:                42,
		BlockDelay:          DelaySpec{Distribution: DelayConstant, Value: DefaultFinalityDelaySlots * DefaultSlotPeriod},
		BottleneckThreshold: DefaultBottleneckThreshold,
		MixtureWeight:       0.5,
		SlotsPerEpoch:       DefaultSlotsPerEpoch,
		SlotPeriod:          DefaultSlotPeriod,
	}
}

// Validate checks every field and returns a *ConfigurationError for the
// first violation found.
func (c *Config) Validate() error {
	if c.CoreCount <= 0 {
		return configErrorf("core_count", "must be positive, got %d", c.CoreCount)
	}
	if _, err := workload.ParseScenario(string(c.Scenario)); err != nil {
		return configErrorf("scenario", "%v", err)
	}
	if c.EpochCount < 0 {
		return configErrorf("epoch_count", "must be non-negative, got %d", c.EpochCount)
	}
	switch c.ItemsPerEpoch.Distribution {
	case ArrivalFixed:
		if c.ItemsPerEpoch.Count < 0 {
			return configErrorf("items_per_epoch", "fixed count must be non-negative, got %d", c.ItemsPerEpoch.Count)
		}
	case ArrivalPoisson:
		if c.ItemsPerEpoch.Mean <= 0 {
			return configErrorf("items_per_epoch", "poisson mean must be positive, got %v", c.ItemsPerEpoch.Mean)
		}
	default:
		return configErrorf("items_per_epoch", "unknown distribution %q", c.ItemsPerEpoch.Distribution)
	}
	switch c.BlockDelay.Distribution {
	case DelayConstant:
		if c.BlockDelay.Value < 0 {
			return configErrorf("block_delay", "must be non-negative, got %v", c.BlockDelay.Value)
		}
	case DelayUniform:
		if c.BlockDelay.Min < 0 {
			return configErrorf("block_delay", "jitter lower bound must be non-negative, got %v", c.BlockDelay.Min)
		}
		if c.BlockDelay.Max < c.BlockDelay.Min {
			return configErrorf("block_delay", "jitter bounds inverted: [%v, %v]", c.BlockDelay.Min, c.BlockDelay.Max)
		}
	default:
		return configErrorf("block_delay", "unknown distribution %q", c.BlockDelay.Distribution)
	}
	if c.BottleneckThreshold <= 0 {
		return configErrorf("bottleneck_threshold", "must be positive, got %v", c.BottleneckThreshold)
	}
	if c.MixtureWeight < 0 || c.MixtureWeight > 1 {
		return configErrorf("mixture_weight", "must lie in [0,1], got %v", c.MixtureWeight)
	}
	if c.SlotsPerEpoch <= 0 {
		return configErrorf("slots_per_epoch", "must be positive, got %d", c.SlotsPerEpoch)
	}
	if c.SlotPeriod <= 0 {
		return configErrorf("slot_period", "must be positive, got %v", c.SlotPeriod)
	}
	return nil
}

// EpochDuration returns the epoch length in seconds.
func (c *Config) EpochDuration() float64 {
	return float64(c.SlotsPerEpoch) * c.SlotPeriod
}

// arrivalSampler builds the workload arrival sampler for this config.
func (c *Config) arrivalSampler() workload.ArrivalSampler {
	if c.ItemsPerEpoch.Distribution == ArrivalFixed {
		return &workload.FixedArrival{N: c.ItemsPerEpoch.Count}
	}
	return &workload.PoissonArrival{Mean: c.ItemsPerEpoch.Mean}
}
