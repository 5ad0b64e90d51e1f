package sim

import "math/rand/v2"

// DelaySampler generates block-delay samples for the finality model.
type DelaySampler interface {
	// SampleDelay returns a non-negative delay in seconds.
	SampleDelay(rng *rand.Rand) float64
}

// ConstantDelay models a fixed finality-gadget confirmation delay.
type ConstantDelay struct {
	Delay float64
}

func (s *ConstantDelay) SampleDelay(_ *rand.Rand) float64 {
	return s.Delay
}

// UniformJitterDelay models bounded confirmation-delay variance, uniform on
// [Min, Max).
type UniformJitterDelay struct {
	Min, Max float64
}

func (s *UniformJitterDelay) SampleDelay(rng *rand.Rand) float64 {
	return s.Min + rng.Float64()*(s.Max-s.Min)
}

// FinalityTracker attaches a finalization timestamp to assigned items:
// finalized = assigned + block_delay. Delays are non-negative by
// construction, so finalized >= assigned always holds.
type FinalityTracker struct {
	sampler DelaySampler
	rng     *rand.Rand
}

// NewFinalityTracker builds a tracker from a DelaySpec. A negative
// configured delay fails with a *ConfigurationError here, before any item
// is finalized.
func NewFinalityTracker(spec DelaySpec, rng *rand.Rand) (*FinalityTracker, error) {
	var sampler DelaySampler
	switch spec.Distribution {
	case DelayConstant:
		if spec.Value < 0 {
			return nil, configErrorf("block_delay", "must be non-negative, got %v", spec.Value)
		}
		sampler = &ConstantDelay{Delay: spec.Value}
	case DelayUniform:
		if spec.Min < 0 {
			return nil, configErrorf("block_delay", "jitter lower bound must be non-negative, got %v", spec.Min)
		}
		if spec.Max < spec.Min {
			return nil, configErrorf("block_delay", "jitter bounds inverted: [%v, %v]", spec.Min, spec.Max)
		}
		sampler = &UniformJitterDelay{Min: spec.Min, Max: spec.Max}
	default:
		return nil, configErrorf("block_delay", "unknown distribution %q", spec.Distribution)
	}
	return &FinalityTracker{sampler: sampler, rng: rng}, nil
}

// Finalize computes the finality record for one assigned item.
func (t *FinalityTracker) Finalize(seq uint64, assignedAt float64) FinalityRecord {
	delay := t.sampler.SampleDelay(t.rng)
	return FinalityRecord{
		Seq:         seq,
		AssignedAt:  assignedAt,
		FinalizedAt: assignedAt + delay,
		Latency:     delay,
	}
}
