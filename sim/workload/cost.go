package workload

import (
	"math"
	"math/rand/v2"
)

// Profile tags a generated item with the cost profile it was drawn from.
type Profile string

const (
	ProfileStateless  Profile = "stateless"
	ProfileStateHeavy Profile = "state-heavy"
)

// CostSampler generates resource-cost samples for work items.
type CostSampler interface {
	// SampleCost returns a resource cost in work-package megabytes.
	SampleCost(rng *rand.Rand) float64
}

// GaussianCostSampler produces clamped Gaussian resource costs.
type GaussianCostSampler struct {
	Mean, StdDev float64
	Min, Max     float64
}

func (s *GaussianCostSampler) SampleCost(rng *rand.Rand) float64 {
	if s.Min == s.Max {
		return s.Min
	}
	val := rng.NormFloat64()*s.StdDev + s.Mean
	return math.Min(s.Max, math.Max(s.Min, val))
}

// UniformCostSampler produces uniform resource costs on [Min, Max).
type UniformCostSampler struct {
	Min, Max float64
}

func (s *UniformCostSampler) SampleCost(rng *rand.Rand) float64 {
	return s.Min + rng.Float64()*(s.Max-s.Min)
}

// Default cost samplers per profile. A full work-package is ~13.2 MB, so the
// stateless profile clusters well below one package while the state-heavy
// profile spreads up to a full package.
func statelessCostSampler() CostSampler {
	return &GaussianCostSampler{Mean: 2.0, StdDev: 0.5, Min: 0.5, Max: 4.0}
}

func stateHeavyCostSampler() CostSampler {
	return &GaussianCostSampler{Mean: 9.0, StdDev: 3.0, Min: 4.0, Max: 13.2}
}
