package workload

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ArrivalSampler generates per-epoch item counts.
type ArrivalSampler interface {
	// SampleCount returns the number of items submitted in one epoch.
	// Always returns a non-negative value.
	SampleCount(rng *rand.Rand) int
}

// FixedArrival submits exactly N items every epoch.
type FixedArrival struct {
	N int
}

func (s *FixedArrival) SampleCount(_ *rand.Rand) int {
	return s.N
}

// PoissonArrival samples the per-epoch item count from a Poisson
// distribution around Mean. *rand.Rand satisfies the distuv source
// interface via its Uint64 method.
type PoissonArrival struct {
	Mean float64
}

func (s *PoissonArrival) SampleCount(rng *rand.Rand) int {
	dist := distuv.Poisson{Lambda: s.Mean, Src: rng}
	return int(dist.Rand())
}
