package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussianCostSampler_ClampsToBounds(t *testing.T) {
	s := &GaussianCostSampler{Mean: 5, StdDev: 10, Min: 1, Max: 8}
	rng := testRNG(11)

	for i := 0; i < 1000; i++ {
		cost := s.SampleCost(rng)
		assert.GreaterOrEqual(t, cost, 1.0)
		assert.LessOrEqual(t, cost, 8.0)
	}
}

func TestGaussianCostSampler_DegenerateBounds(t *testing.T) {
	s := &GaussianCostSampler{Mean: 5, StdDev: 2, Min: 3, Max: 3}
	assert.Equal(t, 3.0, s.SampleCost(testRNG(12)))
}

func TestUniformCostSampler_StaysInRange(t *testing.T) {
	s := &UniformCostSampler{Min: 2, Max: 6}
	rng := testRNG(13)

	for i := 0; i < 1000; i++ {
		cost := s.SampleCost(rng)
		assert.GreaterOrEqual(t, cost, 2.0)
		assert.Less(t, cost, 6.0)
	}
}

func TestDefaultProfileSamplers_DoNotOverlap(t *testing.T) {
	rng := testRNG(14)
	stateless := statelessCostSampler()
	heavy := stateHeavyCostSampler()

	for i := 0; i < 1000; i++ {
		assert.LessOrEqual(t, stateless.SampleCost(rng), 4.0)
		assert.GreaterOrEqual(t, heavy.SampleCost(rng), 4.0)
	}
}
