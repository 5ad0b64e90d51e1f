package workload

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestParseScenario(t *testing.T) {
	for _, name := range []string{"stateless", "state-heavy", "mixed"} {
		s, err := ParseScenario(name)
		require.NoError(t, err)
		assert.Equal(t, Scenario(name), s)
	}

	_, err := ParseScenario("turbo")
	assert.Error(t, err)
}

func TestNewGenerator_RejectsBadMixtureWeight(t *testing.T) {
	for _, w := range []float64{-0.1, 1.1} {
		_, err := NewGenerator(ScenarioMixed, &FixedArrival{N: 1}, w, testRNG(1))
		assert.Error(t, err, "weight %v", w)
	}
}

func TestNewGenerator_RejectsNilArrivals(t *testing.T) {
	_, err := NewGenerator(ScenarioMixed, nil, 0.5, testRNG(1))
	assert.Error(t, err)
}

func TestGenerate_SequenceIDsMonotoneAcrossEpochs(t *testing.T) {
	gen, err := NewGenerator(ScenarioStateless, &FixedArrival{N: 10}, 0.5, testRNG(1))
	require.NoError(t, err)

	var next uint64
	for epoch := uint32(0); epoch < 5; epoch++ {
		items, err := gen.Generate(epoch)
		require.NoError(t, err)
		require.Len(t, items, 10)
		for _, item := range items {
			assert.Equal(t, next, item.Seq)
			next++
		}
	}
	assert.Equal(t, uint64(50), gen.NextSeq())
}

func TestGenerate_ProfilesMatchScenario(t *testing.T) {
	gen, err := NewGenerator(ScenarioStateless, &FixedArrival{N: 100}, 0.5, testRNG(2))
	require.NoError(t, err)
	items, err := gen.Generate(0)
	require.NoError(t, err)
	for _, item := range items {
		assert.Equal(t, ProfileStateless, item.Profile)
	}

	gen, err = NewGenerator(ScenarioStateHeavy, &FixedArrival{N: 100}, 0.5, testRNG(2))
	require.NoError(t, err)
	items, err = gen.Generate(0)
	require.NoError(t, err)
	for _, item := range items {
		assert.Equal(t, ProfileStateHeavy, item.Profile)
	}
}

func TestGenerate_MixedScenarioBlendsProfiles(t *testing.T) {
	gen, err := NewGenerator(ScenarioMixed, &FixedArrival{N: 2000}, 0.5, testRNG(3))
	require.NoError(t, err)

	items, err := gen.Generate(0)
	require.NoError(t, err)

	heavy := 0
	for _, item := range items {
		if item.Profile == ProfileStateHeavy {
			heavy++
		}
	}
	// 50/50 mixture over 2000 items; 5-sigma band is roughly +-112.
	assert.InDelta(t, 1000, heavy, 150)
}

func TestGenerate_MixtureWeightZeroIsAllStateless(t *testing.T) {
	gen, err := NewGenerator(ScenarioMixed, &FixedArrival{N: 500}, 0, testRNG(4))
	require.NoError(t, err)

	items, err := gen.Generate(0)
	require.NoError(t, err)
	for _, item := range items {
		assert.Equal(t, ProfileStateless, item.Profile)
	}
}

func TestGenerate_CostsArePositiveAndProfileShaped(t *testing.T) {
	gen, err := NewGenerator(ScenarioMixed, &FixedArrival{N: 1000}, 0.5, testRNG(5))
	require.NoError(t, err)

	items, err := gen.Generate(0)
	require.NoError(t, err)

	for _, item := range items {
		require.Greater(t, item.Cost, 0.0)
		switch item.Profile {
		case ProfileStateless:
			assert.LessOrEqual(t, item.Cost, 4.0)
			assert.GreaterOrEqual(t, item.Witnesses, 100)
			assert.LessOrEqual(t, item.Witnesses, 500)
		case ProfileStateHeavy:
			assert.GreaterOrEqual(t, item.Cost, 4.0)
			assert.GreaterOrEqual(t, item.Witnesses, 1000)
			assert.LessOrEqual(t, item.Witnesses, 3000)
		}
	}
}

func TestGenerate_SameSeedSameItems(t *testing.T) {
	a, err := NewGenerator(ScenarioMixed, &PoissonArrival{Mean: 50}, 0.5, testRNG(6))
	require.NoError(t, err)
	b, err := NewGenerator(ScenarioMixed, &PoissonArrival{Mean: 50}, 0.5, testRNG(6))
	require.NoError(t, err)

	for epoch := uint32(0); epoch < 3; epoch++ {
		itemsA, err := a.Generate(epoch)
		require.NoError(t, err)
		itemsB, err := b.Generate(epoch)
		require.NoError(t, err)
		assert.Equal(t, itemsA, itemsB, "epoch %d", epoch)
	}
}

func TestGenerate_InvalidCost_ReturnsGenerationError(t *testing.T) {
	bad := &UniformCostSampler{Min: -2, Max: -1}
	gen, err := NewGeneratorWithSamplers(ScenarioStateless, &FixedArrival{N: 3}, bad, bad, 0.5, testRNG(7))
	require.NoError(t, err)

	_, err = gen.Generate(4)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, uint32(4), genErr.Epoch)
	assert.Equal(t, uint64(0), genErr.Seq)
}
