package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalize_ConstantDelay(t *testing.T) {
	rng := NewPartitionedRNG(42).ForSubsystem(SubsystemFinality)
	tracker, err := NewFinalityTracker(DelaySpec{Distribution: DelayConstant, Value: 6}, rng)
	require.NoError(t, err)

	rec := tracker.Finalize(1, 100)

	assert.Equal(t, 106.0, rec.FinalizedAt)
	assert.Equal(t, 6.0, rec.Latency)
	assert.Equal(t, 100.0, rec.AssignedAt)
}

func TestNewFinalityTracker_RejectsNegativeDelay(t *testing.T) {
	rng := NewPartitionedRNG(42).ForSubsystem(SubsystemFinality)

	var cfgErr *ConfigurationError

	_, err := NewFinalityTracker(DelaySpec{Distribution: DelayConstant, Value: -1}, rng)
	require.ErrorAs(t, err, &cfgErr)

	_, err = NewFinalityTracker(DelaySpec{Distribution: DelayUniform, Min: -2, Max: 5}, rng)
	require.ErrorAs(t, err, &cfgErr)

	_, err = NewFinalityTracker(DelaySpec{Distribution: DelayUniform, Min: 10, Max: 5}, rng)
	require.ErrorAs(t, err, &cfgErr)
}

func TestFinalize_UniformJitterStaysInBounds(t *testing.T) {
	rng := NewPartitionedRNG(42).ForSubsystem(SubsystemFinality)
	tracker, err := NewFinalityTracker(DelaySpec{Distribution: DelayUniform, Min: 6, Max: 18}, rng)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		rec := tracker.Finalize(uint64(i), 50)
		assert.GreaterOrEqual(t, rec.Latency, 6.0)
		assert.Less(t, rec.Latency, 18.0)
		assert.GreaterOrEqual(t, rec.FinalizedAt, rec.AssignedAt)
	}
}

func TestFinalize_ZeroDelayIsAllowed(t *testing.T) {
	rng := NewPartitionedRNG(42).ForSubsystem(SubsystemFinality)
	tracker, err := NewFinalityTracker(DelaySpec{Distribution: DelayConstant, Value: 0}, rng)
	require.NoError(t, err)

	rec := tracker.Finalize(1, 12.5)
	assert.Equal(t, 12.5, rec.FinalizedAt)
}
