package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultCoreCount, cfg.CoreCount)
	assert.Equal(t, DefaultBottleneckThreshold, cfg.BottleneckThreshold)
}

func TestConfigValidate_RejectsBadFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero cores", func(c *Config) { c.CoreCount = 0 }, "core_count"},
		{"negative cores", func(c *Config) { c.CoreCount = -1 }, "core_count"},
		{"bad scenario", func(c *Config) { c.Scenario = "turbo" }, "scenario"},
		{"negative epochs", func(c *Config) { c.EpochCount = -1 }, "epoch_count"},
		{"negative fixed count", func(c *Config) {
			c.ItemsPerEpoch = ArrivalSpec{Distribution: ArrivalFixed, Count: -5}
		}, "items_per_epoch"},
		{"zero poisson mean", func(c *Config) {
			c.ItemsPerEpoch = ArrivalSpec{Distribution: ArrivalPoisson, Mean: 0}
		}, "items_per_epoch"},
		{"unknown arrival", func(c *Config) {
			c.ItemsPerEpoch = ArrivalSpec{Distribution: "bursty"}
		}, "items_per_epoch"},
		{"negative delay", func(c *Config) {
			c.BlockDelay = DelaySpec{Distribution: DelayConstant, Value: -6}
		}, "block_delay"},
		{"inverted jitter", func(c *Config) {
			c.BlockDelay = DelaySpec{Distribution: DelayUniform, Min: 10, Max: 2}
		}, "block_delay"},
		{"unknown delay", func(c *Config) {
			c.BlockDelay = DelaySpec{Distribution: "gamma"}
		}, "block_delay"},
		{"zero threshold", func(c *Config) { c.BottleneckThreshold = 0 }, "bottleneck_threshold"},
		{"mixture above one", func(c *Config) { c.MixtureWeight = 1.5 }, "mixture_weight"},
		{"negative mixture", func(c *Config) { c.MixtureWeight = -0.1 }, "mixture_weight"},
		{"zero slots", func(c *Config) { c.SlotsPerEpoch = 0 }, "slots_per_epoch"},
		{"zero slot period", func(c *Config) { c.SlotPeriod = 0 }, "slot_period"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestConfig_EpochDuration(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3600.0, cfg.EpochDuration())
}
