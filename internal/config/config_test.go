package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) Config {
	t.Helper()
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg
}

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig(t)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "humanpath", cfg.Logger.ServiceName)
	assert.Equal(t, 1, cfg.Generator.Count)
	assert.Equal(t, 900.0, cfg.Generator.Speed)
	assert.Zero(t, cfg.Generator.Seed)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "known_easing",
			mutate: func(c *Config) { c.Generator.Easing = "outQuad" },
		},
		{
			name:    "unknown_easing",
			mutate:  func(c *Config) { c.Generator.Easing = "bounce" },
			wantErr: "unknown easing",
		},
		{
			name:    "target_points_one",
			mutate:  func(c *Config) { c.Generator.TargetPoints = 1 },
			wantErr: "target_points",
		},
		{
			name:   "target_points_zero_keeps_sampling",
			mutate: func(c *Config) { c.Generator.TargetPoints = 0 },
		},
		{
			name:    "negative_speed",
			mutate:  func(c *Config) { c.Generator.Speed = -5 },
			wantErr: "speed",
		},
		{
			name:    "zero_count",
			mutate:  func(c *Config) { c.Generator.Count = 0 },
			wantErr: "count",
		},
		{
			name:    "zero_concurrency",
			mutate:  func(c *Config) { c.Generator.Concurrency = 0 },
			wantErr: "concurrency",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig(t)
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
