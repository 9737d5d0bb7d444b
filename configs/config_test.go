package configs

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, GetDefaultConfig().Validate())
}

func TestSetDefaultsResolve(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	assert.Equal(t, 44100, v.GetInt("audio.sample_rate"))
	assert.Equal(t, 2048, v.GetInt("audio.window_size"))
	assert.Equal(t, 64, v.GetInt("audio.num_bands"))
	assert.Equal(t, 0.7, v.GetFloat64("smoothing.attack"))
	assert.Equal(t, 0.85, v.GetFloat64("smoothing.decay"))
	assert.Equal(t, "synth", v.GetString("capture.source"))
}

func TestSetDefaultsRespectsExistingValues(t *testing.T) {
	v := viper.New()
	v.Set("audio.num_bands", 32)
	SetDefaults(v)

	assert.Equal(t, 32, v.GetInt("audio.num_bands"))
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"zero window", func(c *Config) { c.Audio.WindowSize = 0 }},
		{"too many bands", func(c *Config) { c.Audio.NumBands = c.Audio.WindowSize }},
		{"inverted freq range", func(c *Config) { c.Audio.MinFreq = 20000 }},
		{"attack out of range", func(c *Config) { c.Smoothing.Attack = 1.5 }},
		{"decay out of range", func(c *Config) { c.Smoothing.Decay = -0.1 }},
		{"zero fps", func(c *Config) { c.Visual.FPS = 0 }},
		{"absurd fps", func(c *Config) { c.Visual.FPS = 500 }},
		{"no capture buffer", func(c *Config) { c.Capture.BufferWindows = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
