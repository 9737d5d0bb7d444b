package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-visor/configs"
)

func TestLoadConfigFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visor.yaml")
	content := []byte("audio:\n  num_bands: 32\nvisual:\n  fps: 15\ncapture:\n  source: synth\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := loadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Audio.NumBands)
	assert.Equal(t, 15, cfg.Visual.FPS)
	// Unspecified keys keep their defaults.
	assert.Equal(t, 2048, cfg.Audio.WindowSize)
}

func TestLoadConfigFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visor.json")
	content := []byte(`{"visual": {"fps": 24}}`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := loadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Visual.FPS)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfigFromFile("/nonexistent/visor.yaml")
	assert.Error(t, err)
}

func TestMergeConfigFlagOverrides(t *testing.T) {
	base := configs.GetDefaultConfig()
	ctx := &Context{Source: "track.wav", FPS: 45, Verbose: true}

	merged := mergeConfig(base, ctx)

	assert.Equal(t, "track.wav", merged.Capture.Source)
	assert.Equal(t, 45, merged.Visual.FPS)
	assert.True(t, merged.Verbose)
	// Base is untouched.
	assert.Equal(t, "synth", base.Capture.Source)
}

func TestLoadAndMergeConfigValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("visual:\n  fps: 0\n"), 0o644))

	_, err := loadAndMergeConfig(&Context{ConfigFile: path})
	assert.Error(t, err)
}
