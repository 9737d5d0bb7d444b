package configs

import (
	"github.com/spf13/viper"
)

// SetDefaults sets default configuration values for all components
func SetDefaults(v *viper.Viper) {
	// Application defaults
	if !v.IsSet("verbose") {
		v.SetDefault("verbose", false)
	}
	if !v.IsSet("log_level") {
		v.SetDefault("log_level", "info")
	}

	// Spectral analysis defaults: a 2048-sample window at 44.1 kHz grouped
	// into 64 bands across the audible 20 Hz - 16 kHz range
	if !v.IsSet("audio.sample_rate") {
		v.SetDefault("audio.sample_rate", 44100)
	}
	if !v.IsSet("audio.window_size") {
		v.SetDefault("audio.window_size", 2048)
	}
	if !v.IsSet("audio.num_bands") {
		v.SetDefault("audio.num_bands", 64)
	}
	if !v.IsSet("audio.min_freq") {
		v.SetDefault("audio.min_freq", 20.0)
	}
	if !v.IsSet("audio.max_freq") {
		v.SetDefault("audio.max_freq", 16000.0)
	}

	// Smoothing defaults: fast attack, slow decay
	if !v.IsSet("smoothing.attack") {
		v.SetDefault("smoothing.attack", 0.7)
	}
	if !v.IsSet("smoothing.decay") {
		v.SetDefault("smoothing.decay", 0.85)
	}

	// Display defaults
	if !v.IsSet("visual.fps") {
		v.SetDefault("visual.fps", 30)
	}

	// Capture defaults
	if !v.IsSet("capture.source") {
		v.SetDefault("capture.source", "synth")
	}
	if !v.IsSet("capture.buffer_windows") {
		v.SetDefault("capture.buffer_windows", 4)
	}
}

// GetDefaultConfig returns a fully populated default configuration
func GetDefaultConfig() *Config {
	return &Config{
		Verbose:   false,
		LogLevel:  "info",
		Audio:     GetDefaultAudioConfig(),
		Smoothing: GetDefaultSmoothingConfig(),
		Visual:    VisualConfig{FPS: 30},
		Capture:   GetDefaultCaptureConfig(),
	}
}

// GetDefaultAudioConfig returns default spectral analysis settings
func GetDefaultAudioConfig() AudioConfig {
	return AudioConfig{
		SampleRate: 44100,
		WindowSize: 2048,
		NumBands:   64,
		MinFreq:    20.0,
		MaxFreq:    16000.0,
	}
}

// GetDefaultSmoothingConfig returns default attack/decay weights
func GetDefaultSmoothingConfig() SmoothingConfig {
	return SmoothingConfig{
		Attack: 0.7,
		Decay:  0.85,
	}
}

// GetDefaultCaptureConfig returns default capture settings
func GetDefaultCaptureConfig() CaptureConfig {
	return CaptureConfig{
		Source:        "synth",
		BufferWindows: 4,
	}
}
