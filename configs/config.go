package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`

	// Spectral analysis configuration
	Audio AudioConfig `mapstructure:"audio" yaml:"audio" json:"audio"`

	// Attack/decay smoothing configuration
	Smoothing SmoothingConfig `mapstructure:"smoothing" yaml:"smoothing" json:"smoothing"`

	// Display configuration
	Visual VisualConfig `mapstructure:"visual" yaml:"visual" json:"visual"`

	// Sample capture configuration
	Capture CaptureConfig `mapstructure:"capture" yaml:"capture" json:"capture"`
}

// AudioConfig contains spectral analysis settings
type AudioConfig struct {
	SampleRate int     `mapstructure:"sample_rate" yaml:"sample_rate" json:"sample_rate"`
	WindowSize int     `mapstructure:"window_size" yaml:"window_size" json:"window_size"`
	NumBands   int     `mapstructure:"num_bands" yaml:"num_bands" json:"num_bands"`
	MinFreq    float64 `mapstructure:"min_freq" yaml:"min_freq" json:"min_freq"`
	MaxFreq    float64 `mapstructure:"max_freq" yaml:"max_freq" json:"max_freq"`
}

// SmoothingConfig contains the asymmetric attack/decay filter weights.
// Attack is the weight of the incoming value on a rise; decay is the weight
// of the previous value on a fall.
type SmoothingConfig struct {
	Attack float64 `mapstructure:"attack" yaml:"attack" json:"attack"`
	Decay  float64 `mapstructure:"decay" yaml:"decay" json:"decay"`
}

// VisualConfig contains display settings
type VisualConfig struct {
	FPS int `mapstructure:"fps" yaml:"fps" json:"fps"`
}

// CaptureConfig contains sample source settings
type CaptureConfig struct {
	// Source is a WAV file path or a generator name ("synth")
	Source string `mapstructure:"source" yaml:"source" json:"source"`
	// BufferWindows sizes the capture ring buffer in analysis windows
	BufferWindows int `mapstructure:"buffer_windows" yaml:"buffer_windows" json:"buffer_windows"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive")
	}

	if c.Audio.WindowSize <= 0 {
		return fmt.Errorf("audio window size must be positive")
	}

	if c.Audio.NumBands <= 0 {
		return fmt.Errorf("band count must be positive")
	}

	if c.Audio.NumBands > c.Audio.WindowSize/2 {
		return fmt.Errorf("band count (%d) cannot exceed half the window size (%d)",
			c.Audio.NumBands, c.Audio.WindowSize/2)
	}

	if c.Audio.MinFreq <= 0 || c.Audio.MinFreq >= c.Audio.MaxFreq {
		return fmt.Errorf("frequency range [%.1f, %.1f] is not usable",
			c.Audio.MinFreq, c.Audio.MaxFreq)
	}

	if c.Smoothing.Attack < 0 || c.Smoothing.Attack > 1 {
		return fmt.Errorf("smoothing attack must be between 0 and 1")
	}

	if c.Smoothing.Decay < 0 || c.Smoothing.Decay > 1 {
		return fmt.Errorf("smoothing decay must be between 0 and 1")
	}

	if c.Visual.FPS < 1 || c.Visual.FPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120")
	}

	if c.Capture.BufferWindows < 1 {
		return fmt.Errorf("capture buffer must hold at least one window")
	}

	return nil
}

// GetConfig returns the current viper instance
func GetConfig() *viper.Viper {
	return viper.GetViper()
}
