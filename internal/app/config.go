package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-visor/configs"
)

// VisualizerConfig is the application-level configuration type.
type VisualizerConfig = configs.Config

// loadConfigFromFile loads a visualizer configuration overlay from an
// explicit file, by extension (YAML preferred, JSON accepted).
func loadConfigFromFile(filePath string) (*VisualizerConfig, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file does not exist: %s", filePath)
	}

	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		return loadConfigFromYAML(filePath)
	case ".json":
		return loadConfigFromJSON(filePath)
	default:
		// Try YAML first, then JSON
		if cfg, err := loadConfigFromYAML(filePath); err == nil {
			return cfg, nil
		}
		return loadConfigFromJSON(filePath)
	}
}

// loadConfigFromYAML loads a config overlay from a YAML file
func loadConfigFromYAML(filePath string) (*VisualizerConfig, error) {
	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, err
	}

	config := configs.GetDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return config, nil
}

// loadConfigFromJSON loads a config overlay from a JSON file
func loadConfigFromJSON(filePath string) (*VisualizerConfig, error) {
	data, err := readConfigFile(filePath)
	if err != nil {
		return nil, err
	}

	config := configs.GetDefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}

	return config, nil
}

func readConfigFile(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return data, nil
}

// mergeConfig applies CLI overrides on top of the loaded configuration.
func mergeConfig(base *VisualizerConfig, ctx *Context) *VisualizerConfig {
	merged := *base

	if ctx.Source != "" {
		merged.Capture.Source = ctx.Source
	}
	if ctx.FPS > 0 {
		merged.Visual.FPS = ctx.FPS
	}
	if ctx.Verbose {
		merged.Verbose = true
	}
	if ctx.LogLevel != "" {
		merged.LogLevel = ctx.LogLevel
	}

	return &merged
}
