package app

import (
	"context"
	"fmt"

	"github.com/RyanBlaney/sonido-sonar/logging"

	"github.com/RyanBlaney/sonido-visor/configs"
	"github.com/RyanBlaney/sonido-visor/internal/visualizer"
)

// Context holds the application context and configuration
type Context struct {
	// CLI arguments
	ConfigFile string
	Source     string
	FPS        int
	Verbose    bool
	Quiet      bool
	LogLevel   string

	// Runtime context
	Logger logging.Logger
	Config *VisualizerConfig
}

// VisualizerApp handles the visualizer application lifecycle
type VisualizerApp struct {
	ctx    *Context
	config *VisualizerConfig
	logger logging.Logger
}

// NewVisualizerApp creates a new visualizer application
func NewVisualizerApp(ctx *Context) (*VisualizerApp, error) {
	logger := setupLogging(ctx)
	ctx.Logger = logger

	config, err := loadAndMergeConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	ctx.Config = config

	logger.Debug("Visualizer application initialized", logging.Fields{
		"config_file": ctx.ConfigFile,
		"source":      config.Capture.Source,
		"fps":         config.Visual.FPS,
		"window_size": config.Audio.WindowSize,
		"num_bands":   config.Audio.NumBands,
	})

	return &VisualizerApp{
		ctx:    ctx,
		config: config,
		logger: logger,
	}, nil
}

// Run executes the live visualizer until the context is cancelled or the
// user quits.
func (app *VisualizerApp) Run(ctx context.Context) error {
	orchestrator, err := visualizer.NewOrchestrator(app.config, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create visualizer: %w", err)
	}

	if err := orchestrator.Run(ctx); err != nil {
		return fmt.Errorf("visualizer execution failed: %w", err)
	}

	return nil
}

// Config returns the resolved configuration.
func (app *VisualizerApp) Config() *VisualizerConfig {
	return app.config
}

// setupLogging configures the logger from CLI verbosity flags.
func setupLogging(ctx *Context) logging.Logger {
	logger := logging.NewDefaultLogger()

	switch {
	case ctx.Quiet:
		logger.SetLevel(logging.ErrorLevel)
	case ctx.Verbose || ctx.LogLevel == "debug":
		logger.SetLevel(logging.DebugLevel)
	}

	return logger
}

// loadAndMergeConfig loads configuration and merges it with CLI flags
func loadAndMergeConfig(ctx *Context) (*VisualizerConfig, error) {
	var baseConfig *VisualizerConfig
	var err error

	if ctx.ConfigFile != "" {
		baseConfig, err = loadConfigFromFile(ctx.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration file: %w", err)
		}
	} else {
		baseConfig, err = configs.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load base configuration: %w", err)
		}
	}

	mergedConfig := mergeConfig(baseConfig, ctx)

	if err := mergedConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid visualizer configuration: %w", err)
	}

	return mergedConfig, nil
}
