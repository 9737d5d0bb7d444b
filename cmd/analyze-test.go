package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-visor/internal/app"
	"github.com/RyanBlaney/sonido-visor/pkg/audio/analyzer"
	"github.com/RyanBlaney/sonido-visor/pkg/audio/capture"
)

var (
	atFrames       int
	atOutputFormat string
	atTimeout      time.Duration
)

var analyzeTestCmd = &cobra.Command{
	Use:   "analyze-test [source]",
	Short: "Test the analysis pipeline without the viewport",
	Long: `Run the capture and spectral analysis stages headless and print the
resulting band intensities. Useful for verifying that a source decodes and
that the band layout looks sane before going full-screen.

Examples:
  # Analyze the built-in generator
  sonido-visor analyze-test

  # Analyze a WAV file, machine readable
  sonido-visor analyze-test track.wav -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyzeTest,
}

func init() {
	rootCmd.AddCommand(analyzeTestCmd)

	analyzeTestCmd.Flags().IntVarP(&atFrames, "frames", "n", 10,
		"number of analysis frames to run")
	analyzeTestCmd.Flags().StringVarP(&atOutputFormat, "output", "o", "table",
		"output format (table, json, yaml)")
	analyzeTestCmd.Flags().DurationVarP(&atTimeout, "timeout", "T", 10*time.Second,
		"time limit for capture and analysis")
}

// analyzeTestResult is the machine-readable report.
type analyzeTestResult struct {
	Source     string    `json:"source" yaml:"source"`
	SampleRate int       `json:"sample_rate" yaml:"sample_rate"`
	WindowSize int       `json:"window_size" yaml:"window_size"`
	Frames     int       `json:"frames" yaml:"frames"`
	Bands      []float64 `json:"bands" yaml:"bands"`
}

func runAnalyzeTest(cmd *cobra.Command, args []string) error {
	source := ""
	if len(args) > 0 {
		source = args[0]
	}

	appCtx := &app.Context{
		ConfigFile: configFile,
		Source:     source,
		Verbose:    verbose,
		Quiet:      quiet,
		LogLevel:   logLevel,
	}

	visualizerApp, err := app.NewVisualizerApp(appCtx)
	if err != nil {
		return err
	}
	config := visualizerApp.Config()

	captureSource, err := capture.NewFactory().DetectAndCreate(capture.SourceConfig{
		Spec:       config.Capture.Source,
		SampleRate: config.Audio.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("failed to create capture source: %w", err)
	}
	defer captureSource.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), atTimeout)
	defer cancel()

	buffer := capture.NewRingBuffer(config.Audio.WindowSize * config.Capture.BufferWindows)
	captureErr := make(chan error, 1)
	go func() {
		err := captureSource.Start(ctx, buffer)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			captureErr <- err
		}
		close(captureErr)
	}()

	spectral := analyzer.NewSpectralAnalyzer(analyzer.Config{
		SampleRate:   captureSource.SampleRate(),
		WindowSize:   config.Audio.WindowSize,
		NumBands:     config.Audio.NumBands,
		MinFreq:      config.Audio.MinFreq,
		MaxFreq:      config.Audio.MaxFreq,
		AttackWeight: config.Smoothing.Attack,
		DecayWeight:  config.Smoothing.Decay,
	})

	// Wait for a full window, then run the requested number of frames at
	// roughly the capture chunk rate.
	var bands []float64
	frames := 0
	for frames < atFrames {
		select {
		case <-ctx.Done():
			return fmt.Errorf("analysis timed out after %d of %d frames", frames, atFrames)
		case err, ok := <-captureErr:
			if ok {
				return fmt.Errorf("capture source failed: %w", err)
			}
			captureErr = nil
		case <-time.After(50 * time.Millisecond):
			samples := buffer.Snapshot(config.Audio.WindowSize)
			if len(samples) < config.Audio.WindowSize {
				continue
			}
			bands = spectral.Process(samples)
			frames++
		}
	}

	result := &analyzeTestResult{
		Source:     config.Capture.Source,
		SampleRate: captureSource.SampleRate(),
		WindowSize: config.Audio.WindowSize,
		Frames:     frames,
		Bands:      bands,
	}

	return printAnalyzeResult(result)
}

func printAnalyzeResult(result *analyzeTestResult) error {
	switch atOutputFormat {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		fmt.Printf("source=%s sample_rate=%d window=%d frames=%d\n\n",
			result.Source, result.SampleRate, result.WindowSize, result.Frames)
		for band, intensity := range result.Bands {
			bar := strings.Repeat("#", int(math.Round(intensity*40)))
			fmt.Printf("band %2d  %.3f  %s\n", band, intensity, bar)
		}
	}

	return nil
}
