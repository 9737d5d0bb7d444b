package visualizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RyanBlaney/sonido-sonar/logging"
	"github.com/gdamore/tcell/v2"

	"github.com/RyanBlaney/sonido-visor/configs"
	"github.com/RyanBlaney/sonido-visor/pkg/audio/analyzer"
	"github.com/RyanBlaney/sonido-visor/pkg/audio/capture"
	"github.com/RyanBlaney/sonido-visor/pkg/render"
)

// Orchestrator coordinates the live visualization pipeline: one capture
// worker feeding a ring buffer, and a render loop that snapshots samples,
// analyzes them and draws the radial spectrum once per tick.
type Orchestrator struct {
	config   *configs.Config
	source   capture.Source
	buffer   *capture.RingBuffer
	analyzer *analyzer.SpectralAnalyzer
	renderer *render.RadialRenderer
	metrics  *FrameMetrics
	logger   logging.Logger
}

// NewOrchestrator resolves the capture source and builds the pipeline. The
// source's sample rate is threaded into the analyzer so the band layout
// matches the material regardless of the configured default.
func NewOrchestrator(config *configs.Config, logger logging.Logger) (*Orchestrator, error) {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid visualizer configuration: %w", err)
	}

	source, err := capture.NewFactory().DetectAndCreate(capture.SourceConfig{
		Spec:       config.Capture.Source,
		SampleRate: config.Audio.SampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create capture source: %w", err)
	}

	analyzerConfig := analyzer.Config{
		SampleRate:   source.SampleRate(),
		WindowSize:   config.Audio.WindowSize,
		NumBands:     config.Audio.NumBands,
		MinFreq:      config.Audio.MinFreq,
		MaxFreq:      config.Audio.MaxFreq,
		AttackWeight: config.Smoothing.Attack,
		DecayWeight:  config.Smoothing.Decay,
	}

	logger.Debug("Visualizer pipeline assembled", logging.Fields{
		"source":      string(source.Type()),
		"sample_rate": source.SampleRate(),
		"window_size": analyzerConfig.WindowSize,
		"num_bands":   analyzerConfig.NumBands,
		"fps":         config.Visual.FPS,
	})

	return &Orchestrator{
		config:   config,
		source:   source,
		buffer:   capture.NewRingBuffer(config.Audio.WindowSize * config.Capture.BufferWindows),
		analyzer: analyzer.NewSpectralAnalyzer(analyzerConfig),
		renderer: render.NewRadialRenderer(),
		metrics:  NewFrameMetrics(),
		logger:   logger,
	}, nil
}

// Run owns the viewport for the duration of the session: it enters the
// alternate screen, runs the frame loop and always restores the terminal on
// the way out.
func (o *Orchestrator) Run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	return o.run(ctx, screen)
}

func (o *Orchestrator) run(ctx context.Context, screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	defer o.source.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Capture worker; only real failures surface, cancellation is the
	// normal shutdown path.
	captureErr := make(chan error, 1)
	go func() {
		err := o.source.Start(ctx, o.buffer)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			captureErr <- err
		}
		close(captureErr)
	}()

	quit := make(chan struct{})
	go o.pollKeys(screen, quit)

	o.metrics = NewFrameMetrics()
	surface := render.NewScreenSurface(screen)

	ticker := time.NewTicker(time.Second / time.Duration(o.config.Visual.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			o.metrics.LogSummary(o.logger)
			return nil
		case <-quit:
			o.metrics.LogSummary(o.logger)
			return nil
		case err, ok := <-captureErr:
			if ok && err != nil {
				return fmt.Errorf("capture source failed: %w", err)
			}
			// Worker exited cleanly; stop selecting on the closed channel.
			captureErr = nil
		case <-ticker.C:
			o.frame(screen, surface)
		}
	}
}

// frame runs one synchronous pass of the pipeline: snapshot, analyze, draw.
func (o *Orchestrator) frame(screen tcell.Screen, surface *render.ScreenSurface) {
	samples := o.buffer.Snapshot(o.config.Audio.WindowSize)
	underflow := len(samples) < o.config.Audio.WindowSize

	started := time.Now()
	bands := o.analyzer.Process(samples)
	analysisTime := time.Since(started)

	screen.Clear()
	o.renderer.Render(bands, surface.Area(), surface)
	screen.Show()

	o.metrics.RecordFrame(analysisTime, underflow)
}

// pollKeys watches for quit keys. Resize events re-sync the screen; the next
// frame picks up the new geometry.
func (o *Orchestrator) pollKeys(screen tcell.Screen, quit chan<- struct{}) {
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				close(quit)
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// Screen finalized.
			return
		}
	}
}

// Metrics exposes the current session statistics.
func (o *Orchestrator) Metrics() *FrameMetrics {
	return o.metrics
}
