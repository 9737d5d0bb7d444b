package visualizer

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-visor/configs"
)

func TestNewOrchestratorWiresSourceRate(t *testing.T) {
	cfg := configs.GetDefaultConfig()
	cfg.Audio.SampleRate = 48000

	o, err := NewOrchestrator(cfg, nil)
	require.NoError(t, err)
	defer o.source.Close()

	assert.Equal(t, 48000, o.source.SampleRate())
	assert.Equal(t, 48000, o.analyzer.Config().SampleRate, "analyzer must use the source rate")
}

func TestNewOrchestratorRejectsUnknownSource(t *testing.T) {
	cfg := configs.GetDefaultConfig()
	cfg.Capture.Source = "radio.ogg"

	_, err := NewOrchestrator(cfg, nil)
	assert.Error(t, err)
}

func TestNewOrchestratorRejectsInvalidConfig(t *testing.T) {
	// FPS feeds a ticker interval division; an unvalidated zero must be
	// caught at construction, not blow up in the frame loop.
	cfg := configs.GetDefaultConfig()
	cfg.Visual.FPS = 0

	_, err := NewOrchestrator(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid visualizer configuration")
}

func TestRunRendersFramesOnSimulationScreen(t *testing.T) {
	cfg := configs.GetDefaultConfig()
	cfg.Visual.FPS = 60

	o, err := NewOrchestrator(cfg, nil)
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(60, 24)

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	require.NoError(t, o.run(ctx, screen))
	assert.Positive(t, o.Metrics().FramesRendered(), "frame loop should have ticked")
}

func TestFrameMetricsAccumulate(t *testing.T) {
	fm := NewFrameMetrics()

	fm.RecordFrame(2*time.Millisecond, false)
	fm.RecordFrame(4*time.Millisecond, true)

	assert.Equal(t, 2, fm.FramesRendered())
	assert.Equal(t, 1, fm.UnderflowFrames())
	assert.Equal(t, 3*time.Millisecond, fm.AverageAnalysisTime())
}
