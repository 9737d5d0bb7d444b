package visualizer

import (
	"time"

	"github.com/RyanBlaney/sonido-sonar/logging"
)

// FrameMetrics accumulates per-session frame statistics. It is owned by the
// orchestrator's render goroutine and is not safe for concurrent use.
type FrameMetrics struct {
	startTime       time.Time
	framesRendered  int
	underflowFrames int
	analysisTime    time.Duration
}

// NewFrameMetrics starts a metrics session.
func NewFrameMetrics() *FrameMetrics {
	return &FrameMetrics{startTime: time.Now()}
}

// RecordFrame records one rendered frame. underflow marks frames where the
// capture buffer had less than a full analysis window.
func (fm *FrameMetrics) RecordFrame(analysisTime time.Duration, underflow bool) {
	fm.framesRendered++
	fm.analysisTime += analysisTime
	if underflow {
		fm.underflowFrames++
	}
}

// FramesRendered returns the total rendered frame count.
func (fm *FrameMetrics) FramesRendered() int {
	return fm.framesRendered
}

// UnderflowFrames returns how many frames rendered stale intensities because
// the capture source had not filled a window yet.
func (fm *FrameMetrics) UnderflowFrames() int {
	return fm.underflowFrames
}

// AverageAnalysisTime returns the mean per-frame analysis duration.
func (fm *FrameMetrics) AverageAnalysisTime() time.Duration {
	if fm.framesRendered == 0 {
		return 0
	}
	return fm.analysisTime / time.Duration(fm.framesRendered)
}

// ObservedFPS returns the achieved frame rate over the session.
func (fm *FrameMetrics) ObservedFPS() float64 {
	elapsed := time.Since(fm.startTime).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(fm.framesRendered) / elapsed
}

// LogSummary emits the session statistics.
func (fm *FrameMetrics) LogSummary(logger logging.Logger) {
	logger.Info("Visualizer session summary", logging.Fields{
		"frames_rendered":   fm.framesRendered,
		"underflow_frames":  fm.underflowFrames,
		"avg_analysis_time": fm.AverageAnalysisTime().String(),
		"observed_fps":      fm.ObservedFPS(),
	})
}
