package capture

import (
	"context"
	"math"
	"time"

	"github.com/RyanBlaney/sonido-sonar/logging"
)

// synthChunk is the generation granularity: 20 ms of samples per push.
const synthChunk = 50

// synthPartial is one tone in the generated chord.
type synthPartial struct {
	freq      float64
	amplitude float64
	modRate   float64
}

// SynthSource generates a deterministic chord of amplitude-modulated sine
// partials. It exists for demos and for exercising the pipeline without any
// audio device: the low, mid and high partials light up different regions of
// the band spectrum.
type SynthSource struct {
	sampleRate int
	partials   []synthPartial
	phase      int
	logger     logging.Logger
}

// NewSynthSource creates a generator at the given sample rate (44100 if
// non-positive).
func NewSynthSource(sampleRate int) *SynthSource {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	return &SynthSource{
		sampleRate: sampleRate,
		partials: []synthPartial{
			{freq: 65.41, amplitude: 0.40, modRate: 0.37},   // C2 bass
			{freq: 261.63, amplitude: 0.28, modRate: 0.61},  // C4
			{freq: 1046.50, amplitude: 0.20, modRate: 0.23}, // C6
			{freq: 5274.04, amplitude: 0.12, modRate: 0.83}, // E8 sheen
		},
		logger: logging.WithFields(logging.Fields{
			"component":   "synth_source",
			"sample_rate": sampleRate,
		}),
	}
}

// Type returns the source type.
func (ss *SynthSource) Type() SourceType { return SourceTypeSynth }

// SampleRate returns the generation rate.
func (ss *SynthSource) SampleRate() int { return ss.sampleRate }

// Start pushes 20 ms chunks at real-time pace until the context is
// cancelled.
func (ss *SynthSource) Start(ctx context.Context, buffer *RingBuffer) error {
	ss.logger.Debug("Starting synth source")

	interval := time.Second / synthChunk
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			buffer.Append(ss.Generate(ss.sampleRate / synthChunk))
		}
	}
}

// Generate produces the next n samples of the chord, advancing the
// generator's phase. Deterministic for a given starting phase.
func (ss *SynthSource) Generate(n int) []float64 {
	samples := make([]float64, n)
	rate := float64(ss.sampleRate)

	for i := range samples {
		t := float64(ss.phase+i) / rate
		var v float64
		for _, p := range ss.partials {
			// Slow tremolo keeps the display moving.
			mod := 0.6 + 0.4*math.Sin(2*math.Pi*p.modRate*t)
			v += p.amplitude * mod * math.Sin(2*math.Pi*p.freq*t)
		}
		samples[i] = v
	}

	ss.phase += n
	return samples
}

// Close releases nothing; the generator holds no resources.
func (ss *SynthSource) Close() error { return nil }
