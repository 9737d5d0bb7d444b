package analyzer

import (
	"math"
	"math/cmplx"

	"github.com/RyanBlaney/sonido-sonar/algorithms/windowing"
	"github.com/RyanBlaney/sonido-sonar/logging"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Config holds the spectral analysis parameters. The sample rate is expected
// to come from the capture source so the logarithmic band layout matches the
// frequency content actually being analyzed.
type Config struct {
	SampleRate   int     `mapstructure:"sample_rate" json:"sample_rate"`
	WindowSize   int     `mapstructure:"window_size" json:"window_size"`
	NumBands     int     `mapstructure:"num_bands" json:"num_bands"`
	MinFreq      float64 `mapstructure:"min_freq" json:"min_freq"`
	MaxFreq      float64 `mapstructure:"max_freq" json:"max_freq"`
	AttackWeight float64 `mapstructure:"attack" json:"attack"`
	DecayWeight  float64 `mapstructure:"decay" json:"decay"`
}

// DefaultConfig returns the standard visualizer analysis configuration:
// a 2048-sample window at 44.1 kHz grouped into 64 bands spanning
// 20 Hz to 16 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate:   44100,
		WindowSize:   2048,
		NumBands:     64,
		MinFreq:      20.0,
		MaxFreq:      16000.0,
		AttackWeight: 0.7,
		DecayWeight:  0.85,
	}
}

// SpectralAnalyzer converts fixed-length windows of raw samples into smoothed,
// normalized per-band intensities in [0, 1]. The smoothed intensities persist
// across calls; one analyzer instance must not be shared between goroutines.
type SpectralAnalyzer struct {
	config   Config
	window   *windowing.Hann
	smoothed []float64
	logger   logging.Logger
}

// NewSpectralAnalyzer creates an analyzer with a precomputed periodic Hann
// window and all band intensities at zero.
func NewSpectralAnalyzer(config Config) *SpectralAnalyzer {
	return &SpectralAnalyzer{
		config:   config,
		window:   windowing.NewHann(config.WindowSize, false),
		smoothed: make([]float64, config.NumBands),
		logger: logging.WithFields(logging.Fields{
			"component":   "spectral_analyzer",
			"sample_rate": config.SampleRate,
			"window_size": config.WindowSize,
			"num_bands":   config.NumBands,
		}),
	}
}

// Config returns the analyzer's configuration.
func (sa *SpectralAnalyzer) Config() Config {
	return sa.config
}

// Process analyzes the first WindowSize samples and returns the updated band
// intensities. Fewer than WindowSize samples is the capture-underflow case:
// the previous intensities are returned unchanged. The returned slice is a
// copy; callers may hold it across frames.
//
// Process never fails: silent frames skip normalization and degenerate band
// ranges contribute zero, so the output decays toward zero instead of
// propagating NaN or Inf.
func (sa *SpectralAnalyzer) Process(samples []float64) []float64 {
	if len(samples) < sa.config.WindowSize {
		return sa.intensities()
	}

	windowed := sa.window.Apply(samples[:sa.config.WindowSize])
	spectrum := fft.FFTReal(windowed)

	// Real input mirrors the upper half of the spectrum; only the first
	// half carries information.
	totalBins := sa.config.WindowSize / 2
	magnitudes := make([]float64, totalBins)
	for i := range totalBins {
		magnitudes[i] = cmplx.Abs(spectrum[i])
	}

	bands := make([]float64, sa.config.NumBands)
	for band := range bands {
		start, end := sa.bandRange(band, totalBins)
		if start < end && end <= len(magnitudes) {
			sum := 0.0
			for _, m := range magnitudes[start:end] {
				sum += m
			}
			bands[band] = sum / float64(end-start)
		}
	}

	// Scale so the loudest band of this frame reaches 1.0. A silent frame
	// has max 0 and is left alone.
	if max := floats.Max(bands); max > 0 {
		floats.Scale(1/max, bands)
	}

	for i := range sa.smoothed {
		sa.smoothed[i] = sa.smooth(sa.smoothed[i], bands[i])
	}

	return sa.intensities()
}

// smooth applies the asymmetric attack/decay filter: rising energy is taken
// up quickly, falling energy bleeds off slowly.
func (sa *SpectralAnalyzer) smooth(prev, raw float64) float64 {
	if raw > prev {
		return prev*(1-sa.config.AttackWeight) + raw*sa.config.AttackWeight
	}
	return prev*sa.config.DecayWeight + raw*(1-sa.config.DecayWeight)
}

// bandRange maps a band index to its [start, end) frequency-bin range using
// logarithmic spacing between MinFreq and MaxFreq, so low bands cover few
// bass-heavy bins and high bands cover many treble bins.
func (sa *SpectralAnalyzer) bandRange(band, totalBins int) (int, int) {
	freqPerBin := float64(sa.config.SampleRate) / float64(totalBins*2)

	logMin := math.Log(sa.config.MinFreq)
	logRange := math.Log(sa.config.MaxFreq) - logMin

	freqStart := math.Exp(logMin + float64(band)/float64(sa.config.NumBands)*logRange)
	freqEnd := math.Exp(logMin + float64(band+1)/float64(sa.config.NumBands)*logRange)

	start := min(int(freqStart/freqPerBin), totalBins)
	end := min(int(freqEnd/freqPerBin), totalBins)

	return start, end
}

// intensities returns a copy of the persistent smoothing state.
func (sa *SpectralAnalyzer) intensities() []float64 {
	out := make([]float64, len(sa.smoothed))
	copy(out, sa.smoothed)
	return out
}
