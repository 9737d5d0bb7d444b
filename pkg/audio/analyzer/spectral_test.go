package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sine generates n samples of a pure tone at freq Hz.
func sine(freq float64, n, sampleRate int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return samples
}

func TestProcessShortInputReturnsPreviousState(t *testing.T) {
	sa := NewSpectralAnalyzer(DefaultConfig())

	// Establish non-zero state with a full window of tone.
	before := sa.Process(sine(440, sa.Config().WindowSize, sa.Config().SampleRate))

	for _, n := range []int{0, 1, 100, sa.Config().WindowSize - 1} {
		after := sa.Process(make([]float64, n))
		assert.Equal(t, before, after, "short input (%d samples) must not advance state", n)
	}
}

func TestProcessSilenceIsZeroAndIdempotent(t *testing.T) {
	sa := NewSpectralAnalyzer(DefaultConfig())
	silence := make([]float64, sa.Config().WindowSize)

	for range 3 {
		bands := sa.Process(silence)
		require.Len(t, bands, sa.Config().NumBands)
		for i, b := range bands {
			assert.Equal(t, 0.0, b, "band %d should stay at zero on silence", i)
		}
	}
}

func TestProcessOutputRange(t *testing.T) {
	sa := NewSpectralAnalyzer(DefaultConfig())

	// Deterministic wideband-ish signal: mixed tones plus a ramp.
	samples := sine(440, sa.Config().WindowSize, sa.Config().SampleRate)
	for i := range samples {
		samples[i] += 0.5*math.Sin(2*math.Pi*5000*float64(i)/44100.0) + 0.1*float64(i%7)
	}

	for range 5 {
		bands := sa.Process(samples)
		for i, b := range bands {
			assert.GreaterOrEqual(t, b, 0.0, "band %d below range", i)
			assert.LessOrEqual(t, b, 1.0, "band %d above range", i)
			assert.False(t, math.IsNaN(b), "band %d is NaN", i)
		}
	}
}

func TestProcessSineWaveHasEnergy(t *testing.T) {
	sa := NewSpectralAnalyzer(DefaultConfig())
	bands := sa.Process(sine(440, sa.Config().WindowSize, sa.Config().SampleRate))

	hasEnergy := false
	for _, b := range bands {
		if b > 0.1 {
			hasEnergy = true
			break
		}
	}
	assert.True(t, hasEnergy, "440 Hz tone should produce visible band energy")
}

func TestBandRangeCoversSpectrum(t *testing.T) {
	sa := NewSpectralAnalyzer(DefaultConfig())
	totalBins := sa.Config().WindowSize / 2

	startFirst, _ := sa.bandRange(0, totalBins)
	_, endLast := sa.bandRange(sa.Config().NumBands-1, totalBins)

	assert.Less(t, startFirst, 10, "band 0 should start near the bottom of the spectrum")
	assert.Greater(t, endLast, 100, "band 63 should extend well into the upper bins")
}

func TestBandRangeMonotone(t *testing.T) {
	sa := NewSpectralAnalyzer(DefaultConfig())
	totalBins := sa.Config().WindowSize / 2

	prevStart := -1
	for band := range sa.Config().NumBands {
		start, end := sa.bandRange(band, totalBins)
		assert.GreaterOrEqual(t, start, prevStart, "band %d start regressed", band)
		assert.LessOrEqual(t, end, totalBins, "band %d end out of bounds", band)
		prevStart = start
	}
}

func TestSmoothingAsymmetry(t *testing.T) {
	sa := NewSpectralAnalyzer(DefaultConfig())

	assert.InDelta(t, 0.7, sa.smooth(0.0, 1.0), 1e-12, "rise should weight the new value 0.7")
	assert.InDelta(t, 0.85, sa.smooth(1.0, 0.0), 1e-12, "fall should retain 0.85 of the old value")
}

func TestSampleRateShiftsBandLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 22050
	low := NewSpectralAnalyzer(cfg)
	high := NewSpectralAnalyzer(DefaultConfig())

	totalBins := cfg.WindowSize / 2
	lowStart, _ := low.bandRange(32, totalBins)
	highStart, _ := high.bandRange(32, totalBins)

	// Halving the sample rate halves freq-per-bin, so the same band lands
	// on higher bin indices.
	assert.Greater(t, lowStart, highStart)
}

func TestProcessReturnsCopy(t *testing.T) {
	sa := NewSpectralAnalyzer(DefaultConfig())
	bands := sa.Process(sine(440, sa.Config().WindowSize, sa.Config().SampleRate))

	for i := range bands {
		bands[i] = -99
	}
	again := sa.Process(make([]float64, 10))
	for i, b := range again {
		assert.GreaterOrEqual(t, b, 0.0, "mutating a returned slice must not corrupt state (band %d)", i)
	}
}
