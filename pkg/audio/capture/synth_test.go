package capture

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthGenerateDeterministic(t *testing.T) {
	a := NewSynthSource(44100)
	b := NewSynthSource(44100)

	assert.Equal(t, a.Generate(2048), b.Generate(2048), "same phase must generate identical samples")
}

func TestSynthGenerateRange(t *testing.T) {
	ss := NewSynthSource(44100)

	for _, s := range ss.Generate(4096) {
		assert.GreaterOrEqual(t, s, -1.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestSynthGenerateAdvancesPhase(t *testing.T) {
	ss := NewSynthSource(44100)

	first := ss.Generate(1024)
	second := ss.Generate(1024)

	assert.NotEqual(t, first, second, "consecutive chunks must continue the waveform, not repeat it")
}

func TestSynthDefaultSampleRate(t *testing.T) {
	assert.Equal(t, 44100, NewSynthSource(0).SampleRate())
	assert.Equal(t, 22050, NewSynthSource(22050).SampleRate())
}

func TestSynthStartFillsBuffer(t *testing.T) {
	ss := NewSynthSource(44100)
	rb := NewRingBuffer(44100)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	err := ss.Start(ctx, rb)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, rb.Len(), "source should have pushed samples before the deadline")
}
