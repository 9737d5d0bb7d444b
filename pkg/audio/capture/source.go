package capture

import "context"

// SourceType identifies a sample source implementation.
type SourceType string

const (
	SourceTypeWAV         SourceType = "wav"
	SourceTypeSynth       SourceType = "synth"
	SourceTypeUnsupported SourceType = "unsupported"
)

// Source produces mono float64 samples in [-1, 1] at real-time pace,
// regardless of the underlying encoding. Start blocks until the context is
// cancelled or the source fails, appending samples to the ring buffer as
// they become available; it is meant to run on its own goroutine.
type Source interface {
	Type() SourceType
	SampleRate() int
	Start(ctx context.Context, buffer *RingBuffer) error
	Close() error
}
