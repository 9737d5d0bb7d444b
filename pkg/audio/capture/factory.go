package capture

import (
	"fmt"
	"sync"
)

// SourceConfig carries the settings a source needs at construction.
type SourceConfig struct {
	// Spec is the raw source argument: a WAV path or a generator name.
	Spec string
	// SampleRate is the rate for generated sources; file sources report
	// their own.
	SampleRate int
}

// Factory creates sample sources by type, with a registration hook for
// custom implementations.
type Factory struct {
	builders map[SourceType]func(SourceConfig) (Source, error)
	mu       sync.RWMutex
}

// NewFactory creates a factory with the default source builders registered.
func NewFactory() *Factory {
	f := &Factory{
		builders: make(map[SourceType]func(SourceConfig) (Source, error)),
	}

	f.RegisterBuilder(SourceTypeSynth, func(cfg SourceConfig) (Source, error) {
		return NewSynthSource(cfg.SampleRate), nil
	})
	f.RegisterBuilder(SourceTypeWAV, func(cfg SourceConfig) (Source, error) {
		return NewWAVSource(cfg.Spec)
	})

	return f
}

// RegisterBuilder registers a builder for a source type, replacing any
// existing registration.
func (f *Factory) RegisterBuilder(sourceType SourceType, builder func(SourceConfig) (Source, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.builders[sourceType] = builder
}

// CreateSource builds a source of the given type.
func (f *Factory) CreateSource(sourceType SourceType, cfg SourceConfig) (Source, error) {
	f.mu.RLock()
	builder, exists := f.builders[sourceType]
	f.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unsupported source type: %s", sourceType)
	}

	return builder(cfg)
}

// DetectAndCreate resolves the source spec to a type and builds it.
func (f *Factory) DetectAndCreate(cfg SourceConfig) (Source, error) {
	return f.CreateSource(DetectType(cfg.Spec), cfg)
}
