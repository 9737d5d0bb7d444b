package capture

import (
	"path/filepath"
	"strings"
)

// DetectType maps a source spec to a source type. A path ending in .wav or
// .wave is a WAV file source; "synth" (or an empty spec) selects the
// built-in signal generator.
func DetectType(spec string) SourceType {
	spec = strings.TrimSpace(spec)

	if spec == "" || strings.EqualFold(spec, string(SourceTypeSynth)) {
		return SourceTypeSynth
	}

	switch strings.ToLower(filepath.Ext(spec)) {
	case ".wav", ".wave":
		return SourceTypeWAV
	}

	return SourceTypeUnsupported
}
