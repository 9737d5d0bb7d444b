package capture

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/RyanBlaney/sonido-sonar/logging"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVSource streams a WAV file as mono float64 samples at real-time pace,
// looping at end of file. The file's own sample rate is reported upstream so
// the analyzer's band layout matches the material.
type WAVSource struct {
	path       string
	file       *os.File
	decoder    *wav.Decoder
	sampleRate int
	channels   int
	bitDepth   int
	logger     logging.Logger
}

// NewWAVSource opens and validates a WAV file.
func NewWAVSource(path string) (*WAVSource, error) {
	ws := &WAVSource{
		path: path,
		logger: logging.WithFields(logging.Fields{
			"component": "wav_source",
			"path":      path,
		}),
	}

	if err := ws.open(); err != nil {
		return nil, err
	}

	ws.logger.Debug("WAV source opened", logging.Fields{
		"sample_rate": ws.sampleRate,
		"channels":    ws.channels,
		"bit_depth":   ws.bitDepth,
	})

	return ws, nil
}

func (ws *WAVSource) open() error {
	file, err := os.Open(ws.path)
	if err != nil {
		return fmt.Errorf("failed to open WAV file: %w", err)
	}

	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		file.Close()
		return fmt.Errorf("not a valid WAV file: %s", ws.path)
	}

	ws.file = file
	ws.decoder = decoder
	ws.sampleRate = int(decoder.SampleRate)
	ws.channels = int(decoder.NumChans)
	ws.bitDepth = int(decoder.BitDepth)

	if ws.sampleRate <= 0 || ws.channels <= 0 || ws.bitDepth < 8 {
		ws.Close()
		return fmt.Errorf("WAV file reports unusable format: rate=%d channels=%d depth=%d",
			ws.sampleRate, ws.channels, ws.bitDepth)
	}

	return nil
}

// Type returns the source type.
func (ws *WAVSource) Type() SourceType { return SourceTypeWAV }

// SampleRate returns the file's sample rate.
func (ws *WAVSource) SampleRate() int { return ws.sampleRate }

// Start decodes 20 ms chunks at real-time pace until the context is
// cancelled, rewinding to the start of the file at EOF.
func (ws *WAVSource) Start(ctx context.Context, buffer *RingBuffer) error {
	framesPerChunk := ws.sampleRate / synthChunk
	interval := time.Second / synthChunk
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			chunk, err := ws.readChunk(framesPerChunk)
			if err != nil {
				return fmt.Errorf("WAV decode failed: %w", err)
			}
			if len(chunk) == 0 {
				// EOF: loop the file.
				if err := ws.rewind(); err != nil {
					return err
				}
				continue
			}
			buffer.Append(chunk)
		}
	}
}

// readChunk decodes up to frames frames, downmixed to mono and normalized to
// [-1, 1] by bit depth.
func (ws *WAVSource) readChunk(frames int) ([]float64, error) {
	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: ws.channels,
			SampleRate:  ws.sampleRate,
		},
		Data: make([]int, frames*ws.channels),
	}

	n, err := ws.decoder.PCMBuffer(intBuf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	// 8-bit PCM is unsigned with silence at 128; deeper formats are
	// signed around zero.
	scale := float64(int(1) << (ws.bitDepth - 1))
	bias := 0.0
	if ws.bitDepth == 8 {
		bias = 128.0
	}

	mono := make([]float64, 0, n/ws.channels)
	for frame := 0; frame+ws.channels <= n; frame += ws.channels {
		sum := 0.0
		for ch := range ws.channels {
			sum += (float64(intBuf.Data[frame+ch]) - bias) / scale
		}
		mono = append(mono, sum/float64(ws.channels))
	}

	return mono, nil
}

// rewind reopens the file from the top.
func (ws *WAVSource) rewind() error {
	ws.logger.Debug("WAV source looping")
	if err := ws.Close(); err != nil {
		return err
	}
	return ws.open()
}

// Close releases the underlying file.
func (ws *WAVSource) Close() error {
	if ws.file == nil {
		return nil
	}
	err := ws.file.Close()
	ws.file = nil
	ws.decoder = nil
	return err
}
