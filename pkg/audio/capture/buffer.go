package capture

import "sync"

// RingBuffer is a bounded mono-sample buffer owned by one capture worker.
// The analysis side never sees the live storage: reads are copy-out
// snapshots, so writer and reader only contend for the duration of a copy.
type RingBuffer struct {
	mu       sync.Mutex
	samples  []float64
	capacity int
}

// NewRingBuffer creates a buffer holding at most capacity samples.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer{
		samples:  make([]float64, 0, capacity),
		capacity: capacity,
	}
}

// Append adds samples, dropping the oldest ones once the buffer is full.
func (rb *RingBuffer) Append(samples []float64) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.samples = append(rb.samples, samples...)
	if overflow := len(rb.samples) - rb.capacity; overflow > 0 {
		rb.samples = append(rb.samples[:0], rb.samples[overflow:]...)
	}
}

// Snapshot returns a copy of the most recent n samples, or everything
// buffered if fewer are available. Never blocks beyond the copy.
func (rb *RingBuffer) Snapshot(n int) []float64 {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	start := max(len(rb.samples)-n, 0)
	out := make([]float64, len(rb.samples)-start)
	copy(out, rb.samples[start:])
	return out
}

// Len reports the number of buffered samples.
func (rb *RingBuffer) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return len(rb.samples)
}
