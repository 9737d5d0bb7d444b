package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingBufferAppendAndSnapshot(t *testing.T) {
	rb := NewRingBuffer(8)

	rb.Append([]float64{1, 2, 3})
	assert.Equal(t, 3, rb.Len())
	assert.Equal(t, []float64{1, 2, 3}, rb.Snapshot(8))
	assert.Equal(t, []float64{2, 3}, rb.Snapshot(2), "snapshot returns the most recent samples")
}

func TestRingBufferOverflowDropsOldest(t *testing.T) {
	rb := NewRingBuffer(4)

	rb.Append([]float64{1, 2, 3, 4})
	rb.Append([]float64{5, 6})

	assert.Equal(t, 4, rb.Len())
	assert.Equal(t, []float64{3, 4, 5, 6}, rb.Snapshot(4))
}

func TestRingBufferOversizedAppend(t *testing.T) {
	rb := NewRingBuffer(3)

	rb.Append([]float64{1, 2, 3, 4, 5, 6, 7})

	assert.Equal(t, []float64{5, 6, 7}, rb.Snapshot(3))
}

func TestRingBufferSnapshotIsCopy(t *testing.T) {
	rb := NewRingBuffer(4)
	rb.Append([]float64{1, 2, 3})

	snap := rb.Snapshot(3)
	snap[0] = -99

	assert.Equal(t, []float64{1, 2, 3}, rb.Snapshot(3), "mutating a snapshot must not touch the buffer")
}

func TestRingBufferEmptySnapshot(t *testing.T) {
	rb := NewRingBuffer(4)
	assert.Empty(t, rb.Snapshot(4))
}
