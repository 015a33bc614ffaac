package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push(float64(i))
	}
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float64{3, 4, 5}, h.Samples())
}

func TestHistoryPartial(t *testing.T) {
	h := NewHistory(4)
	h.Push(1)
	h.Push(2)
	assert.Equal(t, []float64{1, 2}, h.Samples())

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Samples())
}

func TestHistoryMinimumCapacity(t *testing.T) {
	h := NewHistory(0)
	h.Push(1)
	h.Push(2)
	assert.Equal(t, []float64{2}, h.Samples())
}
