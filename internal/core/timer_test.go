package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	assert.Equal(t, 100*time.Millisecond, fs.Interval())
	assert.True(t, fs.ShouldStep(), "first tick fires immediately")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(60 * time.Millisecond)
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(40 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Interval())
}
