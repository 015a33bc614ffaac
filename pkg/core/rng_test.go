package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uniform(0.5, 1.0), b.Uniform(0.5, 1.0), "draw %d", i)
	}
}

func TestUniformSeedsDiffer(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Uniform(0, 1) != b.Uniform(0, 1) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should produce different streams")
}

func TestUniformBounds(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 10000; i++ {
		v := rng.Uniform(0.5, 1.0)
		if v < 0.5 || v >= 1.0 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
	}
}

func TestUniformDegenerateRange(t *testing.T) {
	rng := NewRNG(3)
	assert.Equal(t, 0.5, rng.Uniform(0.5, 0.5))
	assert.Equal(t, 1.0, rng.Uniform(1.0, 0.5))
}
