package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"trace", LevelTrace},
		{" Trace ", LevelTrace},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLoggerLabelsTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("trace", &buf)
	logger.Log(context.Background(), LevelTrace, "updating model")
	assert.Contains(t, buf.String(), "level=TRACE")
	assert.Contains(t, buf.String(), "updating model")
}

func TestDebugLevelHidesTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("debug", &buf)
	logger.Log(context.Background(), LevelTrace, "updating model")
	logger.Debug("creating model")
	assert.NotContains(t, buf.String(), "updating model")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", &buf)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
