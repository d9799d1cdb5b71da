package generator

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("building", "verb", "get", "path", "/v1/samples")
	logger.Warn("dropped", "verb", "Invalid")

	out := buf.String()
	assert.Contains(t, out, "building")
	assert.Contains(t, out, "path=/v1/samples")
	assert.Contains(t, out, "level=WARN")
}

func TestNopLogger(t *testing.T) {
	// Must be safe to call with any arguments.
	var logger Logger = NopLogger{}
	logger.Debug("msg", "k", "v")
	logger.Info("msg")
	logger.Warn("msg", "k", 1)
	logger.Error("msg", "err", assert.AnError)
}
