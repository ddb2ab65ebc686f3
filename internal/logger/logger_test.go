package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColoredHandler_IncludesRequestIDAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewColoredHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithRequestID(context.Background(), "req-42")
	l.With("component", "upload").InfoContext(ctx, "file processed", "file", "cv.pdf", "count", 3)

	out := buf.String()
	assert.Contains(t, out, "[req-42]")
	assert.Contains(t, out, "file processed")
	assert.Contains(t, out, `"cv.pdf"`)
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "=3")
}

func TestColoredHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewColoredHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestRequestID_MissingValue(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}
