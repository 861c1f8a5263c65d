package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := New(slog.New(h)).With("component", "cheb")

	l.Debug(context.Background(), "series fitted", "order", 3)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "component=cheb")
	assert.Contains(t, out, "order=3")
}

func TestNewNilUsesDefault(t *testing.T) {
	assert.NotNil(t, New(nil))
}

func TestDiscard(t *testing.T) {
	l := Discard().With("k", "v")
	l.Error(context.Background(), "dropped")
}
