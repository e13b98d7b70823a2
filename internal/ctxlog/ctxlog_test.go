package ctxlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/betwixt/internal/ctxlog"
)

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("boom") }

func TestSetup_JSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	ctx, err := ctxlog.Setup(context.Background(), &buf, "debug", "json")
	require.NoError(t, err)

	ctx = ctxlog.With(ctx, "case", "banana")
	ctxlog.Get(ctx).Debug("transformed", "start", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "transformed", rec["msg"])
	assert.Equal(t, "banana", rec["case"])
	assert.Equal(t, 3.0, rec["start"])
}

func TestSetup_LevelFilters(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	ctx, err := ctxlog.Setup(context.Background(), &buf, "warn", "text")
	require.NoError(t, err)

	ctxlog.Get(ctx).Info("hidden")
	assert.Empty(t, buf.String())

	ctxlog.Get(ctx).Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_BadInput(t *testing.T) {
	_, err := ctxlog.Setup(context.Background(), &bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)

	_, err = ctxlog.Setup(context.Background(), &bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestGet_Default(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.Get(context.Background()))
}

func TestClose(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.Store(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	err := ctxlog.Close(ctx, "thing", failingCloser{})
	assert.EqualError(t, err, "boom")
	assert.Contains(t, buf.String(), "closer=thing")
}
