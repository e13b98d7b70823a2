// Package ctxlog carries a structured logger through context.Context.
package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Setup builds a logger writing to w with the given level ("debug", "info",
// "warn", "error") and format ("json" or "text"), installs it as the slog
// default and stores it in ctx.
func Setup(ctx context.Context, w io.Writer, level, format string) (context.Context, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return ctx, fmt.Errorf("log level %q: %w", level, err)
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, hopts)
	case "json":
		h = slog.NewJSONHandler(w, hopts)
	default:
		return ctx, fmt.Errorf("log format %q: want text or json", format)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return Store(ctx, logger), nil
}

type ctxKey struct{}

var key ctxKey

// Store returns a copy of ctx carrying log.
func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

// Get returns the logger stored in ctx, or slog.Default.
func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

// With stores a logger annotated with kv.
func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}

// Close closes closer and logs a failure under name.
func Close(ctx context.Context, name string, closer io.Closer) error {
	err := closer.Close()
	if err != nil {
		Get(ctx).Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}
