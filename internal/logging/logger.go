// Package logging defines the structured-logging interface used across the
// semant client. Two implementations are provided: SlogLogger (log/slog) and
// ZapLogger (go.uber.org/zap).
package logging

import (
	"context"
	"io"
	"log/slog"

	"go.uber.org/zap"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "collections fetched", "user_id", id, "count", n)
type Logger interface {
	// Debug logs verbose diagnostics.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Log formats accepted by New.
const (
	FormatText = "text"
	FormatZap  = "zap"
)

// New builds a Logger writing to w. FormatZap yields a JSON zap logger,
// anything else a slog text logger.
func New(format string, w io.Writer) Logger {
	if format == FormatZap {
		return NewZapLogger(newZapCore(w))
	}
	return NewSlogLogger(slog.New(slog.NewTextHandler(w, nil)))
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() Logger {
	return NewZapLogger(zap.NewNop())
}
