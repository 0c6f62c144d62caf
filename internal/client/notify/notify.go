// Package notify provides the write-only collaborators the stores report
// through: an ErrorReporter for failures and a Notifier for user-facing
// progress and status messages. Neither is ever read back by the stores.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/semant/internal/logging"
)

// Severity classifies a reported error.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// ErrorReporter receives failures. Fire-and-forget.
type ErrorReporter interface {
	ReportError(ctx context.Context, severity Severity, message string, err error)
}

// Kind selects how a notification is presented.
type Kind string

const (
	KindAction  Kind = "info"
	KindSuccess Kind = "positive"
	KindWarning Kind = "warning"
	KindError   Kind = "negative"
)

// Timeout is how long a notification of kind k stays up if nobody dismisses it.
func (k Kind) Timeout() time.Duration {
	switch k {
	case KindAction:
		return 60 * time.Second
	case KindSuccess:
		return 4 * time.Second
	case KindWarning:
		return 3 * time.Second
	default:
		return 6 * time.Second
	}
}

// Dismiss ends a notification. Calling it more than once is harmless.
type Dismiss func()

// Notifier shows messages to the user.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, message string) Dismiss
}

// Console prints notifications as lines on w. Action notifications print a
// trailing "done" line with the elapsed time when dismissed or timed out.
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, now: time.Now}
}

func (c *Console) Notify(_ context.Context, kind Kind, message string) Dismiss {
	c.printf("[%s] %s\n", kind, message)

	if kind != KindAction {
		return func() {}
	}

	start := c.now()
	var once sync.Once
	finish := func(suffix string) {
		once.Do(func() {
			c.printf("[%s] %s %s (%s)\n", kind, message, suffix, c.now().Sub(start).Round(time.Millisecond))
		})
	}
	timer := time.AfterFunc(kind.Timeout(), func() { finish("timed out") })
	return func() {
		timer.Stop()
		finish("done")
	}
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, format, args...)
}

// LogReporter logs reported errors and, when a Notifier is set, raises an
// error notification for SeverityError.
type LogReporter struct {
	log      logging.Logger
	notifier Notifier
}

func NewLogReporter(log logging.Logger, notifier Notifier) *LogReporter {
	return &LogReporter{log: log.With("component", "errors"), notifier: notifier}
}

func (r *LogReporter) ReportError(ctx context.Context, severity Severity, message string, err error) {
	args := []any{"severity", string(severity)}
	if err != nil {
		args = append(args, "error", err.Error())
	}

	switch severity {
	case SeverityInfo:
		r.log.Info(ctx, message, args...)
	case SeverityWarning:
		r.log.Warn(ctx, message, args...)
	default:
		r.log.Error(ctx, message, args...)
	}

	if r.notifier == nil {
		return
	}
	switch severity {
	case SeverityError:
		r.notifier.Notify(ctx, KindError, message)
	case SeverityWarning:
		r.notifier.Notify(ctx, KindWarning, message)
	}
}
