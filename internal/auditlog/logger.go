package auditlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// ErrSinkUnavailable is returned by Open when the sink file cannot be opened.
// The Logger returned alongside it is usable but writes nothing.
var ErrSinkUnavailable = errors.New("audit sink unavailable")

// Option configures a Logger or Handler.
type Option func(*options)

type options struct {
	now  func() time.Time
	diag io.Writer
}

func newOptions(opts []Option) options {
	cfg := options{now: time.Now, diag: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithClock overrides the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithDiagnostics overrides the writer that receives WARNING and ERROR
// mirrors and sink failures. A nil writer disables mirroring.
func WithDiagnostics(w io.Writer) Option {
	return func(o *options) {
		o.diag = w
	}
}

// Logger owns the audit sink.
type Logger struct {
	handler *Handler
	logger  *slog.Logger
	closer  io.Closer

	closeOnce sync.Once
	closeErr  error
}

// Open opens (or creates) the sink at path in append mode and writes an
// initialization entry.
//
// If the file cannot be opened the error wraps ErrSinkUnavailable, the failure
// is written to the diagnostic writer, and the returned Logger is a no-op.
func Open(path string, minLevel Level, opts ...Option) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		cfg := newOptions(opts)
		if cfg.diag != nil {
			fmt.Fprintf(cfg.diag, "audit log: cannot open %s: %v\n", path, err)
		}
		return newLogger(nil, nil, minLevel, opts), fmt.Errorf("open audit log %s: %w: %w", path, ErrSinkUnavailable, err)
	}

	l := newLogger(f, f, minLevel, opts)
	l.Record(LevelInfo, "audit log initialized", "path", path)
	return l, nil
}

// New creates a Logger writing to w. The caller keeps ownership of w.
func New(w io.Writer, minLevel Level, opts ...Option) *Logger {
	l := newLogger(w, nil, minLevel, opts)
	l.Record(LevelInfo, "audit log initialized")
	return l
}

// Discard returns a Logger that drops every entry.
func Discard() *Logger {
	return newLogger(nil, nil, LevelInfo, []Option{WithDiagnostics(nil)})
}

func newLogger(out io.Writer, closer io.Closer, minLevel Level, opts []Option) *Logger {
	h := NewHandler(out, minLevel, opts...)
	return &Logger{
		handler: h,
		logger:  slog.New(h),
		closer:  closer,
	}
}

// Record writes message at level. Entries below the minimum level return
// without any I/O. args are slog-style key/value pairs appended to the line.
func (l *Logger) Record(level Level, msg string, args ...any) {
	l.logger.Log(context.Background(), level, msg, args...)
}

// Info records at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.Record(LevelInfo, msg, args...) }

// Warn records at LevelWarning.
func (l *Logger) Warn(msg string, args ...any) { l.Record(LevelWarning, msg, args...) }

// Error records at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.Record(LevelError, msg, args...) }

// Enabled reports whether entries at level would reach the sink.
func (l *Logger) Enabled(level Level) bool {
	return l.handler.Enabled(context.Background(), level)
}

// Slog exposes the sink as a *slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// Close writes a final shutdown entry and releases the sink. Safe to call
// more than once; later calls return the first call's error.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		l.Record(LevelInfo, "audit log shutting down")
		l.handler.sink.detach()
		if l.closer != nil {
			l.closeErr = l.closer.Close()
		}
	})
	return l.closeErr
}
