package auditlog

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"
)

// TimeLayout is the second-resolution timestamp written at the start of each line.
const TimeLayout = "2006-01-02 15:04:05"

// sink is shared by a root Handler and every handler derived from it.
type sink struct {
	mu   sync.Mutex
	out  io.Writer // nil when unavailable or closed
	diag io.Writer // WARNING and ERROR mirror, may be nil
	open atomic.Bool
}

func (s *sink) detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = nil
	s.open.Store(false)
}

// Handler is a slog.Handler that renders audit lines.
//
// Thread-safety: all handlers derived from the same root share one mutex.
type Handler struct {
	sink   *sink
	level  slog.Leveler
	now    func() time.Time
	attrs  []slog.Attr
	groups []string
}

// NewHandler creates a handler writing to out. A nil out yields a handler
// that drops every record.
func NewHandler(out io.Writer, minLevel slog.Leveler, opts ...Option) *Handler {
	cfg := newOptions(opts)
	s := &sink{out: out, diag: cfg.diag}
	s.open.Store(out != nil)
	return &Handler{
		sink:  s,
		level: minLevel,
		now:   cfg.now,
	}
}

// Enabled reports whether a record at level l would be written.
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.sink.open.Load() && l >= h.level.Level()
}

// Handle formats and writes one line. The timestamp is taken under the lock
// so the sink is ordered by time as well as by arrival.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	if h.sink.out == nil {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.WriteString(h.now().Format(TimeLayout))
	buf.WriteString("] [")
	buf.WriteString(LevelName(r.Level))
	buf.WriteString("] ")
	writeEscaped(&buf, r.Message)

	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		appendAttr(&buf, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, prefix, a)
		return true
	})
	buf.WriteByte('\n')

	line := buf.Bytes()
	if _, err := h.sink.out.Write(line); err != nil {
		return err
	}
	if r.Level >= LevelWarning && h.sink.diag != nil {
		_, _ = h.sink.diag.Write(line)
	}
	return nil
}

// WithAttrs returns a handler that appends attrs to every line.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	prefix := strings.Join(h.groups, ".")
	h2.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

// WithGroup returns a handler that qualifies subsequent attribute keys.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(append([]string(nil), h.groups...), name)
	return &h2
}

func appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(buf, key, ga)
		}
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(quoteIfNeeded(a.Value.String()))
}

// quoteIfNeeded quotes values that are empty, contain separators, or carry
// anything that is not a printable single-line character.
func quoteIfNeeded(s string) string {
	if s == "" ||
		strings.ContainsAny(s, " =\"") ||
		strings.IndexFunc(s, unprintable) >= 0 ||
		!strconv.CanBackquote(s) {
		return strconv.Quote(s)
	}
	return s
}

// writeEscaped writes msg with every unprintable rune replaced by its Go
// escape, so one entry always occupies exactly one line.
func writeEscaped(buf *bytes.Buffer, msg string) {
	if strings.IndexFunc(msg, unprintable) < 0 {
		buf.WriteString(msg)
		return
	}
	for _, r := range msg {
		if !unprintable(r) {
			buf.WriteRune(r)
			continue
		}
		q := strconv.QuoteRune(r)
		buf.WriteString(q[1 : len(q)-1])
	}
}

func unprintable(r rune) bool {
	return r != ' ' && !unicode.IsPrint(r)
}
