package auditlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is the severity of an audit entry.
type Level = slog.Level

const (
	LevelInfo    Level = slog.LevelInfo
	LevelWarning Level = slog.LevelWarn
	LevelError   Level = slog.LevelError
)

// LevelName renders a level the way it appears in the sink.
func LevelName(l Level) string {
	switch {
	case l >= LevelError:
		return "ERROR"
	case l >= LevelWarning:
		return "WARNING"
	case l >= LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// ParseLevel accepts "info", "warning" (or "warn") and "error", in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q: must be one of info, warning, error", s)
	}
}
