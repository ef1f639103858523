// Package auditlog provides the append-only audit trail for the inventory.
//
// Every entry is a single line:
//
//	[2006-01-02 15:04:05] [LEVEL] message key=value ...
//
// The log is write-only from the program's point of view. Entries below the
// configured minimum level are dropped before any I/O happens.
//
// # Levels
//
// Three levels are supported, ordered INFO < WARNING < ERROR. They map onto
// the log/slog levels Info, Warn and Error so the sink can also be driven
// through an ordinary *slog.Logger (see Logger.Slog).
//
// # Concurrency
//
// Timestamp formatting and line emission happen under one mutex shared by
// the Handler and every handler derived from it via WithAttrs/WithGroup.
// Lines from concurrent writers never interleave.
//
// # Diagnostics
//
// WARNING and ERROR lines are mirrored to a diagnostic writer (os.Stderr by
// default). When the sink file cannot be opened, the failure is reported on
// the diagnostic writer and the returned Logger silently drops all entries.
package auditlog
