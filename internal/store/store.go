package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-sqlite3"

	"github.com/chebotarevdmitr/school-inventory/internal/auditlog"
)

// driverName is go-sqlite3 with the store's SQL functions registered on
// every new connection.
const driverName = "sqlite3_inventory"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("nfc", normalize, true)
		},
	})
}

// Recorder receives audit entries. *auditlog.Logger satisfies it.
type Recorder interface {
	Record(level auditlog.Level, msg string, args ...any)
}

// Store is the persistence component. It exclusively owns one SQLite
// connection for its whole lifetime.
//
// Thread-safety: the pool is pinned to a single connection, so concurrent
// calls are serialised by database/sql. Callers that need an operation and
// its audit line to be ordered together must serialise their own calls.
type Store struct {
	db   *sql.DB
	log  Recorder
	path string

	closeOnce sync.Once
	closeErr  error
}

// Open creates or opens the SQLite database at path.
//
// The database is configured with:
//   - one open connection, never pooled
//   - 5-second busy timeout for lock contention
//   - foreign key enforcement
//
// A failure is a *Error of KindConnection and leaves nothing open.
// The attempt and its outcome are recorded on log.
func Open(path string, log Recorder) (*Store, error) {
	if log == nil {
		log = auditlog.Discard()
	}
	log.Record(auditlog.LevelInfo, "opening database", "path", path)

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, openFailed(log, path, err)
	}

	// sql.Open is lazy; Ping forces the engine to open the file
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, openFailed(log, path, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, openFailed(log, path, err)
	}

	log.Record(auditlog.LevelInfo, "database opened", "path", path)
	return &Store{db: db, log: log, path: path}, nil
}

func openFailed(log Recorder, path string, err error) error {
	log.Record(auditlog.LevelError, "cannot open database", "path", path, "error", err.Error())
	return &Error{Kind: KindConnection, Op: "open " + path, Err: err}
}

// Close closes the database connection. Safe to call more than once.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.db.Close()
		if s.closeErr != nil {
			s.log.Record(auditlog.LevelError, "error closing database", "path", s.path, "error", s.closeErr.Error())
			return
		}
		s.log.Record(auditlog.LevelInfo, "database connection closed", "path", s.path)
	})
	return s.closeErr
}

// Path returns the path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// ExecScript reads a SQL script from path and executes every statement in it.
// Statements run one after another without a surrounding transaction.
func (s *Store) ExecScript(ctx context.Context, path string) error {
	const op = "exec script"
	s.log.Record(auditlog.LevelInfo, "executing script", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Record(auditlog.LevelError, "cannot read script", "path", path, "error", err.Error())
		return &Error{Kind: KindStatement, Op: op, Err: err}
	}

	if _, err := s.exec(ctx, op, string(data)); err != nil {
		return err
	}

	s.log.Record(auditlog.LevelInfo, "script executed", "path", path)
	return nil
}

// exec runs one statement, recording engine failures at ERROR with the
// engine's diagnostic text.
func (s *Store) exec(ctx context.Context, op, query string, args ...any) (sql.Result, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		se := classify(op, err)
		s.log.Record(auditlog.LevelError, "statement failed", "op", op, "kind", string(se.Kind), "error", err.Error())
		return nil, se
	}
	return res, nil
}
