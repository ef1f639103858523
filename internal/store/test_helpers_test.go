package store

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chebotarevdmitr/school-inventory/internal/auditlog"
)

// entry is one captured audit record.
type entry struct {
	Level auditlog.Level
	Msg   string
	Args  []any
}

// recorder captures audit records in memory.
type recorder struct {
	mu      sync.Mutex
	entries []entry
}

func (r *recorder) Record(level auditlog.Level, msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{Level: level, Msg: msg, Args: args})
}

// has reports whether a record with this level and message was captured.
func (r *recorder) has(level auditlog.Level, msg string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Level == level && e.Msg == msg {
			return true
		}
	}
	return false
}

// argString renders the value stored under key for the first matching message.
func (r *recorder) argString(msg, key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Msg != msg {
			continue
		}
		for i := 0; i+1 < len(e.Args); i += 2 {
			if e.Args[i] == key {
				return fmt.Sprint(e.Args[i+1])
			}
		}
	}
	return ""
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// createTestStore opens a fresh database file under t.TempDir().
func createTestStore(t *testing.T) (*Store, *recorder) {
	t.Helper()
	rec := &recorder{}
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, rec)
	require.NoError(t, err, "Open() failed")
	t.Cleanup(func() { s.Close() })
	return s, rec
}

// createInitializedStore opens a fresh database and creates the schema.
func createInitializedStore(t *testing.T) (*Store, *recorder) {
	t.Helper()
	s, rec := createTestStore(t)
	require.NoError(t, s.InitializeSchema(t.Context()), "InitializeSchema() failed")
	rec.reset()
	return s, rec
}

func desk() Asset {
	return Asset{Name: "Desk", Quantity: 5, InventoryTag: "INV-001", Location: "101", Custodian: "Ivanov I.I."}
}

// countRows returns the number of rows in table.
func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRow("SELECT count(*) FROM "+table).Scan(&n))
	return n
}

// verifyPragma checks that a pragma is set to the expected value.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
