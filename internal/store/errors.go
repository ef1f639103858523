package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Kind categorises store failures.
type Kind string

const (
	// KindConnection indicates the database could not be opened. Fatal for the store.
	KindConnection Kind = "CONNECTION"

	// KindStatement indicates a malformed statement or an engine I/O failure.
	KindStatement Kind = "STATEMENT"

	// KindConstraint indicates a constraint violation, e.g. a duplicate inventory tag.
	KindConstraint Kind = "CONSTRAINT"

	// KindNotFound indicates no row matched the given key.
	KindNotFound Kind = "NOT_FOUND"
)

// Sentinels for errors.Is. Only Kind is compared.
var (
	ErrConnection = &Error{Kind: KindConnection}
	ErrStatement  = &Error{Kind: KindStatement}
	ErrConstraint = &Error{Kind: KindConstraint}
	ErrNotFound   = &Error{Kind: KindNotFound}
)

// Error is returned by every Store operation that fails.
type Error struct {
	// Kind identifies the failure category.
	Kind Kind

	// Op names the store operation, e.g. "insert asset".
	Op string

	// Err is the underlying engine error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	default:
		return string(e.Kind)
	}
}

// Unwrap returns the underlying engine error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of a store error, or "" for other errors.
// Uses errors.As to handle wrapped errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// classify wraps an engine error, separating constraint violations from
// other statement failures.
func classify(op string, err error) *Error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return &Error{Kind: KindConstraint, Op: op, Err: err}
	}
	return &Error{Kind: KindStatement, Op: op, Err: err}
}
