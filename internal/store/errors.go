package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrNotFound         = errors.New("todo item not found")
	ErrNotNull          = errors.New("not null constraint violation")
	ErrDuplicateKey     = errors.New("duplicate key violation")
	ErrConnectionFailed = errors.New("database connection failed")
)

// Error provides detailed error information for a failed storage operation.
type Error struct {
	Op    string // Operation that failed
	Table string // Table involved
	Err   error  // Underlying error
}

func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("store: %s", e.Op))

	if e.Table != "" {
		parts = append(parts, fmt.Sprintf("table=%s", e.Table))
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for Error type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return errors.Is(e.Err, target)
	}

	if t.Op != "" && e.Op == t.Op {
		return true
	}

	return errors.Is(e.Err, t.Err)
}

// parseDriverError converts driver errors to store errors. Both the sqlite3
// and postgres drivers report constraint violations as plain error strings, so
// classification is by message.
func parseDriverError(err error, op, table string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &Error{Op: op, Table: table, Err: ErrNotFound}
	}

	errStr := err.Error()

	if strings.Contains(errStr, "NOT NULL constraint failed") ||
		strings.Contains(errStr, "violates not-null constraint") {
		return &Error{Op: op, Table: table, Err: ErrNotNull}
	}

	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "duplicate key value violates unique constraint") {
		return &Error{Op: op, Table: table, Err: ErrDuplicateKey}
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "broken pipe") {
		return &Error{Op: op, Table: table, Err: ErrConnectionFailed}
	}

	return &Error{Op: op, Table: table, Err: err}
}
