package store

import (
	"database/sql"
	"errors"
	"testing"
)

func TestError(t *testing.T) {
	baseErr := errors.New("base error")
	storeErr := &Error{
		Op:    "Insert",
		Table: "todos",
		Err:   baseErr,
	}

	t.Run("Error method", func(t *testing.T) {
		expected := "store: Insert: table=todos: base error"
		if storeErr.Error() != expected {
			t.Errorf("expected %q, got %q", expected, storeErr.Error())
		}
	})

	t.Run("Unwrap method", func(t *testing.T) {
		if errors.Unwrap(storeErr) != baseErr {
			t.Error("Unwrap should return base error")
		}
	})

	t.Run("Is method", func(t *testing.T) {
		if !errors.Is(storeErr, baseErr) {
			t.Error("Is should match base error")
		}
	})
}

func TestParseDriverError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType error
	}{
		{
			name:     "nil error",
			err:      nil,
			wantType: nil,
		},
		{
			name:     "no rows",
			err:      sql.ErrNoRows,
			wantType: ErrNotFound,
		},
		{
			name:     "sqlite not null violation",
			err:      errors.New("NOT NULL constraint failed: todos.content"),
			wantType: ErrNotNull,
		},
		{
			name:     "postgres not null violation",
			err:      errors.New(`null value in column "content" violates not-null constraint`),
			wantType: ErrNotNull,
		},
		{
			name:     "sqlite unique violation",
			err:      errors.New("UNIQUE constraint failed: todos.id"),
			wantType: ErrDuplicateKey,
		},
		{
			name:     "connection failure",
			err:      errors.New("dial tcp: connection refused"),
			wantType: ErrConnectionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDriverError(tt.err, "Op", "todos")
			if tt.wantType == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.wantType) {
				t.Errorf("expected %v, got %v", tt.wantType, got)
			}
		})
	}
}

func TestParseDriverErrorUnknown(t *testing.T) {
	base := errors.New("disk I/O error")
	got := parseDriverError(base, "List", "todos")

	if !errors.Is(got, base) {
		t.Errorf("unknown errors should still wrap the original, got %v", got)
	}
	if errors.Is(got, ErrNotFound) {
		t.Error("unknown errors must not classify as ErrNotFound")
	}
}
