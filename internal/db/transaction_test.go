package db

import (
	"errors"
	"testing"
)

// recordingAdapter routes the logged-query path into a slice so statement
// shapes can be asserted without a live backend.
func recordingAdapter() (*Adapter, *[]string) {
	a := NewAdapter()
	logged := &[]string{}
	a.invoker = func(sql string) (*Result, error) {
		*logged = append(*logged, sql)
		return &Result{SQL: sql}, nil
	}
	return a, logged
}

func TestTransactionStatements(t *testing.T) {
	tests := []struct {
		name string
		call func(a *Adapter) error
		want string
	}{
		{"begin", (*Adapter).BeginTransaction, "START TRANSACTION"},
		{"commit", (*Adapter).CommitTransaction, "COMMIT"},
		{"rollback", (*Adapter).RollbackTransaction, "ROLLBACK"},
		{
			"create savepoint",
			func(a *Adapter) error { return a.CreateSavepoint("sp1") },
			`SAVEPOINT "sp1"`,
		},
		{
			"release savepoint",
			func(a *Adapter) error { return a.ReleaseSavepoint("sp1") },
			`RELEASE SAVEPOINT "sp1"`,
		},
		{
			"rollback savepoint",
			func(a *Adapter) error { return a.RollbackSavepoint("sp1") },
			`ROLLBACK TO SAVEPOINT "sp1"`,
		},
		{
			"savepoint name is escaped",
			func(a *Adapter) error { return a.CreateSavepoint(`sp";DROP TABLE x`) },
			`SAVEPOINT "sp"";DROP TABLE x"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, logged := recordingAdapter()
			if err := tt.call(a); err != nil {
				t.Fatalf("%s error: %v", tt.name, err)
			}
			if len(*logged) != 1 {
				t.Fatalf("issued %d logged queries, want 1", len(*logged))
			}
			if (*logged)[0] != tt.want {
				t.Errorf("logged %q, want %q", (*logged)[0], tt.want)
			}
		})
	}
}

func TestSetTransactionIsolationLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{IsolationReadUncommitted, "SET SESSION CHARACTERISTICS AS TRANSACTION ISOLATION LEVEL READ UNCOMMITTED"},
		{IsolationReadCommitted, "SET SESSION CHARACTERISTICS AS TRANSACTION ISOLATION LEVEL READ COMMITTED"},
		{IsolationRepeatableRead, "SET SESSION CHARACTERISTICS AS TRANSACTION ISOLATION LEVEL REPEATABLE READ"},
		{IsolationSerializable, "SET SESSION CHARACTERISTICS AS TRANSACTION ISOLATION LEVEL SERIALIZABLE"},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			a, logged := recordingAdapter()
			if err := a.SetTransactionIsolationLevel(tt.level); err != nil {
				t.Fatalf("SetTransactionIsolationLevel(%s) error: %v", tt.level, err)
			}
			if (*logged)[0] != tt.want {
				t.Errorf("logged %q, want %q", (*logged)[0], tt.want)
			}
		})
	}
}

func TestSetTransactionIsolationLevelRejectsUnknown(t *testing.T) {
	a, logged := recordingAdapter()

	err := a.SetTransactionIsolationLevel("chaos")
	var notSupported *NotSupportedError
	if !errors.As(err, &notSupported) {
		t.Fatalf("error = %T, want *NotSupportedError", err)
	}
	if len(*logged) != 0 {
		t.Errorf("rejected level still issued %d statements", len(*logged))
	}
}
