package db

// Transaction and savepoint statements all flow through the logged-query
// path so caller instrumentation observes them. The adapter tracks no
// client-side transaction depth; nesting policy belongs to the caller.

// Transaction isolation levels accepted by SetTransactionIsolationLevel.
const (
	IsolationReadUncommitted = "read-uncommitted"
	IsolationReadCommitted   = "read-committed"
	IsolationRepeatableRead  = "repeatable-read"
	IsolationSerializable    = "serializable"
)

var isolationLevels = map[string]string{
	IsolationReadUncommitted: "READ UNCOMMITTED",
	IsolationReadCommitted:   "READ COMMITTED",
	IsolationRepeatableRead:  "REPEATABLE READ",
	IsolationSerializable:    "SERIALIZABLE",
}

func (a *Adapter) BeginTransaction() error {
	return a.run("START TRANSACTION")
}

func (a *Adapter) CommitTransaction() error {
	return a.run("COMMIT")
}

func (a *Adapter) RollbackTransaction() error {
	return a.run("ROLLBACK")
}

func (a *Adapter) CreateSavepoint(name string) error {
	return a.run("SAVEPOINT " + a.QuoteIdentifier(name))
}

func (a *Adapter) ReleaseSavepoint(name string) error {
	return a.run("RELEASE SAVEPOINT " + a.QuoteIdentifier(name))
}

func (a *Adapter) RollbackSavepoint(name string) error {
	return a.run("ROLLBACK TO SAVEPOINT " + a.QuoteIdentifier(name))
}

// SetTransactionIsolationLevel applies one of the four recognized
// symbolic levels to the session. Anything else is not supported.
func (a *Adapter) SetTransactionIsolationLevel(level string) error {
	name, ok := isolationLevels[level]
	if !ok {
		return &NotSupportedError{Feature: "isolation level " + level}
	}
	return a.run("SET SESSION CHARACTERISTICS AS TRANSACTION ISOLATION LEVEL " + name)
}
