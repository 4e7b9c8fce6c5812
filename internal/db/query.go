package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Result wraps a backend result set together with the SQL that produced
// it. Ownership transfers to the caller as soon as Query returns.
type Result struct {
	SQL  string
	rows *sqlx.Rows
}

// Query sends a finished SQL string to the backend and returns its result
// set. The caller owns the result and must close it. Failures come back
// classified and carry the offending SQL.
func (a *Adapter) Query(sql string) (*Result, error) {
	if !a.IsConnected() {
		return nil, &ConnectionError{DriverError{Message: "query on closed connection", Query: sql}}
	}

	start := time.Now()
	rows, err := a.conn.QueryxContext(context.Background(), sql)
	a.lastElapsed = time.Since(start).Seconds()

	if err != nil {
		return nil, classifyError(err, sql)
	}
	return &Result{SQL: sql, rows: rows}, nil
}

// Exec runs a statement that returns no rows and records its affected-row
// count.
func (a *Adapter) Exec(sql string) (int64, error) {
	if !a.IsConnected() {
		return 0, &ConnectionError{DriverError{Message: "exec on closed connection", Query: sql}}
	}

	start := time.Now()
	res, err := a.conn.ExecContext(context.Background(), sql)
	a.lastElapsed = time.Since(start).Seconds()

	if err != nil {
		return 0, classifyError(err, sql)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, classifyError(err, sql)
	}
	a.lastAffected = affected
	return affected, nil
}

// AffectedRows reports the row count of the most recent data-modifying
// statement. Meaningful only until the next statement runs.
func (a *Adapter) AffectedRows() int64 { return a.lastAffected }

// QueryElapsedTime reports the wall-clock seconds of the last statement
// attempt that reached the backend, successful or not.
func (a *Adapter) QueryElapsedTime() float64 { return a.lastElapsed }

// LastInsertedID reads the current value of a sequence. The backend has no
// implicit last-insert id, so the sequence must be named explicitly.
func (a *Adapter) LastInsertedID(sequence string) (int64, error) {
	if strings.TrimSpace(sequence) == "" {
		return 0, &InvalidArgumentError{Reason: "sequence name is required"}
	}

	res, err := a.invoke("SELECT CURRVAL(" + pq.QuoteLiteral(sequence) + ")")
	if err != nil {
		return 0, err
	}
	defer res.Close()

	var id int64
	if err := res.ScanSingle(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Result) Columns() ([]string, error) {
	if r == nil || r.rows == nil {
		return nil, nil
	}
	cols, err := r.rows.Columns()
	if err != nil {
		return nil, classifyError(err, r.SQL)
	}
	return cols, nil
}

func (r *Result) Next() bool {
	return r != nil && r.rows != nil && r.rows.Next()
}

func (r *Result) Scan(dest ...any) error {
	if err := r.rows.Scan(dest...); err != nil {
		return classifyError(err, r.SQL)
	}
	return nil
}

func (r *Result) Err() error {
	if r == nil || r.rows == nil {
		return nil
	}
	if err := r.rows.Err(); err != nil {
		return classifyError(err, r.SQL)
	}
	return nil
}

// Close releases the backend result set. Safe on an empty result.
func (r *Result) Close() error {
	if r == nil || r.rows == nil {
		return nil
	}
	return r.rows.Close()
}

// ScanSingle reads the first column of the first row.
func (r *Result) ScanSingle(dest any) error {
	if !r.Next() {
		if err := r.Err(); err != nil {
			return err
		}
		return &QueryError{DriverError{Message: "no rows in result", Query: r.SQL}}
	}
	return r.Scan(dest)
}

// ReadAll drains the result into column names and stringified rows. NULLs
// render as the literal "NULL".
func (r *Result) ReadAll() ([]string, [][]string, error) {
	columns, err := r.Columns()
	if err != nil {
		return nil, nil, err
	}

	values := make([]any, len(columns))
	valuePtrs := make([]any, len(columns))
	for i := range columns {
		valuePtrs[i] = &values[i]
	}

	var data [][]string
	for r.Next() {
		if err := r.Scan(valuePtrs...); err != nil {
			return nil, nil, err
		}
		rowData := make([]string, len(columns))
		for i, val := range values {
			switch v := val.(type) {
			case nil:
				rowData[i] = "NULL"
			case []byte:
				rowData[i] = string(v)
			default:
				rowData[i] = fmt.Sprintf("%v", v)
			}
		}
		data = append(data, rowData)
	}
	if err := r.Err(); err != nil {
		return nil, nil, err
	}
	return columns, data, nil
}
