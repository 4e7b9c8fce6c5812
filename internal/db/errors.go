package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// SQLSTATE codes with a dedicated classification.
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateFeatureNotSupported = "0A000"
)

// DriverError is the generic backend failure. It always keeps the raw
// message and, when known, the SQLSTATE and the offending SQL text.
type DriverError struct {
	Message  string
	SQLState string
	Query    string
	cause    error
}

func (e *DriverError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.SQLState != "" {
		fmt.Fprintf(&b, " (SQLSTATE %s)", e.SQLState)
	}
	if e.Query != "" {
		fmt.Fprintf(&b, " in %q", e.Query)
	}
	return b.String()
}

func (e *DriverError) Unwrap() error { return e.cause }

// ConnectionError is a connect-phase or connection-level failure.
type ConnectionError struct {
	DriverError
}

func (e *ConnectionError) Unwrap() error { return &e.DriverError }

// QueryError is a failure of a specific executed statement.
type QueryError struct {
	DriverError
}

func (e *QueryError) Unwrap() error { return &e.DriverError }

// ForeignKeyViolationError, NotNullViolationError and UniqueViolationError
// are constraint-level specializations of a query failure. Each unwraps to
// its generalization so errors.As finds the broader class.
type ForeignKeyViolationError struct {
	QueryError
}

func (e *ForeignKeyViolationError) Unwrap() error { return &e.QueryError }

type NotNullViolationError struct {
	QueryError
}

func (e *NotNullViolationError) Unwrap() error { return &e.QueryError }

type UniqueViolationError struct {
	QueryError
}

func (e *UniqueViolationError) Unwrap() error { return &e.QueryError }

// NotSupportedError marks a conversion, type or isolation level this
// adapter does not implement.
type NotSupportedError struct {
	Feature string
}

func (e *NotSupportedError) Error() string { return "not supported: " + e.Feature }

// InvalidArgumentError marks a structurally invalid caller argument.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string { return "invalid argument: " + e.Reason }

// classifyError maps a backend failure onto the portable taxonomy.
// query is the offending SQL when known, empty otherwise.
func classifyError(err error, query string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		state := string(pqErr.Code)
		qe := QueryError{DriverError{
			Message:  pqErr.Message,
			SQLState: state,
			Query:    query,
			cause:    err,
		}}
		switch {
		// FK violations hit during a TRUNCATE surface as feature-not-supported
		case state == sqlStateFeatureNotSupported &&
			strings.Contains(strings.ToLower(pqErr.Message), "truncate"):
			return &ForeignKeyViolationError{qe}
		case state == sqlStateForeignKeyViolation:
			return &ForeignKeyViolationError{qe}
		case state == sqlStateNotNullViolation:
			return &NotNullViolationError{qe}
		case state == sqlStateUniqueViolation:
			return &UniqueViolationError{qe}
		default:
			return &qe
		}
	}

	base := DriverError{Message: err.Error(), Query: query, cause: err}
	switch {
	case strings.Contains(strings.ToLower(base.Message), "connect"):
		return &ConnectionError{base}
	case query != "":
		return &QueryError{base}
	default:
		return &base
	}
}
