// Package db is a PostgreSQL driver adapter: it owns one live backend
// session and exposes query dispatch, transaction and savepoint control,
// value/literal conversion and classification of backend errors into a
// stable taxonomy.
package db

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// LoggedQuery executes an internally generated statement so that
// caller-side logging and instrumentation observe it.
type LoggedQuery func(sql string) (*Result, error)

// Adapter wraps a single PostgreSQL session. It is not safe for concurrent
// use; one adapter serves one logical thread of control.
type Adapter struct {
	// DefaultTimeZone backs the "auto" timezone sentinel. time.Local is
	// used when unset.
	DefaultTimeZone *time.Location

	db       *sqlx.DB
	conn     *sqlx.Conn
	timezone *time.Location
	invoker  LoggedQuery

	lastAffected int64
	lastElapsed  float64

	nowFn func() time.Time
}

func NewAdapter() *Adapter {
	return &Adapter{nowFn: time.Now}
}

// Caller-facing parameter aliases mapped onto the backend's names.
var paramAliases = map[string]string{
	"database": "dbname",
	"username": "user",
	"address":  "hostaddr",
}

// The parameters the DSN builder recognizes. Anything else is dropped.
var dsnParams = []string{
	"host", "hostaddr", "port", "dbname", "user", "password",
	"connect_timeout", "options", "sslmode", "service",
}

// ParamTimeZone is the configuration key holding the connection timezone:
// a zone name, "auto" (process default) or "auto-offset" (current UTC
// offset).
const ParamTimeZone = "connectionTz"

const (
	tzAuto       = "auto"
	tzAutoOffset = "auto-offset"
)

// Connect opens a forced-new backend session, configures its timezone and
// installs the logged-query invoker used for every internally issued
// statement. A nil invoker routes internal statements through Query
// directly. Any failure surfaces as *ConnectionError.
func (a *Adapter) Connect(params map[string]string, invoker LoggedQuery) (err error) {
	if a.IsConnected() {
		if err := a.Disconnect(); err != nil {
			return err
		}
	}

	// Scoped trap around the native open: a panicking client library must
	// surface as a connection error, not take the process down.
	defer func() {
		if r := recover(); r != nil {
			err = &ConnectionError{DriverError{Message: fmt.Sprint(r)}}
		}
	}()

	normalized := normalizeParams(params)

	loc, tzName, err := a.resolveTimeZone(normalized[ParamTimeZone])
	if err != nil {
		return &ConnectionError{DriverError{Message: err.Error(), cause: err}}
	}

	pool, err := sqlx.Open("postgres", buildDSN(normalized))
	if err != nil {
		return &ConnectionError{DriverError{Message: err.Error(), cause: err}}
	}
	// One adapter, one physical session.
	pool.SetMaxOpenConns(1)
	pool.SetMaxIdleConns(1)

	conn, err := pool.Connx(context.Background())
	if err != nil {
		pool.Close()
		return &ConnectionError{DriverError{Message: err.Error(), cause: err}}
	}

	a.db = pool
	a.conn = conn
	a.timezone = loc
	a.invoker = invoker

	if err := a.run("SET TIME ZONE " + pq.QuoteLiteral(tzName)); err != nil {
		a.Disconnect()
		return &ConnectionError{DriverError{Message: err.Error(), cause: err}}
	}

	// The native handle must not outlive a dropped adapter.
	runtime.SetFinalizer(a, func(ad *Adapter) { ad.Disconnect() })
	return nil
}

// Disconnect closes the native session. Safe to call when already
// disconnected.
func (a *Adapter) Disconnect() error {
	if !a.IsConnected() {
		return nil
	}
	runtime.SetFinalizer(a, nil)

	err := a.conn.Close()
	if cerr := a.db.Close(); err == nil {
		err = cerr
	}
	a.conn = nil
	a.db = nil
	a.timezone = nil
	a.invoker = nil

	if err != nil {
		return fmt.Errorf("closing connection: %w", err)
	}
	return nil
}

func (a *Adapter) IsConnected() bool { return a.conn != nil }

// Ping probes the live session. It reports false on connectivity failure
// instead of raising; reconnecting is the caller's decision.
func (a *Adapter) Ping() bool {
	if !a.IsConnected() {
		return false
	}
	return a.conn.PingContext(context.Background()) == nil
}

// ServerVersion returns the backend-reported version string.
func (a *Adapter) ServerVersion() (string, error) {
	if !a.IsConnected() {
		return "", &ConnectionError{DriverError{Message: "not connected"}}
	}
	res, err := a.invoke("SHOW server_version")
	if err != nil {
		return "", err
	}
	defer res.Close()

	var version string
	if err := res.ScanSingle(&version); err != nil {
		return "", err
	}
	return version, nil
}

// Conn exposes the raw session for platform-level escape hatches.
func (a *Adapter) Conn() *sqlx.Conn { return a.conn }

// TimeZone is the connection timezone; nil when disconnected.
func (a *Adapter) TimeZone() *time.Location { return a.timezone }

// invoke routes an internal statement through the logged-query path.
func (a *Adapter) invoke(sql string) (*Result, error) {
	if a.invoker != nil {
		return a.invoker(sql)
	}
	return a.Query(sql)
}

// run invokes an internal statement and discards its (empty) result set.
func (a *Adapter) run(sql string) error {
	res, err := a.invoke(sql)
	if err != nil {
		return err
	}
	return res.Close()
}

func (a *Adapter) now() time.Time {
	if a.nowFn != nil {
		return a.nowFn()
	}
	return time.Now()
}

// resolveTimeZone turns the connectionTz parameter into a concrete
// location plus the name handed to SET TIME ZONE.
func (a *Adapter) resolveTimeZone(name string) (*time.Location, string, error) {
	switch name {
	case "", tzAuto:
		loc := a.DefaultTimeZone
		if loc == nil {
			loc = time.Local
		}
		return loc, loc.String(), nil
	case tzAutoOffset:
		now := a.now()
		offset := now.Format("-07:00")
		_, secs := now.Zone()
		return time.FixedZone(offset, secs), offset, nil
	default:
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, "", fmt.Errorf("unknown timezone %q: %w", name, err)
		}
		return loc, name, nil
	}
}

// normalizeParams maps caller-facing aliases onto backend parameter names.
func normalizeParams(params map[string]string) map[string]string {
	normalized := make(map[string]string, len(params))
	for key, value := range params {
		if backend, ok := paramAliases[key]; ok {
			key = backend
		}
		normalized[key] = value
	}
	return normalized
}

// buildDSN assembles a keyword/value connection string from the recognized
// parameters, in a fixed order. Unknown keys are silently dropped.
func buildDSN(params map[string]string) string {
	var parts []string
	for _, key := range dsnParams {
		value, ok := params[key]
		if !ok {
			continue
		}
		parts = append(parts, key+"="+quoteDSNValue(value))
	}
	return strings.Join(parts, " ")
}

func quoteDSNValue(value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return value
	}
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `\'`)
	return "'" + value + "'"
}
