package db

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeParams(t *testing.T) {
	got := normalizeParams(map[string]string{
		"database": "app",
		"username": "svc",
		"address":  "10.0.0.5",
		"host":     "db.local",
	})

	want := map[string]string{
		"dbname":   "app",
		"user":     "svc",
		"hostaddr": "10.0.0.5",
		"host":     "db.local",
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("normalized[%q] = %q, want %q", key, got[key], value)
		}
	}
	if _, ok := got["database"]; ok {
		t.Error("alias key survived normalization")
	}
}

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
		want   string
	}{
		{
			name: "recognized keys in fixed order",
			params: map[string]string{
				"user":   "svc",
				"host":   "db.local",
				"port":   "5432",
				"dbname": "app",
			},
			want: "host=db.local port=5432 dbname=app user=svc",
		},
		{
			name: "unknown keys dropped",
			params: map[string]string{
				"host":        "db.local",
				"application": "pgbridge",
				"fetch_size":  "100",
			},
			want: "host=db.local",
		},
		{
			name: "values with spaces and quotes get quoted",
			params: map[string]string{
				"password": "p a'ss",
			},
			want: `password='p a\'ss'`,
		},
		{
			name: "empty value quoted",
			params: map[string]string{
				"options": "",
			},
			want: "options=''",
		},
		{
			name:   "timezone key never reaches the DSN",
			params: map[string]string{ParamTimeZone: "UTC", "host": "db.local"},
			want:   "host=db.local",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildDSN(tt.params); got != tt.want {
				t.Errorf("buildDSN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveTimeZone(t *testing.T) {
	t.Run("explicit name", func(t *testing.T) {
		a := NewAdapter()
		loc, name, err := a.resolveTimeZone("UTC")
		if err != nil {
			t.Fatalf("resolveTimeZone(UTC) error: %v", err)
		}
		if loc != time.UTC || name != "UTC" {
			t.Errorf("got (%v, %q)", loc, name)
		}
	})

	t.Run("auto uses the injected default", func(t *testing.T) {
		a := NewAdapter()
		a.DefaultTimeZone = time.FixedZone("test/zone", 3600)

		loc, name, err := a.resolveTimeZone("auto")
		if err != nil {
			t.Fatalf("resolveTimeZone(auto) error: %v", err)
		}
		if loc != a.DefaultTimeZone {
			t.Errorf("auto resolved to %v, want the injected default", loc)
		}
		if name != "test/zone" {
			t.Errorf("auto resolved name %q", name)
		}
	})

	t.Run("auto-offset uses the current offset", func(t *testing.T) {
		a := NewAdapter()
		a.nowFn = func() time.Time {
			return time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("", 2*3600+30*60))
		}

		loc, name, err := a.resolveTimeZone("auto-offset")
		if err != nil {
			t.Fatalf("resolveTimeZone(auto-offset) error: %v", err)
		}
		if name != "+02:30" {
			t.Errorf("auto-offset name = %q, want +02:30", name)
		}
		_, secs := time.Date(2024, 6, 1, 12, 0, 0, 0, loc).Zone()
		if secs != 2*3600+30*60 {
			t.Errorf("auto-offset zone offset = %d seconds", secs)
		}
	})

	t.Run("unknown name fails", func(t *testing.T) {
		a := NewAdapter()
		if _, _, err := a.resolveTimeZone("Neither/Here"); err == nil {
			t.Error("resolveTimeZone accepted a bogus zone")
		}
	})
}

func TestDisconnectedAdapter(t *testing.T) {
	a := NewAdapter()

	if a.IsConnected() {
		t.Error("fresh adapter reports connected")
	}
	if a.Ping() {
		t.Error("Ping() on a closed connection reported alive")
	}
	if err := a.Disconnect(); err != nil {
		t.Errorf("Disconnect() on a closed connection: %v", err)
	}
	if err := a.Disconnect(); err != nil {
		t.Errorf("second Disconnect(): %v", err)
	}

	_, err := a.Query("SELECT 1")
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Errorf("Query() while disconnected = %T, want *ConnectionError", err)
	}

	_, err = a.Exec("DELETE FROM t")
	if !errors.As(err, &connErr) {
		t.Errorf("Exec() while disconnected = %T, want *ConnectionError", err)
	}

	if _, err := a.ServerVersion(); !errors.As(err, &connErr) {
		t.Errorf("ServerVersion() while disconnected = %T, want *ConnectionError", err)
	}
}

func TestLastInsertedIDRequiresSequence(t *testing.T) {
	a := NewAdapter()

	for _, sequence := range []string{"", "   "} {
		_, err := a.LastInsertedID(sequence)
		var invalid *InvalidArgumentError
		if !errors.As(err, &invalid) {
			t.Errorf("LastInsertedID(%q) = %T, want *InvalidArgumentError", sequence, err)
		}
	}
}

func TestLastInsertedIDIssuesOneLoggedQuery(t *testing.T) {
	a := NewAdapter()

	var logged []string
	a.invoker = func(sql string) (*Result, error) {
		logged = append(logged, sql)
		return nil, &DriverError{Message: "stopped by test"}
	}

	if _, err := a.LastInsertedID("pub_seq"); err == nil {
		t.Fatal("expected the stub invoker error")
	}
	if len(logged) != 1 {
		t.Fatalf("issued %d logged queries, want 1", len(logged))
	}
	if logged[0] != "SELECT CURRVAL('pub_seq')" {
		t.Errorf("logged query = %q", logged[0])
	}
}

func TestQuoteDSNValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"", "''"},
		{"two words", "'two words'"},
		{`back\slash`, `'back\\slash'`},
		{"o'neil", `'o\'neil'`},
	}
	for _, tt := range tests {
		if got := quoteDSNValue(tt.input); got != tt.want {
			t.Errorf("quoteDSNValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
