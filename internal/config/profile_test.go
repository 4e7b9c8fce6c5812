package config

import (
	"testing"
)

func TestProfileToParams(t *testing.T) {
	profile := &Profile{
		Name:           "prod",
		Host:           "db.local",
		Port:           5433,
		Database:       "app",
		Username:       "svc",
		Password:       "secret",
		SSLMode:        "require",
		ConnectTimeout: 10,
		TimeZone:       "auto",
	}

	params := profile.ToParams()

	want := map[string]string{
		"host":            "db.local",
		"port":            "5433",
		"database":        "app",
		"username":        "svc",
		"password":        "secret",
		"sslmode":         "require",
		"connect_timeout": "10",
		"connectionTz":    "auto",
	}
	if len(params) != len(want) {
		t.Errorf("ToParams() has %d keys, want %d: %v", len(params), len(want), params)
	}
	for key, value := range want {
		if params[key] != value {
			t.Errorf("params[%q] = %q, want %q", key, params[key], value)
		}
	}
}

func TestProfileToParamsSkipsZeroValues(t *testing.T) {
	params := (&Profile{Name: "min", Host: "localhost"}).ToParams()
	if len(params) != 1 {
		t.Errorf("ToParams() = %v, want only host", params)
	}
}
