package config

import (
	"strconv"

	"github.com/eduardofuncao/pgbridge/internal/db"
)

// Profile is a named set of connection settings for one backend.
type Profile struct {
	Name           string           `yaml:"name"`
	Host           string           `yaml:"host,omitempty"`
	HostAddr       string           `yaml:"hostaddr,omitempty"`
	Port           int              `yaml:"port,omitempty"`
	Database       string           `yaml:"database,omitempty"`
	Username       string           `yaml:"username,omitempty"`
	Password       string           `yaml:"password,omitempty"`
	SSLMode        string           `yaml:"sslmode,omitempty"`
	ConnectTimeout int              `yaml:"connect_timeout,omitempty"`
	Options        string           `yaml:"options,omitempty"`
	Service        string           `yaml:"service,omitempty"`
	TimeZone       string           `yaml:"timezone,omitempty"` // name, "auto" or "auto-offset"
	Queries        map[string]Query `yaml:"queries,omitempty"`
	LastQuery      string           `yaml:"last_query,omitempty"`
}

// Query is a saved SQL statement under a profile.
type Query struct {
	Name string `yaml:"name"`
	SQL  string `yaml:"sql"`
}

// ToParams flattens the profile into the adapter's parameter map. Zero
// values stay out of the map so the DSN builder skips them.
func (p *Profile) ToParams() map[string]string {
	params := make(map[string]string)

	set := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}
	set("host", p.Host)
	set("address", p.HostAddr)
	set("database", p.Database)
	set("username", p.Username)
	set("password", p.Password)
	set("sslmode", p.SSLMode)
	set("options", p.Options)
	set("service", p.Service)
	set(db.ParamTimeZone, p.TimeZone)
	if p.Port != 0 {
		params["port"] = strconv.Itoa(p.Port)
	}
	if p.ConnectTimeout != 0 {
		params["connect_timeout"] = strconv.Itoa(p.ConnectTimeout)
	}
	return params
}
