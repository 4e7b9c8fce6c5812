package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

var CfgPath = os.ExpandEnv("$HOME/.config/pgbridge/")
var CfgFile = filepath.Join(CfgPath, "config.yaml")

type Config struct {
	CurrentProfile string              `yaml:"current_profile"`
	Profiles       map[string]*Profile `yaml:"profiles"`
	Style          Style               `yaml:"style"`
}

type Style struct {
	Accent string `yaml:"accent_color"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Creating blank config file at", CfgFile)
			cfg := &Config{
				CurrentProfile: "",
				Profiles:       make(map[string]*Profile),
				Style:          Style{},
			}
			if err := cfg.Save(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}
	return &cfg, nil
}

func (c *Config) Save() error {
	if err := os.MkdirAll(CfgPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(CfgFile, data, 0644)
}

// Current returns the active profile, or nil when none is selected.
func (c *Config) Current() *Profile {
	if c.CurrentProfile == "" {
		return nil
	}
	return c.Profiles[c.CurrentProfile]
}

// SaveQueryToProfile stores a named query under a profile.
func (c *Config) SaveQueryToProfile(profileName string, query Query) error {
	profile, ok := c.Profiles[profileName]
	if !ok {
		return fmt.Errorf("profile %q does not exist", profileName)
	}
	if profile.Queries == nil {
		profile.Queries = make(map[string]Query)
	}
	profile.Queries[query.Name] = query
	return c.Save()
}

// UpdateLastQuery records the most recently executed SQL for a profile.
func (c *Config) UpdateLastQuery(profileName, sql string) error {
	profile, ok := c.Profiles[profileName]
	if !ok {
		return fmt.Errorf("profile %q does not exist", profileName)
	}
	profile.LastQuery = sql
	return c.Save()
}
