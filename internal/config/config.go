package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server struct {
		Port        string   `yaml:"port"`
		CORSOrigins []string `yaml:"cors_origins"`
		ReleaseMode bool     `yaml:"release_mode"`
	} `yaml:"server"`
	Report struct {
		Title string `yaml:"title"`
	} `yaml:"report"`
	Database struct {
		// SQLitePath enables the decision recorder when set.
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults and env cover it.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("API_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if os.Getenv("API_ENV") == "production" {
		cfg.Server.ReleaseMode = true
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
}
