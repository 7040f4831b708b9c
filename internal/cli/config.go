package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the tick.yaml configuration structure
type Config struct {
	Server struct {
		Addr                   string `yaml:"addr"`
		ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
	} `yaml:"server"`

	Database struct {
		Driver         string `yaml:"driver"`
		DSN            string `yaml:"dsn"`
		MaxConnections int    `yaml:"max_connections"`
	} `yaml:"database"`
}

// LoadConfig reads the configuration file at path. When path is empty the
// default locations are probed; a missing file yields defaults rather than an
// error.
func LoadConfig(path string) (*Config, error) {
	var config Config

	if path == "" {
		locations := []string{"tick.yaml", "tick.yml", ".tick.yaml", ".tick.yml"}
		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if config.Server.Addr == "" {
		config.Server.Addr = "localhost:8080"
	}
	if config.Server.ShutdownTimeoutSeconds == 0 {
		config.Server.ShutdownTimeoutSeconds = 10
	}
	if config.Database.Driver == "" {
		config.Database.Driver = "sqlite3"
	}
	if config.Database.DSN == "" {
		config.Database.DSN = "todo.db"
	}
	if config.Database.MaxConnections == 0 {
		config.Database.MaxConnections = 25
	}

	return &config, nil
}

// GetConfigPath resolves the config file path from the environment or the
// default locations.
func GetConfigPath() string {
	if path := os.Getenv("TICK_CONFIG"); path != "" {
		return path
	}

	locations := []string{"tick.yaml", "tick.yml", ".tick.yaml", ".tick.yml"}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}
