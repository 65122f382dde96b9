package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents taskvault configuration options
type Config struct {
	// DataFile is the path to the backing task file.
	// Empty means the default location under the taskvault home directory.
	DataFile string `yaml:"data_file"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		DataFile: "",
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// ResolveDataFile returns the backing file path for the given config,
// falling back to the default location when none is configured.
func (c *Config) ResolveDataFile() (string, error) {
	if c.DataFile != "" {
		return c.DataFile, nil
	}
	return GetDefaultDataFile()
}
