package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetTaskvaultHome returns the taskvault home directory
// Priority order:
//  1. TASKVAULT_HOME environment variable (if set)
//  2. ~/.taskvault under the user's home directory
//  3. .taskvault under the current working directory (fallback)
//
// The directory is created if it doesn't exist
func GetTaskvaultHome() (string, error) {
	// Try env var first
	if home := os.Getenv("TASKVAULT_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create taskvault home directory: %w", err)
		}
		return home, nil
	}

	if userHome, err := os.UserHomeDir(); err == nil && userHome != "" {
		taskvaultHome := filepath.Join(userHome, ".taskvault")
		if err := os.MkdirAll(taskvaultHome, 0755); err != nil {
			return "", fmt.Errorf("create taskvault home directory: %w", err)
		}
		return taskvaultHome, nil
	}

	// Fallback to current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	taskvaultHome := filepath.Join(cwd, ".taskvault")
	if err := os.MkdirAll(taskvaultHome, 0755); err != nil {
		return "", fmt.Errorf("create taskvault home directory: %w", err)
	}

	return taskvaultHome, nil
}

// GetDefaultDataFile returns the absolute path to the default backing file
// Always returns: $TASKVAULT_HOME/data/tasks.csv
func GetDefaultDataFile() (string, error) {
	home, err := GetTaskvaultHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, "data", "tasks.csv"), nil
}

// GetDefaultConfigPath returns the default config file location:
// $TASKVAULT_HOME/config.yaml
func GetDefaultConfigPath() (string, error) {
	home, err := GetTaskvaultHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, "config.yaml"), nil
}
