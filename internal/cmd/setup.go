package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/taskvault/internal/config"
	"github.com/harrison/taskvault/internal/logger"
	"github.com/harrison/taskvault/internal/store"
)

// addStoreFlags registers the flags shared by every command that opens the
// task store. The --data-file override bypasses the config file entirely,
// which is also how tests point commands at temp files.
func addStoreFlags(cmd *cobra.Command, dataFile, configPath *string) {
	cmd.Flags().StringVar(dataFile, "data-file", "", "Path to the task file (default: $TASKVAULT_HOME/data/tasks.csv)")
	cmd.Flags().StringVar(configPath, "config", "", "Path to the config file (default: $TASKVAULT_HOME/config.yaml)")
}

// openStore resolves configuration and builds the task store.
// Precedence for the backing file: --data-file flag, then the config file's
// data_file entry, then the default location under the taskvault home.
func openStore(dataFileOverride, configPathOverride string) (*store.TaskStore, error) {
	configPath := configPathOverride
	if configPath == "" {
		var err error
		configPath, err = config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	dataFile := dataFileOverride
	if dataFile == "" {
		dataFile, err = cfg.ResolveDataFile()
		if err != nil {
			return nil, fmt.Errorf("resolve data file: %w", err)
		}
	}

	log := logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)
	return store.NewTaskStore(dataFile, log)
}
