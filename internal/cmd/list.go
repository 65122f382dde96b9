package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var dataFile string
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(dataFile, configPath)
			if err != nil {
				return err
			}

			tasks, err := s.GetAll()
			if err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}

			renderTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}

	addStoreFlags(cmd, &dataFile, &configPath)

	return cmd
}
