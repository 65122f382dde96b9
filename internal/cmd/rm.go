package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand() *cobra.Command {
	var dataFile string
	var configPath string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(dataFile, configPath)
			if err != nil {
				return err
			}

			removed, err := s.Delete(args[0])
			if err != nil {
				return fmt.Errorf("remove task: %w", err)
			}
			if !removed {
				return fmt.Errorf("no task with id %s", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
			return nil
		},
	}

	addStoreFlags(cmd, &dataFile, &configPath)

	return cmd
}
