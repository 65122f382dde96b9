package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEditCommand() *cobra.Command {
	var dataFile string
	var configPath string

	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Change a task's title",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(dataFile, configPath)
			if err != nil {
				return err
			}

			task, found, err := s.GetByID(args[0])
			if err != nil {
				return fmt.Errorf("look up task: %w", err)
			}
			if !found {
				return fmt.Errorf("no task with id %s", args[0])
			}

			task.Title = args[1]
			if err := task.Validate(); err != nil {
				return err
			}

			if _, err := s.Update(task); err != nil {
				return fmt.Errorf("update task: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", task.ID)
			return nil
		},
	}

	addStoreFlags(cmd, &dataFile, &configPath)

	return cmd
}
