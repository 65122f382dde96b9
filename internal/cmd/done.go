package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoneCommand() *cobra.Command {
	var dataFile string
	var configPath string

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion flag",
		Long: `Toggle the completion flag of the task with the given id.

A pending task becomes done; a done task is reopened. Running the command
twice restores the original state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(dataFile, configPath)
			if err != nil {
				return err
			}

			task, found, err := s.ToggleComplete(args[0])
			if err != nil {
				return fmt.Errorf("toggle task: %w", err)
			}
			if !found {
				return fmt.Errorf("no task with id %s", args[0])
			}

			if task.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "Completed task %s\n", task.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened task %s\n", task.ID)
			}
			return nil
		},
	}

	addStoreFlags(cmd, &dataFile, &configPath)

	return cmd
}
