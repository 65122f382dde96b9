package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrison/taskvault/internal/models"
)

func newAddCommand() *cobra.Command {
	var dataFile string
	var configPath string
	var done bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a new task with the given title.

A fresh id is generated for the task and printed on success. The creation
timestamp is taken at call time with second precision.

Examples:
  # Add a pending task
  taskvault add "Buy milk"

  # Add a task that is already done
  taskvault add "Renew passport" --done`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(dataFile, configPath)
			if err != nil {
				return err
			}

			task := models.Task{
				ID:        uuid.NewString(),
				Title:     args[0],
				Completed: done,
				CreatedAt: time.Now().Truncate(time.Second),
			}
			if err := task.Validate(); err != nil {
				return err
			}

			if err := s.Add(task); err != nil {
				return fmt.Errorf("add task: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&done, "done", false, "Mark the task completed on creation")
	addStoreFlags(cmd, &dataFile, &configPath)

	return cmd
}
