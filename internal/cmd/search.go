package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCommand() *cobra.Command {
	var dataFile string
	var configPath string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find tasks whose title contains the query",
		Long: `Find tasks by case-insensitive substring match on the title.

A blank or whitespace-only query returns every task, same as 'list'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(dataFile, configPath)
			if err != nil {
				return err
			}

			tasks, err := s.Search(args[0])
			if err != nil {
				return fmt.Errorf("search tasks: %w", err)
			}

			renderTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}

	addStoreFlags(cmd, &dataFile, &configPath)

	return cmd
}
