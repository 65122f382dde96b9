package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newClearCommand() *cobra.Command {
	var dataFile string
	var configPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		Long: `Delete every task and reset the backing file to a header-only state.

The command asks for confirmation unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprint(cmd.OutOrStdout(), "This will delete all tasks. Continue? [y/N]: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read confirmation: %w", err)
				}
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			s, err := openStore(dataFile, configPath)
			if err != nil {
				return err
			}

			if err := s.Clear(); err != nil {
				return fmt.Errorf("clear tasks: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "All tasks deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	addStoreFlags(cmd, &dataFile, &configPath)

	return cmd
}
