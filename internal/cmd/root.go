package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for taskvault
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taskvault",
		Short: "File-backed task tracker",
		Long: `Taskvault keeps a simple task list in a plain comma-delimited text file.

New tasks are appended to the file; updates and deletes rewrite it in full.
The file stays readable with any text editor or spreadsheet.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(newAddCommand())
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newSearchCommand())
	cmd.AddCommand(newDoneCommand())
	cmd.AddCommand(newEditCommand())
	cmd.AddCommand(newRemoveCommand())
	cmd.AddCommand(newClearCommand())

	return cmd
}
