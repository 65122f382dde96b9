package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/taskvault/internal/models"
)

// displayTimeLayout is how created_at is shown in listings.
const displayTimeLayout = "2006-01-02 15:04:05"

// renderTasks prints tasks one per line: completion marker, id, creation
// time, title. Color is enabled only when writing to a terminal.
func renderTasks(w io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	colorOutput := isColorWriter(w)

	for _, task := range tasks {
		marker := "[ ]"
		title := task.Title
		if task.Completed {
			marker = "[x]"
			if colorOutput {
				marker = color.New(color.FgGreen).Sprint(marker)
			}
		}

		id := task.ID
		if colorOutput {
			id = color.New(color.FgHiBlack).Sprint(id)
		}

		fmt.Fprintf(w, "%s  %s  %s  %s\n", marker, id, task.CreatedAt.Format(displayTimeLayout), title)
	}

	fmt.Fprintf(w, "%d task(s)\n", len(tasks))
}

// isColorWriter reports whether w is a TTY that supports color output.
func isColorWriter(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) && !color.NoColor
}
