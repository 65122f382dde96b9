package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/taskvault/internal/store"
)

func runClearCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	cmd.SetArgs(append([]string{"clear"}, args...))

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(input))

	err := cmd.Execute()
	return buf.String(), err
}

func TestClearCommand_ConfirmedDeletesEverything(t *testing.T) {
	path := seedStore(t, taskAt(t, "1", "Buy milk", "2025-01-01T10:00:00"))

	output, err := runClearCommand(t, "y\n", "--data-file", path)
	require.NoError(t, err)
	assert.Contains(t, output, "All tasks deleted")

	s, err := store.NewTaskStore(path, nil)
	require.NoError(t, err)

	tasks, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestClearCommand_DeclinedLeavesTasks(t *testing.T) {
	path := seedStore(t, taskAt(t, "1", "Buy milk", "2025-01-01T10:00:00"))

	output, err := runClearCommand(t, "n\n", "--data-file", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Aborted")

	s, err := store.NewTaskStore(path, nil)
	require.NoError(t, err)

	tasks, err := s.GetAll()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestClearCommand_ForceSkipsPrompt(t *testing.T) {
	path := seedStore(t, taskAt(t, "1", "Buy milk", "2025-01-01T10:00:00"))

	output, err := runClearCommand(t, "", "--data-file", path, "--force")
	require.NoError(t, err)
	assert.NotContains(t, output, "Continue?")
	assert.Contains(t, output, "All tasks deleted")

	s, err := store.NewTaskStore(path, nil)
	require.NoError(t, err)

	tasks, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
