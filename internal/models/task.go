package models

import (
	"errors"
	"strings"
	"time"
)

// Task represents a single tracked task persisted by the store.
// Task has value semantics: helpers that change state return modified copies.
type Task struct {
	ID        string    // Opaque identifier, assigned by the caller
	Title     string    // Free-text title
	Completed bool      // Completion flag
	CreatedAt time.Time // Creation timestamp, second precision
}

// Validate checks if the task has all required fields.
// The store never calls this; validation is a caller concern.
func (t Task) Validate() error {
	if t.ID == "" {
		return errors.New("task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("task title is required")
	}
	return nil
}

// WithCompleted returns a copy of the task with the completion flag set to done.
func (t Task) WithCompleted(done bool) Task {
	t.Completed = done
	return t
}

// MatchesTitle reports whether the trimmed, lowercased query is a substring of
// the task's lowercased title. A blank query matches every task.
func (t Task) MatchesTitle(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q)
}
