package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskValidate(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{"valid task", Task{ID: "1", Title: "Buy milk"}, false},
		{"missing id", Task{Title: "Buy milk"}, true},
		{"missing title", Task{ID: "1"}, true},
		{"whitespace-only title", Task{ID: "1", Title: "   "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskWithCompleted(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	original := Task{ID: "1", Title: "Buy milk", Completed: false, CreatedAt: createdAt}

	done := original.WithCompleted(true)

	assert.True(t, done.Completed)
	assert.Equal(t, original.ID, done.ID)
	assert.Equal(t, original.Title, done.Title)
	assert.Equal(t, original.CreatedAt, done.CreatedAt)

	// The receiver is a value; the original must be untouched
	assert.False(t, original.Completed)
}

func TestTaskMatchesTitle(t *testing.T) {
	task := Task{ID: "1", Title: "Buy Milk and Bread"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"exact substring", "Milk", true},
		{"different case", "mIlK", true},
		{"query is trimmed", "  milk  ", true},
		{"no match", "cheese", false},
		{"blank query matches", "", true},
		{"whitespace-only query matches", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, task.MatchesTitle(tt.query))
		})
	}
}
