// Package store implements the file-backed task store.
//
// Tasks are persisted to a comma-delimited text file with a fixed header row.
// Inserts append a single row; updates and deletes read the whole file into
// memory and rewrite it. There is no in-memory cache between calls and no
// locking: concurrent read-modify-write sequences can race and lose updates.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harrison/taskvault/internal/logger"
	"github.com/harrison/taskvault/internal/models"
)

// timeLayout is the textual form of created_at: ISO-8601 local date-time
// without a zone offset.
const timeLayout = "2006-01-02T15:04:05"

// header is the mandatory first row of the backing file.
var header = []string{"id", "title", "completed", "created_at"}

// TaskStore persists tasks to a comma-delimited text file.
//
// Every operation opens the file, performs its work, and closes it before
// returning; there is no persistent handle. Malformed data rows are skipped
// with a warning during reads and never fail the call. I/O failures are
// returned to the caller unrecovered.
type TaskStore struct {
	path string
	log  logger.Logger
}

// NewTaskStore creates a TaskStore backed by the file at path.
// The parent directory is created if missing, and the file is initialized
// with a header row when absent or empty, so every subsequent read sees at
// least a header. A nil log discards diagnostics.
func NewTaskStore(path string, log logger.Logger) (*TaskStore, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	s := &TaskStore{path: path, log: log}
	if err := s.ensureFile(); err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the location of the backing file.
func (s *TaskStore) Path() string {
	return s.path
}

// GetAll returns every well-formed task in the file, sorted by creation time
// descending (most recent first, stable on ties). A missing or empty file
// yields an empty result. Rows with too few fields, an unparsable timestamp,
// or an invalid boolean are skipped with a warning; they never abort the read.
func (s *TaskStore) GetAll() ([]models.Task, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var tasks []models.Task
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.log.LogWarn(fmt.Sprintf("skipping unreadable row at line %d in %s: %v", line, s.path, err))
			continue
		}
		if line == 1 {
			// Header row
			continue
		}

		task, err := decodeRow(record)
		if err != nil {
			s.log.LogWarn(fmt.Sprintf("skipping malformed row at line %d in %s: %v", line, s.path, err))
			continue
		}
		tasks = append(tasks, task)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// GetByID returns the first task whose id matches exactly.
// The second return value reports whether a match was found.
func (s *TaskStore) GetByID(id string) (models.Task, bool, error) {
	tasks, err := s.GetAll()
	if err != nil {
		return models.Task{}, false, err
	}

	for _, task := range tasks {
		if task.ID == id {
			return task, true, nil
		}
	}

	return models.Task{}, false, nil
}

// Add appends one task row to the file. The file is re-initialized with a
// header first if it went missing or was truncated since construction.
// Duplicate ids are not checked; that is the caller's responsibility.
func (s *TaskStore) Add(task models.Task) error {
	if err := s.ensureFile(); err != nil {
		return err
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open task file for append: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(encodeRow(task)); err != nil {
		return fmt.Errorf("write task row: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush task row: %w", err)
	}

	return nil
}

// Update replaces the first task with a matching id, preserving its position
// in the list, and rewrites the whole file. Returns false without touching
// the file when no task matches.
func (s *TaskStore) Update(task models.Task) (bool, error) {
	tasks, err := s.GetAll()
	if err != nil {
		return false, err
	}

	found := false
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			found = true
			break
		}
	}
	if !found {
		return false, nil
	}

	if err := s.writeAll(tasks); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes every task with a matching id and rewrites the file.
// Returns false without touching the file when no task matches. Uniqueness
// is expected but never enforced on Add, so all duplicates go at once.
func (s *TaskStore) Delete(id string) (bool, error) {
	tasks, err := s.GetAll()
	if err != nil {
		return false, err
	}

	kept := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID == id {
			continue
		}
		kept = append(kept, task)
	}
	if len(kept) == len(tasks) {
		return false, nil
	}

	if err := s.writeAll(kept); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleComplete flips the completion flag of the task with the given id and
// persists it through Update. Returns the updated task, or found=false with
// no side effect when the id is absent.
func (s *TaskStore) ToggleComplete(id string) (models.Task, bool, error) {
	task, found, err := s.GetByID(id)
	if err != nil || !found {
		return models.Task{}, found, err
	}

	toggled := task.WithCompleted(!task.Completed)
	if _, err := s.Update(toggled); err != nil {
		return models.Task{}, false, err
	}

	return toggled, true, nil
}

// Search returns tasks whose title contains the trimmed, lowercased query,
// in the same order as GetAll. A blank or whitespace-only query returns
// everything.
func (s *TaskStore) Search(query string) ([]models.Task, error) {
	tasks, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return tasks, nil
	}

	matches := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.MatchesTitle(query) {
			matches = append(matches, task)
		}
	}

	return matches, nil
}

// Clear deletes the backing file and recreates it with only the header row.
func (s *TaskStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove task file: %w", err)
	}
	return s.writeAll(nil)
}

// ensureFile guarantees the backing file exists and carries at least the
// header row.
func (s *TaskStore) ensureFile() error {
	info, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.writeAll(nil)
	}
	if err != nil {
		return fmt.Errorf("stat task file: %w", err)
	}
	if info.Size() == 0 {
		return s.writeAll(nil)
	}
	return nil
}

// writeAll truncates the file and rewrites the header plus one row per task
// in the given order. All mutating operations funnel through here or through
// the append path of Add.
func (s *TaskStore) writeAll(tasks []models.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create task file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	for _, task := range tasks {
		if err := writer.Write(encodeRow(task)); err != nil {
			return fmt.Errorf("write task row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush task file: %w", err)
	}

	return nil
}

// encodeRow converts a task to its four-field textual form.
func encodeRow(task models.Task) []string {
	return []string{
		task.ID,
		task.Title,
		strconv.FormatBool(task.Completed),
		task.CreatedAt.Format(timeLayout),
	}
}

// decodeRow parses one data row back into a task.
func decodeRow(record []string) (models.Task, error) {
	if len(record) < len(header) {
		return models.Task{}, fmt.Errorf("expected %d fields, got %d", len(header), len(record))
	}

	completed, err := strconv.ParseBool(record[2])
	if err != nil {
		return models.Task{}, fmt.Errorf("parse completed flag %q: %w", record[2], err)
	}

	createdAt, err := time.Parse(timeLayout, record[3])
	if err != nil {
		return models.Task{}, fmt.Errorf("parse created_at %q: %w", record[3], err)
	}

	return models.Task{
		ID:        record[0],
		Title:     record[1],
		Completed: completed,
		CreatedAt: createdAt,
	}, nil
}
