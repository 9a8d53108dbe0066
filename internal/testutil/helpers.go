// Package testutil holds helpers shared by tests that work against real task files.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BuzzLyutic/todo-cli/internal/model"
)

// TaskFile returns a path to a not-yet-existing tasks.json inside a fresh temp dir.
func TaskFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tasks.json")
}

// WriteFile writes raw content to path, failing the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// SeedTasks writes count pending tasks with ids 1..count to path and returns them.
func SeedTasks(t *testing.T, path string, count int) []model.Task {
	t.Helper()

	created := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	tasks := make([]model.Task, 0, count)
	for i := 0; i < count; i++ {
		tasks = append(tasks, model.Task{
			ID:          int64(i + 1),
			Description: fmt.Sprintf("Task %d", i+1),
			CreatedAt:   created.Add(time.Duration(i) * time.Minute),
		})
	}
	WriteTasks(t, path, tasks)
	return tasks
}

// WriteTasks encodes tasks to path the same way the file repository does.
func WriteTasks(t *testing.T, path string, tasks []model.Task) {
	t.Helper()

	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		t.Fatalf("Failed to encode tasks: %v", err)
	}
	WriteFile(t, path, string(b))
}

// ReadTasks decodes the task file at path.
func ReadTasks(t *testing.T, path string) []model.Task {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return tasks
}

// Clock is a manually advanced time source.
type Clock struct {
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
