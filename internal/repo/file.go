package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BuzzLyutic/todo-cli/internal/model"
)

var (
	ErrorCorrupt = errors.New("corrupt task file")
	ErrorIO      = errors.New("task file io")
)

// fileTask is the on-disk shape of a task. Pointers let Load tell a missing
// field from a zero value.
type fileTask struct {
	ID          *int64     `json:"id"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	CreatedAt   *time.Time `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// FileRepo keeps the collection in a single JSON file that is rewritten
// on every save.
type FileRepo struct {
	path string
	now  func() time.Time
}

func NewFileRepo(path string) *FileRepo {
	return &FileRepo{
		path: path,
		now:  time.Now,
	}
}

func (r *FileRepo) Path() string {
	return r.path
}

func (r *FileRepo) Load(ctx context.Context) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrorIO, r.path, err)
	}

	var raw []fileTask
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrorCorrupt, r.path, err)
	}

	tasks := make([]model.Task, 0, len(raw))
	for i, ft := range raw {
		t, err := r.decodeTask(ft)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: task %d: %v", ErrorCorrupt, r.path, i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *FileRepo) decodeTask(ft fileTask) (model.Task, error) {
	switch {
	case ft.ID == nil:
		return model.Task{}, errors.New("missing field id")
	case *ft.ID < 1:
		return model.Task{}, fmt.Errorf("id %d is not a positive integer", *ft.ID)
	case ft.Description == nil:
		return model.Task{}, errors.New("missing field description")
	case ft.Completed == nil:
		return model.Task{}, errors.New("missing field completed")
	}

	t := model.Task{
		ID:          *ft.ID,
		Description: *ft.Description,
		Completed:   *ft.Completed,
		CompletedAt: ft.CompletedAt,
	}
	if ft.CreatedAt != nil {
		t.CreatedAt = *ft.CreatedAt
	} else {
		t.CreatedAt = r.now()
	}
	return t, nil
}

// Save replaces the file through a temp file in the same directory, so a
// failed write never leaves a truncated collection behind. An existing
// file keeps its permissions.
func (r *FileRepo) Save(ctx context.Context, tasks []model.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding tasks: %v", ErrorIO, err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(r.path); err == nil {
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Split(r.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrorIO, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: writing %s: %v", ErrorIO, tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: syncing %s: %v", ErrorIO, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: closing %s: %v", ErrorIO, tmpPath, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: chmod %s: %v", ErrorIO, tmpPath, err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: replacing %s: %v", ErrorIO, r.path, err)
	}
	return nil
}
