package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-cli/internal/model"
)

// TaskRepository loads and stores the whole task collection at once.
type TaskRepository interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
	Path() string
}
