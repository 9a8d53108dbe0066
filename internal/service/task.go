package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-cli/internal/model"
	"github.com/BuzzLyutic/todo-cli/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

// TaskService owns the in-memory task collection and persists it through
// the repository after every mutation.
//
// A failed save does not roll the mutation back: the caller gets the result
// together with an error wrapping repo.ErrorIO, and memory stays ahead of disk
// for the rest of the process.
type TaskService struct {
	repo   repo.TaskRepository
	logger *zap.Logger
	now    func() time.Time
	tasks  []model.Task
}

type Option func(*TaskService)

func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

// NewTaskService loads the collection once. Load errors (repo.ErrorCorrupt
// in particular) are returned as is.
func NewTaskService(ctx context.Context, repo repo.TaskRepository, logger *zap.Logger, opts ...Option) (*TaskService, error) {
	s := &TaskService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	s.tasks = tasks

	s.logger.Debug("tasks loaded", zap.String("path", repo.Path()), zap.Int("count", len(tasks)))
	return s, nil
}

func (s *TaskService) Add(ctx context.Context, description string) (model.Task, error) {
	description, err := s.validate(description)
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:          s.nextID(),
		Description: description,
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, t)

	s.logger.Debug("task added", zap.Int64("task_id", t.ID))
	return t, s.persist(ctx)
}

// nextID follows the last task in stored order, not the largest id: removing
// the tail task lets its id be handed out again.
func (s *TaskService) nextID() int64 {
	if len(s.tasks) == 0 {
		return 1
	}
	return s.tasks[len(s.tasks)-1].ID + 1
}

// List returns a copy of the tasks matching filter, in stored order.
func (s *TaskService) List(filter model.TaskFilter) []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *TaskService) Len() int {
	return len(s.tasks)
}

func (s *TaskService) Summary() model.Summary {
	var sum model.Summary
	for _, t := range s.tasks {
		sum.Total++
		if t.Completed {
			sum.Completed++
		}
	}
	sum.Pending = sum.Total - sum.Completed
	return sum
}

// Complete marks the first task with id as completed. Completing an already
// completed task refreshes CompletedAt. A missing id is reported as false.
func (s *TaskService) Complete(ctx context.Context, id int64) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	now := s.now()
	s.tasks[i].Completed = true
	s.tasks[i].CompletedAt = &now

	s.logger.Debug("task completed", zap.Int64("task_id", id))
	return true, s.persist(ctx)
}

func (s *TaskService) Remove(ctx context.Context, id int64) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	s.logger.Debug("task removed", zap.Int64("task_id", id))
	return true, s.persist(ctx)
}

func (s *TaskService) indexOf(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.tasks); err != nil {
		s.logger.Warn("failed to save tasks",
			zap.String("path", s.repo.Path()),
			zap.Int("count", len(s.tasks)),
			zap.Error(err),
		)
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

func (s *TaskService) validate(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", fmt.Errorf("%w: description must not be empty", ErrValidation)
	}
	return trimmed, nil
}
