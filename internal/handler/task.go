package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-cli/internal/model"
	"github.com/BuzzLyutic/todo-cli/internal/repo"
	"github.com/BuzzLyutic/todo-cli/internal/service"
	"github.com/BuzzLyutic/todo-cli/pkg/render"
)

var ErrInvalidID = errors.New("invalid task id")

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// TaskHandler runs one command against the store and prints the outcome.
// Outcomes the user should simply read (not found, a failed save) are printed
// and reported as success; everything else is returned to the caller.
type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
	out     io.Writer
	errOut  io.Writer
	style   render.Style
	now     func() time.Time
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger, out, errOut io.Writer, style render.Style) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
		out:     out,
		errOut:  errOut,
		style:   style,
		now:     time.Now,
	}
}

func (h *TaskHandler) Add(ctx context.Context, words []string) error {
	task, err := h.service.Add(ctx, strings.Join(words, " "))
	if err != nil && !errors.Is(err, repo.ErrorIO) {
		return h.handleErrors(err)
	}

	render.Success(h.out, h.style, "Task added successfully!")
	h.logger.Info("task added", zap.Int64("task_id", task.ID))
	return h.handleErrors(err)
}

type listOutput struct {
	Tasks   []model.Task  `json:"tasks"`
	Summary model.Summary `json:"summary"`
}

func (h *TaskHandler) List(filter model.TaskFilter, format string) error {
	tasks := h.service.List(filter)
	summary := h.service.Summary()

	switch format {
	case FormatJSON:
		if err := render.JSON(h.out, listOutput{Tasks: tasks, Summary: summary}); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
		return nil
	case FormatText, FormatTable, "":
	default:
		return fmt.Errorf("%w: unknown format %q", service.ErrValidation, format)
	}

	if h.service.Len() == 0 {
		render.Notice(h.out, h.style, "No tasks found.")
		return nil
	}
	if len(tasks) == 0 {
		render.Notice(h.out, h.style, "No matching tasks found.")
		return nil
	}

	now := h.now()
	if format == FormatTable {
		render.Table(h.out, h.style, tasks, now)
	} else {
		render.Tasks(h.out, h.style, tasks, now)
	}
	render.Summary(h.out, h.style, summary)
	return nil
}

func (h *TaskHandler) Done(ctx context.Context, arg string) error {
	id, err := ParseID(arg)
	if err != nil {
		return err
	}

	found, err := h.service.Complete(ctx, id)
	if !found {
		render.Error(h.out, h.style, fmt.Sprintf("Task #%d not found.", id))
		return nil
	}
	render.Success(h.out, h.style, fmt.Sprintf("Task #%d marked as completed!", id))
	return h.handleErrors(err)
}

func (h *TaskHandler) Remove(ctx context.Context, arg string) error {
	id, err := ParseID(arg)
	if err != nil {
		return err
	}

	found, err := h.service.Remove(ctx, id)
	if !found {
		render.Error(h.out, h.style, fmt.Sprintf("Task #%d not found.", id))
		return nil
	}
	render.Success(h.out, h.style, fmt.Sprintf("Task #%d removed!", id))
	return h.handleErrors(err)
}

// ParseID accepts positive decimal ids only.
func ParseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, arg)
	}
	return id, nil
}

func (h *TaskHandler) handleErrors(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrorIO):
		render.Warning(h.errOut, h.style, fmt.Sprintf("failed to save tasks: %v", err))
		return nil
	case errors.Is(err, service.ErrValidation), errors.Is(err, ErrInvalidID):
		return err
	default:
		h.logger.Error("internal error", zap.Error(err))
		return err
	}
}
