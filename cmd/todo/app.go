package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/BuzzLyutic/todo-cli/internal/config"
	"github.com/BuzzLyutic/todo-cli/internal/handler"
	"github.com/BuzzLyutic/todo-cli/internal/repo"
	"github.com/BuzzLyutic/todo-cli/internal/service"
	"github.com/BuzzLyutic/todo-cli/pkg/render"
)

// app holds what a single command invocation needs. The store is only
// loaded by commands that touch tasks.
type app struct {
	filePath string
	debug    bool
	noColor  bool

	cfg    config.Config
	logger *zap.Logger
	style  render.Style
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.filePath != "" {
		cfg.FilePath = a.filePath
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	if a.noColor {
		cfg.Color = config.ColorNever
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	a.style = render.Style{Color: colorEnabled(cfg.Color, cmd.OutOrStdout())}

	a.logger.Debug("configuration loaded",
		zap.String("file", cfg.FilePath),
		zap.String("config", cfg.ConfigPath),
		zap.String("color", cfg.Color),
	)
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// taskHandler loads the task file and returns a handler writing to the
// command's output streams.
func (a *app) taskHandler(cmd *cobra.Command) (*handler.TaskHandler, error) {
	if err := a.cfg.EnsureDir(); err != nil {
		a.logger.Warn("failed to create data directory", zap.Error(err))
		render.Warning(cmd.ErrOrStderr(), a.style, err.Error())
	}

	taskService, err := service.NewTaskService(cmd.Context(), repo.NewFileRepo(a.cfg.FilePath), a.logger)
	if err != nil {
		return nil, err
	}
	return handler.NewTaskHandler(taskService, a.logger, cmd.OutOrStdout(), cmd.ErrOrStderr(), a.style), nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
