package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BuzzLyutic/todo-cli/internal/repo"
	"github.com/BuzzLyutic/todo-cli/pkg/render"
)

// Exit codes. A missing task id is a normal outcome and exits with ExitSuccess.
const (
	ExitSuccess = 0
	ExitError   = 2 // usage, validation, configuration or a corrupt task file
)

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		render.Error(os.Stderr, render.Style{}, describeError(err))
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitError
}

func describeError(err error) string {
	if errors.Is(err, repo.ErrorCorrupt) {
		return fmt.Sprintf("%v (fix or move the file away; it will not be overwritten)", err)
	}
	return err.Error()
}
