package main

import (
	"github.com/spf13/cobra"

	"github.com/BuzzLyutic/todo-cli/internal/handler"
	"github.com/BuzzLyutic/todo-cli/internal/model"
)

func newListCommand(a *app) *cobra.Command {
	var (
		completed bool
		pending   bool
		format    string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks in the order they were added, followed by a summary.

Pending tasks show how long they have been open; completed tasks show when
they were completed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter model.TaskFilter
			switch {
			case completed:
				filter.Completed = &completed
			case pending:
				done := false
				filter.Completed = &done
			}

			h, err := a.taskHandler(cmd)
			if err != nil {
				return err
			}
			return h.List(filter, format)
		},
	}

	cmd.Flags().BoolVar(&completed, "completed", false, "Show only completed tasks")
	cmd.Flags().BoolVar(&pending, "pending", false, "Show only pending tasks")
	cmd.Flags().StringVar(&format, "format", handler.FormatText, "Output format: text, table or json")
	cmd.MarkFlagsMutuallyExclusive("completed", "pending")

	return cmd
}
