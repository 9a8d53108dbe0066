package main

import (
	"github.com/spf13/cobra"
)

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description>...",
		Short: "Add a new task",
		Long: `Add a new task. All arguments are joined with spaces to form the
description, so quoting is optional:

  todo add Buy milk
  todo add "Buy milk"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.taskHandler(cmd)
			if err != nil {
				return err
			}
			return h.Add(cmd.Context(), args)
		},
	}
}
