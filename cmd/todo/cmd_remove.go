package main

import (
	"github.com/spf13/cobra"
)

func newRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.taskHandler(cmd)
			if err != nil {
				return err
			}
			return h.Remove(cmd.Context(), args[0])
		},
	}
}
