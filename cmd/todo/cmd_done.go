package main

import (
	"github.com/spf13/cobra"
)

func newDoneCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.taskHandler(cmd)
			if err != nil {
				return err
			}
			return h.Done(cmd.Context(), args[0])
		},
	}
}
