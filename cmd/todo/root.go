package main

import (
	"io"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "A simple task tracker for the command line",
		Long: `todo keeps a list of tasks in a JSON file in your data directory.

Add tasks, list them, mark them done and remove them. Every change is written
to disk immediately. Running two todo commands against the same file at the
same time is not safe: the one that saves last wins.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.filePath, "file", "", "Task file to use instead of the one in the data directory")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newAddCommand(a))
	cmd.AddCommand(newListCommand(a))
	cmd.AddCommand(newDoneCommand(a))
	cmd.AddCommand(newRemoveCommand(a))
	cmd.AddCommand(newPathCommand(a))

	return cmd
}

// execute runs one command. The logger is flushed on every path, including
// commands that fail, since cobra skips post-run hooks after an error.
func execute(args []string, out, errOut io.Writer) error {
	a := &app{}
	defer a.close()

	rootCmd := newRootCommand(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd.Execute()
}
