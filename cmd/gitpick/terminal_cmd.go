package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gitpick/gitpick/internal/action"
	"github.com/gitpick/gitpick/internal/scan"
)

func newTerminalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "terminal <name>",
		Short:   "Open a terminal in a repository",
		Aliases: []string{"term"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Open a terminal emulator with its working directory set to the
repository. Falls back to the configured fallback emulator when the
primary one fails to start.`,
		Example:           `  gitpick terminal proj-a`,
		ValidArgsFunction: completeRepoNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepoAction(cmd.Context(), args[0], func(d *action.Dispatcher) func(context.Context, scan.Entry) action.Result {
				return d.OpenTerminal
			})
		},
	}

	return cmd
}
