package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gitpick/gitpick/internal/action"
	"github.com/gitpick/gitpick/internal/scan"
)

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open <name>",
		Short:   "Open a repository in the editor",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Open a repository in the configured editor.

If an editor window for the repository is already open it is focused
instead of launching a second instance.`,
		Example: `  gitpick open proj-a
  gitpick open proj          # Unique substring match works too`,
		ValidArgsFunction: completeRepoNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepoAction(cmd.Context(), args[0], func(d *action.Dispatcher) func(context.Context, scan.Entry) action.Result {
				return d.OpenEditor
			})
		},
	}

	return cmd
}
