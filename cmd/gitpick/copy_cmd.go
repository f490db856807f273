package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gitpick/gitpick/internal/action"
	"github.com/gitpick/gitpick/internal/scan"
)

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "copy <name>",
		Short:   "Copy a repository path to the clipboard",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Example: `  gitpick copy proj-a
  cd "$(gitpick list --json | jq -r '.[0].path')"  # Scripted alternative`,
		ValidArgsFunction: completeRepoNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepoAction(cmd.Context(), args[0], func(d *action.Dispatcher) func(context.Context, scan.Entry) action.Result {
				return d.CopyPath
			})
		},
	}

	return cmd
}
