package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitpick/gitpick/internal/action"
	"github.com/gitpick/gitpick/internal/cmd"
	"github.com/gitpick/gitpick/internal/notify"
	"github.com/gitpick/gitpick/internal/scan"
)

// scanRepos runs a fresh scan with the effective configuration.
func scanRepos(ctx context.Context) ([]scan.Entry, error) {
	return scan.Scan(ctx, cfg.WorkspaceDir, cfg.SearchDepth)
}

// resolveEntry finds the repository matching name: an exact name match
// wins, otherwise a unique case-insensitive substring match is accepted.
func resolveEntry(entries []scan.Entry, name string) (scan.Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}

	lower := strings.ToLower(name)
	var matches []scan.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), lower) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return scan.Entry{}, fmt.Errorf("no repository named %q", name)
	default:
		names := make([]string, len(matches))
		for i, e := range matches {
			names[i] = e.Name
		}
		sort.Strings(names)
		return scan.Entry{}, fmt.Errorf("%q is ambiguous, matches: %s", name, strings.Join(names, ", "))
	}
}

// runRepoAction resolves name against a fresh scan and runs one
// dispatcher operation on it, notifying via desktop and stderr.
// Operation failures come back as errSilent: the notifier already told
// the user.
func runRepoAction(ctx context.Context, name string, pick func(*action.Dispatcher) func(context.Context, scan.Entry) action.Result) error {
	entries, err := scanRepos(ctx)
	if err != nil {
		return err
	}
	entry, err := resolveEntry(entries, name)
	if err != nil {
		return err
	}

	runner := cmd.System{}
	notifier := notify.Multi{notify.Desktop{}, notify.Writer{Out: os.Stderr}}
	dispatcher := action.NewDispatcher(cfg, runner, locator(runner), notifier)

	if res := pick(dispatcher)(ctx, entry); res.Err != nil {
		return errSilent
	}
	return nil
}

// completeRepoNames offers repository names for shell completion.
func completeRepoNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	entries, err := scanRepos(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name, toComplete) {
			names = append(names, e.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
