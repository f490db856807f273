package main

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gitpick/gitpick/internal/output"
	"github.com/gitpick/gitpick/internal/scan"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List repositories under the workspace directory",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Example: `  gitpick list                 # Table output
  gitpick list --json          # Output as JSON
  gitpick list --root ~/src    # Scan a different root`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runList(ctx context.Context, jsonOutput bool) error {
	out := output.FromContext(ctx)

	entries, err := scanRepos(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		if entries == nil {
			entries = []scan.Entry{}
		}
		return out.JSON(entries)
	}

	if len(entries) == 0 {
		out.Printf("No repositories under %s (depth %d)\n", cfg.WorkspaceDir, cfg.SearchDepth)
		return nil
	}

	headers := []string{"NAME", "SUBTITLE", "PATH"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, e.Subtitle, e.Path})
	}

	out.Print(renderTable(headers, rows))
	return nil
}

// renderTable formats a borderless table with aligned columns.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	return t.String() + "\n"
}
