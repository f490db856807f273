package main

import (
	"github.com/spf13/cobra"

	sys "github.com/gitpick/gitpick/internal/cmd"
	"github.com/gitpick/gitpick/internal/doctor"
	"github.com/gitpick/gitpick/internal/output"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Short:   "Check the environment gitpick depends on",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Check that the workspace directory, editor, clipboard tool and
terminal emulators are available. Exits non-zero when a core action
would not work.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			checks := doctor.Run(cmd.Context(), cfg, sys.System{})
			for _, c := range checks {
				symbol := "✓"
				switch c.Status {
				case doctor.StatusWarn:
					symbol = "⚠"
				case doctor.StatusFail:
					symbol = "✗"
				}
				out.Printf("  %s %-16s %s\n", symbol, c.Name, c.Detail)
			}

			if !doctor.Healthy(checks) {
				return errSilent
			}
			return nil
		},
	}
}
