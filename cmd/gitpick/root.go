package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gitpick/gitpick/internal/action"
	"github.com/gitpick/gitpick/internal/cmd"
	"github.com/gitpick/gitpick/internal/config"
	"github.com/gitpick/gitpick/internal/log"
	"github.com/gitpick/gitpick/internal/output"
	"github.com/gitpick/gitpick/internal/scan"
	"github.com/gitpick/gitpick/internal/ui"
	"github.com/gitpick/gitpick/internal/window"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	rootDir   string
	depthFlag int

	// Shared state injected into commands
	cfg config.Config
)

// errSilent signals a failure that was already reported to the user,
// so Execute exits non-zero without printing it again.
var errSilent = errors.New("silent")

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitpick",
	Short: "Find git repositories and open them in your editor",
	Long: `gitpick lists the git repositories under your workspace directory
and opens a selection in your editor, copies its path, or opens a
terminal there.

Without a subcommand it shows an interactive picker (on a terminal)
or prints the repository list (when piped).`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}
		// Flags are parsed by now, so the logger sees their values.
		logger := log.New(os.Stderr, verbose, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		return applyOverrides(&cfg, rootDir, depthFlag, cmd.Flags().Changed("depth"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return runList(cmd.Context(), false)
		}
		return runPicker(cmd.Context())
	},
}

// runPicker shows the interactive picker over a fresh scan.
func runPicker(ctx context.Context) error {
	entries, err := scan.Scan(ctx, cfg.WorkspaceDir, cfg.SearchDepth)
	if err != nil {
		// The picker is still usable: it shows the empty state and can
		// rescan once the root exists.
		log.FromContext(ctx).Printf("Warning: %v\n", err)
		entries = nil
	}

	runner := cmd.System{}
	flash := ui.NewFlash()
	dispatcher := action.NewDispatcher(cfg, runner, locator(runner), flash)

	rescan := func(ctx context.Context) ([]scan.Entry, error) {
		return scan.Scan(ctx, cfg.WorkspaceDir, cfg.SearchDepth)
	}
	return ui.Run(ctx, cfg.WorkspaceDir, entries, dispatcher, flash, rescan)
}

// locator picks the window backend: wmctrl when installed, otherwise a
// no-op that never matches.
func locator(r cmd.Runner) window.Locator {
	if window.Available(r) {
		return window.NewWmctrl(r)
	}
	return window.Nop{}
}

// applyOverrides folds the --root and --depth flags into the loaded
// config. depthSet distinguishes an explicit --depth 0 (rejected) from
// the flag not being given.
func applyOverrides(cfg *config.Config, root string, depth int, depthSet bool) error {
	if root != "" {
		if err := config.ValidatePath(root, "--root"); err != nil {
			return err
		}
		expanded, err := config.ExpandPath(root)
		if err != nil {
			return err
		}
		cfg.WorkspaceDir = expanded
	}
	if depthSet {
		if depth < 1 {
			return fmt.Errorf("--depth must be >= 1, got: %d", depth)
		}
		cfg.SearchDepth = depth
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data). The logger is
	// attached in PersistentPreRunE once flags are parsed.
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errSilent) {
			// Already reported via notification.
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'gitpick -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Workspace directory to scan (overrides config)")
	rootCmd.PersistentFlags().IntVar(&depthFlag, "depth", 0, "Search depth (overrides config)")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newTerminalCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
