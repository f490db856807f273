package main

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gitpick/gitpick/internal/config"
	"github.com/gitpick/gitpick/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage gitpick configuration.

Config file: ~/.config/gitpick/config.toml`,
		Example: `  gitpick config init     # Create default config
  gitpick config path     # Print config file location
  gitpick config show     # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  gitpick config init      # Create config with defaults
  gitpick config init -f   # Overwrite existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration: file values merged with defaults
and any --root/--depth overrides applied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}
}
