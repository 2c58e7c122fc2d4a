package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webpageicon/internal/application/port"
	"github.com/bnema/webpageicon/internal/cli/styles"
	"github.com/bnema/webpageicon/internal/infrastructure/config"
	xdgadapter "github.com/bnema/webpageicon/internal/infrastructure/xdg"
)

func newConfigCmd(state *rootState) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as TOML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := state.requireApp()
				if err != nil {
					return err
				}
				return config.EncodeConfig(cmd.OutOrStdout(), app.Config)
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the default configuration file if none exists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path := state.configFile
				if path == "" {
					var err error
					path, err = config.GetConfigFile()
					if err != nil {
						return err
					}
				}

				written, err := config.CreateDefaultConfig(path)
				if err != nil {
					return err
				}

				theme := styles.NewTheme()
				if written {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", theme.SuccessStyle.Render(styles.IconConfig+" created"), path)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", theme.WarningStyle.Render(styles.IconWarning+" exists"), path)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "paths",
			Short: "Print the default config and cache directories",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printPaths(cmd, xdgadapter.New())
			},
		},
	)

	return configCmd
}

func printPaths(cmd *cobra.Command, paths port.XDGPaths) error {
	theme := styles.NewTheme()
	entries := []struct {
		label string
		dir   func() (string, error)
	}{
		{"config", paths.ConfigDir},
		{"cache", paths.CacheDir},
		{"icons", paths.IconCacheDir},
	}
	for _, e := range entries {
		dir, err := e.dir()
		if err != nil {
			return fmt.Errorf("resolve %s dir: %w", e.label, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.RenderPath(e.label, dir))
	}
	return nil
}
