// Package cmd provides Cobra CLI commands for webpageicon.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/webpageicon/internal/cli"
	"github.com/bnema/webpageicon/internal/domain/build"
)

// rootState is shared by the subcommands of one command tree.
type rootState struct {
	app        *cli.App
	buildInfo  build.Info
	configFile string
	logLevel   string
}

// NewRootCmd builds the webpageicon command tree.
func NewRootCmd(info build.Info) *cobra.Command {
	state := &rootState{buildInfo: info}

	rootCmd := &cobra.Command{
		Use:   "webpageicon",
		Short: "Resolve and cache website favicons",
		Long: `webpageicon resolves the favicon of a website from a domain or URL.

Icons are looked up in memory, then in the WebPageIconCache directory,
and only then fetched from the icon provider. Fetched icons are kept in
both caches for later runs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "init", "paths":
				return nil
			}

			app, err := cli.NewApp(cli.AppOptions{
				ConfigFile: state.configFile,
				LogLevel:   state.logLevel,
				LogOutput:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = state.buildInfo
			state.app = app
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if state.app != nil {
				_ = state.app.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/webpageicon/config.toml)")
	rootCmd.PersistentFlags().StringVar(&state.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		newFetchCmd(state),
		newPathCmd(state),
		newWatchCmd(state),
		newConfigCmd(state),
		newVersionCmd(state),
	)

	return rootCmd
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute(info build.Info) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(info).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func (s *rootState) requireApp() (*cli.App, error) {
	if s.app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return s.app, nil
}
