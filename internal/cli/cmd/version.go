package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bnema/webpageicon/internal/cli/styles"
	"github.com/bnema/webpageicon/internal/domain/build"
)

func newVersionCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := state.buildInfo
			if info.GoVersion == "" {
				info.GoVersion = runtime.Version()
			}
			theme := styles.NewTheme()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", theme.Title.Render("webpageicon"), theme.Highlight.Render(info.Version))
			fmt.Fprintf(out, "%s %s\n", theme.Subtle.Render("commit:"), info.Commit)
			fmt.Fprintf(out, "%s %s\n", theme.Subtle.Render("built:"), info.BuildDate)
			fmt.Fprintf(out, "%s %s\n", theme.Subtle.Render("go:"), info.GoVersion)
			fmt.Fprintf(out, "%s %s\n", theme.Subtle.Render("repo:"), build.RepoURL())
		},
	}
}
