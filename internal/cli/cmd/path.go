package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domainurl "github.com/bnema/webpageicon/internal/domain/url"
)

func newPathCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "path <domain|url>",
		Short: "Print the cache key and cache file of a favicon",
		Long: `Print the cache key and the disk cache path for a domain without
fetching anything. The last line tells whether the icon is already cached.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := state.requireApp()
			if err != nil {
				return err
			}

			domain := domainurl.Identifier(args[0])
			if domain == "" {
				return fmt.Errorf("empty identifier")
			}

			out := cmd.OutOrStdout()
			theme := app.Theme
			fmt.Fprintf(out, "%s %s\n", theme.Subtle.Render("key:"), theme.Normal.Render(app.Icons.Key(domain)))
			fmt.Fprintln(out, theme.RenderPath("disk", app.Icons.DiskPath(domain)))

			status := theme.WarningStyle.Render("not cached")
			if _, ok := app.Icons.Cached(app.WithContext(cmd.Context()), domain); ok {
				status = theme.SuccessStyle.Render("cached")
			}
			fmt.Fprintf(out, "%s %s\n", theme.Subtle.Render("status:"), status)
			return nil
		},
	}
}
