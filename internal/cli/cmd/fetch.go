package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/webpageicon/internal/cli"
	"github.com/bnema/webpageicon/internal/domain/entity"
	domainurl "github.com/bnema/webpageicon/internal/domain/url"
)

type fetchOptions struct {
	outDir string
	size   int
	quiet  bool
}

func newFetchCmd(state *rootState) *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch <domain|url>...",
		Short: "Resolve favicons and report progress",
		Long: `Resolve the favicon of each argument and print its progress events.

Arguments may be bare domains (github.com) or URLs
(https://www.github.com/bnema); URLs are reduced to their host.

With --out, each icon is also exported as PNG into that directory,
resized to --size pixels when --size is positive.

Examples:
  webpageicon fetch github.com
  webpageicon fetch --out ./icons --size 32 https://go.dev`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := state.requireApp()
			if err != nil {
				return err
			}
			return runFetch(cmd, app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "export each icon as PNG into this directory")
	cmd.Flags().IntVarP(&opts.size, "size", "s", 0, "PNG export size in pixels (0 keeps the original size)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the final line per icon")

	return cmd
}

func runFetch(cmd *cobra.Command, app *cli.App, opts *fetchOptions, args []string) error {
	ctx := app.WithContext(cmd.Context())
	log := zerolog.Ctx(ctx)
	out := cmd.OutOrStdout()
	theme := app.Theme

	failed := 0
	for _, arg := range args {
		domain := domainurl.Identifier(arg)
		log.Debug().Str("input", arg).Str("domain", domain).Msg("resolving favicon")

		var icon *entity.Icon
		for ev, err := range app.Icons.Stream(ctx, domain) {
			if err != nil {
				fmt.Fprintln(out, theme.RenderEvent(domain, entity.Failed(err)))
				failed++
				break
			}
			if ev.Kind == entity.ProgressCompleted {
				icon = ev.Icon
			}
			if !opts.quiet || ev.IsTerminal() {
				fmt.Fprintln(out, theme.RenderEvent(domain, ev))
			}
		}
		if icon == nil {
			continue
		}

		if opts.outDir == "" {
			fmt.Fprintln(out, theme.RenderPath("cache", app.Icons.DiskPath(domain)))
			continue
		}
		path, err := app.Icons.ExportPNG(icon, opts.outDir, opts.size)
		if err != nil {
			log.Error().Err(err).Str("domain", domain).Msg("failed to export favicon")
			failed++
			continue
		}
		fmt.Fprintln(out, theme.RenderPath("png", path))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d favicons failed", failed, len(args))
	}
	return nil
}
