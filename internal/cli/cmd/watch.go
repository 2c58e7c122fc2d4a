package cmd

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/webpageicon/internal/cli"
	"github.com/bnema/webpageicon/internal/cli/styles"
	domainurl "github.com/bnema/webpageicon/internal/domain/url"
	"github.com/bnema/webpageicon/internal/infrastructure/config"
	"github.com/bnema/webpageicon/internal/ui/input"
)

func newWatchCmd(state *rootState) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Resolve favicons for identifiers read from stdin",
		Long: `Read one domain or URL per line from stdin and resolve its favicon
once the input has been unchanged for the debounce interval. This mirrors
an address bar that shows the icon of whatever is being typed.

Events are printed as they arrive. The debounce interval follows
input.debounce and is updated when the config file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := state.requireApp()
			if err != nil {
				return err
			}
			delay := app.Config.Input.Debounce
			if cmd.Flags().Changed("debounce") {
				delay = debounce
			}
			return runWatch(cmd, app, delay)
		},
	}

	cmd.Flags().DurationVarP(&debounce, "debounce", "d", 0, "override input.debounce")

	return cmd
}

// watchSession renders Observe streams for debounced identifiers.
type watchSession struct {
	app   *cli.App
	cmd   *cobra.Command
	out   io.Writer
	outMu sync.Mutex

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func runWatch(cmd *cobra.Command, app *cli.App, delay time.Duration) error {
	ctx := app.WithContext(cmd.Context())
	log := zerolog.Ctx(ctx)

	s := &watchSession{app: app, cmd: cmd, out: cmd.OutOrStdout()}
	debouncer := input.NewDebouncer(delay, s.start)
	defer debouncer.Stop()

	if app.Manager.ConfigFileUsed() != "" {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			log.Info().Dur("debounce", cfg.Input.Debounce).Msg("config reloaded")
			debouncer.SetDelay(cfg.Input.Debounce)
		})
		app.Manager.Watch(func(err error) {
			s.println(app.Theme.WarningStyle.Render(styles.IconWarning + " " + err.Error()))
		})
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	var last string
	for {
		select {
		case <-ctx.Done():
			debouncer.Stop()
			s.close()
			return nil
		case line, ok := <-lines:
			if !ok {
				// Input closed: resolve what is pending without waiting out the delay.
				if last != "" {
					debouncer.Flush(last)
				}
				debouncer.Stop()
				s.close()
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			domain := domainurl.Identifier(line)
			if domain == "" {
				continue
			}
			last = domain
			debouncer.Push(domain)
		}
	}
}

// start launches one resolution unless the session is closing.
func (s *watchSession) start(domain string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.wg.Add(1)
	go s.observe(domain)
}

// close stops new resolutions and waits for running ones.
func (s *watchSession) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *watchSession) observe(domain string) {
	defer s.wg.Done()

	ctx := s.app.WithContext(s.cmd.Context())
	for ev := range s.app.Icons.Observe(ctx, domain) {
		s.println(s.app.Theme.RenderEvent(domain, ev))
	}
}

func (s *watchSession) println(line string) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	fmt.Fprintln(s.out, line)
}
