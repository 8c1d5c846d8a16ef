package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/toast/internal/core/config"
	"github.com/colonyops/toast/internal/core/toast"
	"github.com/colonyops/toast/internal/printer"
	"github.com/colonyops/toast/internal/profiler"
	"github.com/colonyops/toast/internal/tui"
	"github.com/colonyops/toast/internal/tui/notify"
	"github.com/colonyops/toast/pkg/deferred"
)

var errNotTerminal = errors.New("the demo needs an interactive terminal")

type DemoCmd struct {
	flags    *Flags
	version  string
	success  []string
	errs     []string
	duration time.Duration
}

// NewDemoCmd creates a new demo command
func NewDemoCmd(flags *Flags, version string) *DemoCmd {
	return &DemoCmd{
		flags:   flags,
		version: version,
	}
}

// Flags returns the demo flags for registration on the root command. Root
// flags are inherited by subcommands, so `demo` sees them too.
func (cmd *DemoCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "success",
			Aliases:     []string{"s"},
			Usage:       "show a success toast on start (repeatable)",
			Destination: &cmd.success,
		},
		&cli.StringSliceFlag{
			Name:        "error",
			Aliases:     []string{"e"},
			Usage:       "show an error toast on start (repeatable)",
			Destination: &cmd.errs,
		},
		&cli.DurationFlag{
			Name:        "duration",
			Aliases:     []string{"d"},
			Usage:       "visible lifetime of each toast (overrides toast.duration)",
			Sources:     cli.EnvVars("TOAST_DURATION"),
			Destination: &cmd.duration,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("TOAST_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Register adds the demo command to the application.
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Run the interactive toast demo",
		UsageText: "toast demo [options]",
		Description: `Opens a full-screen demo with a text input. Enter shows the text as a
success toast, ctrl+e as an error toast. Click a toast to hold its
countdown, click its close mark to dismiss it.`,
		Action: cmd.run,
	})

	return app
}

// Run executes the demo. Exported for use as default command.
func (cmd *DemoCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *DemoCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := cmd.config()
	if err != nil {
		return err
	}

	// The demo owns the screen; notices are printed once it exits.
	held := &deferred.Writer{}
	defer func() { _ = held.Flush(os.Stderr) }()
	p := printer.New(held)

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		url := fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())
		log.Info().Str("url", url).Msg("profiler endpoint available")
		p.Infof("profiler was listening on %s", url)
	}

	bus := notify.NewBus(cfg.Toast.Duration)
	m := tui.New(cfg, tui.Options{
		Bus:     bus,
		Seeds:   seeds(cmd.success, cmd.errs, cfg.Toast.Duration),
		Version: cmd.version,
	})

	log.Debug().
		Dur("duration", cfg.Toast.Duration).
		Str("position", string(cfg.Toast.Position)).
		Msg("starting demo")

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// config returns the parsed config with flag overrides applied, validated.
func (cmd *DemoCmd) config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cmd.flags.Config != nil {
		cfg = *cmd.flags.Config
	}
	if cmd.duration != 0 {
		cfg.Toast.Duration = cmd.duration
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// seeds turns the --success and --error flags into toasts, successes first.
func seeds(success, errs []string, d time.Duration) []toast.Input {
	out := make([]toast.Input, 0, len(success)+len(errs))
	for _, text := range success {
		out = append(out, toast.Record{Kind: toast.KindSuccess, Text: text, Duration: d})
	}
	for _, text := range errs {
		out = append(out, toast.Record{Kind: toast.KindError, Text: text, Duration: d})
	}
	return out
}
