// Package cli provides the lvsearch command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/logging"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	logLevel   string
	logFormat  string
	jsonOutput bool
	limits     config.Limits
}

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
	opts   globalOptions
	log    *bolt.Logger
	trace  bool
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    logging.Discard(),
	}

	app.root = &cobra.Command{
		Use:   "lvsearch",
		Short: "Shortest-path state-space search and puzzle solvers",
		Long: `lvsearch finds least-cost action sequences through implicit state spaces.

Each puzzle command describes a problem, runs a uniform-cost or breadth-first
search over it and prints the path found, or "no solution" when the reachable
space holds no goal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initLogger(logging.Config{Level: app.opts.logLevel, Format: app.opts.logFormat})
		},
	}

	pf := app.root.PersistentFlags()
	pf.StringVar(&app.opts.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&app.opts.logFormat, "log-format", "console", "Log format (console or json)")
	pf.BoolVar(&app.opts.jsonOutput, "json", false, "Print results as JSON")
	pf.IntVar(&app.opts.limits.MaxExpansions, "max-expansions", 0, "Abort after this many expansions (0 = unlimited)")
	pf.IntVar(&app.opts.limits.MaxDepth, "max-depth", 0, "Ignore paths longer than this many actions (0 = unlimited)")
	pf.Float64Var(&app.opts.limits.MaxCost, "max-cost", 0, "Ignore paths costlier than this (0 = unlimited)")
	pf.DurationVar(&app.opts.limits.Timeout, "timeout", 0, "Cancel each search after this long (0 = none)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newPourCmd(),
		app.newBridgeCmd(),
		app.newRiverCmd(),
		app.newSubwayCmd(),
		app.newMazeCmd(),
		app.newRunCmd(),
	)

	return app
}

// WithOutput sets custom output writers. Logs go to stderr.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// initLogger replaces the application logger.
func (a *App) initLogger(cfg logging.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Output = a.stderr
	a.log = logging.New(cfg)
	a.trace = strings.EqualFold(cfg.Level, "trace")
	return nil
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "lvsearch version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
