package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/cache"
	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/logging"
)

// runOptions holds options for the run command.
type runOptions struct {
	configPath string
	cacheDir   string
	watch      bool
}

// newRunCmd creates the run command.
func (a *App) newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve every problem listed in a YAML batch file",
		Long: `Load a batch file and solve its problems in order. Log settings and search
limits come from the file unless overridden by flags.

Examples:
  # Solve once
  lvsearch run -c batch.yaml --timeout 10s

  # Reuse earlier answers and re-run whenever the file is saved
  lvsearch run -c batch.yaml --cache .lvsearch --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to batch file (required)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache", "", "Directory of a solution cache to read and fill")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-run the batch whenever the file changes")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// run executes the batch once, then keeps re-running it on change when watching.
func (a *App) run(cmd *cobra.Command, opts *runOptions) error {
	ctx := cmd.Context()

	var store *cache.Store
	if opts.cacheDir != "" {
		s, err := cache.Open(cache.Config{Dir: opts.cacheDir})
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	if !opts.watch {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return a.runBatch(cmd, cfg, store)
	}

	// Watch the directory: editors often replace the file instead of writing it.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(opts.configPath)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	a.rerun(cmd, absPath, store)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			a.rerun(cmd, absPath, store)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.With(a.log.Warn(), logging.ErrorField(err)).Msg("watch error")
		}
	}
}

// rerun loads and runs the batch, logging instead of returning failures so
// that watching continues.
func (a *App) rerun(cmd *cobra.Command, path string, store *cache.Store) {
	cfg, err := config.Load(path)
	if err == nil {
		err = a.runBatch(cmd, cfg, store)
	}
	if err != nil {
		logging.With(a.log.Error(), logging.Str("config", path), logging.ErrorField(err)).Msg("batch failed")
	}
}

// runBatch merges flags over the file and solves each problem in turn.
// A problem without a solution is reported and the batch continues; an error stops it.
func (a *App) runBatch(cmd *cobra.Command, cfg *config.Config, store *cache.Store) error {
	flags := cmd.Flags()

	logCfg := logging.Config{Level: a.opts.logLevel, Format: a.opts.logFormat}
	if !flags.Changed("log-level") && cfg.Log.Level != "" {
		logCfg.Level = cfg.Log.Level
	}
	if !flags.Changed("log-format") && cfg.Log.Format != "" {
		logCfg.Format = cfg.Log.Format
	}
	if err := a.initLogger(logCfg); err != nil {
		return err
	}

	limits := cfg.Search
	if flags.Changed("max-expansions") {
		limits.MaxExpansions = a.opts.limits.MaxExpansions
	}
	if flags.Changed("max-depth") {
		limits.MaxDepth = a.opts.limits.MaxDepth
	}
	if flags.Changed("max-cost") {
		limits.MaxCost = a.opts.limits.MaxCost
	}
	if flags.Changed("timeout") {
		limits.Timeout = a.opts.limits.Timeout
	}

	solved := 0
	for _, p := range cfg.Problems {
		o, err := a.solveCached(cmd.Context(), store, p, limits)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Label(), err)
		}
		if o.Found {
			solved++
		}
		if err := a.print(o); err != nil {
			return err
		}
	}

	if !a.opts.jsonOutput {
		fmt.Fprintf(a.stdout, "%d problems, %d solved\n", len(cfg.Problems), solved)
	}

	return nil
}

// solveCached answers p from store when possible and records fresh answers.
// Errors are never cached. The timeout does not take part in the key; the
// contents of a subway map file do, so editing the map invalidates its answers.
func (a *App) solveCached(ctx context.Context, store *cache.Store, p config.Problem, limits config.Limits) (outcome, error) {
	if store == nil {
		return a.solve(ctx, p, limits)
	}

	keyed := limits
	keyed.Timeout = 0
	parts := []any{p, keyed}
	if p.Kind == config.KindSubway && p.Map != "" {
		data, err := os.ReadFile(p.Map)
		if err != nil {
			return outcome{}, fmt.Errorf("open subway map: %w", err)
		}
		parts = append(parts, string(data))
	}
	key, err := cache.Key(parts...)
	if err != nil {
		return outcome{}, err
	}

	var o outcome
	hit, err := store.GetJSON(ctx, key, &o)
	if err != nil {
		return outcome{}, err
	}
	if hit {
		o.RunID, o.Label = uuid.NewString(), p.Label()
		logging.With(a.log.Info(),
			logging.RunID(o.RunID),
			logging.Puzzle(string(p.Kind)),
			logging.Str("problem", o.Label),
			logging.Cached(true),
			logging.Found(o.Found),
		).Msg("cache hit")
		return o, nil
	}

	o, err = a.solve(ctx, p, limits)
	if err != nil {
		return o, err
	}
	if err := store.SetJSON(ctx, key, o); err != nil {
		return o, err
	}

	return o, nil
}
