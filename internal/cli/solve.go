package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/puzzles/bridge"
	"github.com/katalvlaran/lvsearch/puzzles/maze"
	"github.com/katalvlaran/lvsearch/puzzles/pour"
	"github.com/katalvlaran/lvsearch/puzzles/river"
	"github.com/katalvlaran/lvsearch/puzzles/subway"
	"github.com/katalvlaran/lvsearch/search"
)

// outcome is the printable summary of one search.
type outcome struct {
	RunID     string `json:"run_id"`
	Label     string `json:"problem"`
	Found     bool   `json:"found"`
	Cost      string `json:"cost,omitempty"`
	Steps     int    `json:"steps"`
	Expanded  int    `json:"expanded"`
	Generated int    `json:"generated"`
	Path      string `json:"path,omitempty"`
}

func summarize[S comparable, A any, C search.Cost](res *search.Result[S, A, C]) outcome {
	o := outcome{Found: res.Found, Expanded: res.Expanded, Generated: res.Generated}
	if res.Found {
		o.Cost = fmt.Sprint(res.Cost)
		o.Steps = len(res.Path.Actions)
		o.Path = res.Path.String()
	}
	return o
}

// searchFunc runs one search with the prepared options.
type searchFunc func(opts []search.Option) (outcome, error)

// execute runs fn under the given limits, tags it with a run ID and logs the result.
func (a *App) execute(ctx context.Context, kind config.Kind, label string, limits config.Limits, fn searchFunc) (outcome, error) {
	if limits.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limits.Timeout)
		defer cancel()
	}

	runID := uuid.NewString()
	opts := append(limits.Options(), search.WithContext(ctx))
	if a.trace {
		opts = append(opts, search.WithOnExpand(func(state any, depth int) error {
			a.log.Trace().Str("run_id", runID).Str("state", fmt.Sprint(state)).Int("depth", depth).Msg("expand")
			return nil
		}))
	}

	start := time.Now()
	o, err := fn(opts)
	o.RunID, o.Label = runID, label

	fields := []logging.Field{
		logging.RunID(runID),
		logging.Puzzle(string(kind)),
		logging.Str("problem", label),
		logging.Duration(time.Since(start)),
	}
	if err != nil {
		logging.With(a.log.Error(), append(fields, logging.ErrorField(err))...).Msg("search failed")
		return o, err
	}

	fields = append(fields, logging.Found(o.Found), logging.Expanded(o.Expanded, o.Generated))
	if o.Found {
		fields = append(fields, logging.Cost(o.Cost), logging.Steps(o.Steps))
	}
	logging.With(a.log.Info(), fields...).Msg("search finished")

	return o, nil
}

// solve dispatches a configured problem to its puzzle package.
func (a *App) solve(ctx context.Context, p config.Problem, limits config.Limits) (outcome, error) {
	if err := p.Validate(); err != nil {
		return outcome{Label: p.Label()}, err
	}

	return a.execute(ctx, p.Kind, p.Label(), limits, func(opts []search.Option) (outcome, error) {
		switch p.Kind {
		case config.KindPour:
			res, err := pour.Solve(p.Capacities[0], p.Capacities[1], p.Goal, pour.State{}, opts...)
			if err != nil {
				return outcome{}, err
			}
			return summarize(res), nil

		case config.KindBridge:
			res, err := bridge.Solve(p.Times, opts...)
			if err != nil {
				return outcome{}, err
			}
			return summarize(res), nil

		case config.KindRiver:
			res, err := river.Solve(river.Start(p.Missionaries, p.Cannibals), opts...)
			if err != nil {
				return outcome{}, err
			}
			return summarize(res), nil

		case config.KindSubway:
			sys, err := loadSystem(p.Map)
			if err != nil {
				return outcome{}, err
			}
			res, err := sys.Ride(p.From, p.To, opts...)
			if err != nil {
				return outcome{}, err
			}
			return summarize(res), nil

		case config.KindMaze:
			mopts := maze.DefaultOptions()
			if p.Diagonal {
				mopts.Conn = maze.Conn8
			}
			m, err := maze.Parse(strings.NewReader(p.Grid), mopts)
			if err != nil {
				return outcome{}, err
			}
			from := maze.Point{X: p.Start[0], Y: p.Start[1]}
			to := maze.Point{X: p.End[0], Y: p.End[1]}
			res, err := m.Route(from, to, opts...)
			if err != nil {
				return outcome{}, err
			}
			o := summarize(res)
			if o.Found {
				o.Path = m.Render(res.States())
			}
			return o, nil
		}

		return outcome{}, fmt.Errorf("unknown kind %q", p.Kind)
	})
}

// loadSystem opens a subway map file, or returns Boston for an empty path.
func loadSystem(path string) (*subway.System, error) {
	if path == "" {
		return subway.Boston(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open subway map: %w", err)
	}
	defer f.Close()

	return subway.Load(f)
}

// print writes an outcome as text or JSON.
func (a *App) print(o outcome) error {
	if a.opts.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		return enc.Encode(o)
	}
	if !o.Found {
		_, err := fmt.Fprintf(a.stdout, "%s: no solution\n", o.Label)
		return err
	}
	if _, err := fmt.Fprintf(a.stdout, "%s: cost %s in %d steps\n", o.Label, o.Cost, o.Steps); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.stdout, strings.TrimRight(o.Path, "\n"))
	return err
}
