package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/search"
)

// atoi parses positional integer arguments.
func atoi(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer", i+1, s)
		}
		out[i] = n
	}
	return out, nil
}

// solveOne runs a single problem with the global limits and prints it.
func (a *App) solveOne(cmd *cobra.Command, p config.Problem) error {
	o, err := a.solve(cmd.Context(), p, a.opts.limits)
	if err != nil {
		return err
	}
	return a.print(o)
}

// newPourCmd creates the pour command.
func (a *App) newPourCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pour CAP_X CAP_Y GOAL",
		Short: "Measure GOAL units with two jugs of capacity CAP_X and CAP_Y",
		Long: `Find the fewest fill, empty and pour actions that leave exactly GOAL units
in either jug, starting from two empty jugs.

Example:
  lvsearch pour 4 9 6`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := atoi(args)
			if err != nil {
				return err
			}
			return a.solveOne(cmd, config.Problem{Kind: config.KindPour, Capacities: n[:2], Goal: n[2]})
		},
	}
}

// newBridgeCmd creates the bridge command.
func (a *App) newBridgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bridge TIME...",
		Short: "Get everyone across the bridge with one torch in the least time",
		Long: `Each TIME is one person's crossing time. At most two cross together, at the
slower person's pace, and someone must bring the torch back.

Example:
  lvsearch bridge 1 2 5 10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := atoi(args)
			if err != nil {
				return err
			}
			return a.solveOne(cmd, config.Problem{Kind: config.KindBridge, Times: n})
		},
	}
}

// newRiverCmd creates the river command.
func (a *App) newRiverCmd() *cobra.Command {
	p := config.Problem{Kind: config.KindRiver}

	cmd := &cobra.Command{
		Use:   "river",
		Short: "Ferry missionaries and cannibals across a river",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solveOne(cmd, p)
		},
	}

	cmd.Flags().IntVarP(&p.Missionaries, "missionaries", "m", 3, "Number of missionaries")
	cmd.Flags().IntVarP(&p.Cannibals, "cannibals", "c", 3, "Number of cannibals")

	return cmd
}

// newSubwayCmd creates the subway command group.
func (a *App) newSubwayCmd() *cobra.Command {
	var mapPath string

	cmd := &cobra.Command{
		Use:   "subway",
		Short: "Plan rides on a subway network (Boston unless --map is given)",
	}
	cmd.PersistentFlags().StringVar(&mapPath, "map", "", "YAML subway map (name, lines)")

	ride := &cobra.Command{
		Use:   "ride FROM TO",
		Short: "Print the ride with the fewest stops",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solveOne(cmd, config.Problem{Kind: config.KindSubway, Map: mapPath, From: args[0], To: args[1]})
		},
	}

	longest := &cobra.Command{
		Use:   "longest",
		Short: "Print the longest of all shortest rides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loadSystem(mapPath)
			if err != nil {
				return err
			}
			o, err := a.execute(cmd.Context(), config.KindSubway, sys.Name()+" longest", a.opts.limits,
				func(opts []search.Option) (outcome, error) {
					res, err := sys.LongestRide(opts...)
					if err != nil {
						return outcome{}, err
					}
					return summarize(res), nil
				})
			if err != nil {
				return err
			}
			return a.print(o)
		},
	}

	stations := &cobra.Command{
		Use:   "stations",
		Short: "List the stations on the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loadSystem(mapPath)
			if err != nil {
				return err
			}
			for _, st := range sys.Stations() {
				fmt.Fprintln(a.stdout, st)
			}
			return nil
		},
	}

	cmd.AddCommand(ride, longest, stations)

	return cmd
}

// newMazeCmd creates the maze command.
func (a *App) newMazeCmd() *cobra.Command {
	p := config.Problem{Kind: config.KindMaze}

	cmd := &cobra.Command{
		Use:   "maze FILE",
		Short: "Find the cheapest route through a text maze",
		Long: `FILE holds one row per line: '#' is a wall, '.' costs 1 to enter and
'1'-'9' cost that much.

Example:
  lvsearch maze cave.txt --from 0,0 --to 9,4 --diagonal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read maze: %w", err)
			}
			p.Name = args[0]
			p.Grid = string(data)
			return a.solveOne(cmd, p)
		},
	}

	cmd.Flags().IntSliceVar(&p.Start, "from", []int{0, 0}, "Start cell as x,y")
	cmd.Flags().IntSliceVar(&p.End, "to", nil, "Target cell as x,y (required)")
	cmd.Flags().BoolVar(&p.Diagonal, "diagonal", false, "Allow diagonal moves")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
