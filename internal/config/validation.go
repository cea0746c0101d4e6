package config

import (
	"errors"
	"fmt"
)

// Validate checks log settings, limits and every problem, reporting all
// failures joined under ErrValidationFailed.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Search.MaxExpansions < 0 || c.Search.MaxDepth < 0 || c.Search.MaxCost < 0 || c.Search.Timeout < 0 {
		errs = append(errs, errors.New("search limits cannot be negative"))
	}
	if len(c.Problems) == 0 {
		errs = append(errs, errors.New("no problems defined"))
	}
	for i, p := range c.Problems {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("problems[%d] (%s): %w", i, p.Label(), err))
		}
	}
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
}

// Validate checks the fields required by the problem's kind.
// Puzzle-specific rules such as capacity ranges are left to the plug-in.
func (p Problem) Validate() error {
	switch p.Kind {
	case KindPour:
		if len(p.Capacities) != 2 {
			return errors.New("pour needs exactly two capacities")
		}
	case KindBridge:
		if len(p.Times) == 0 {
			return errors.New("bridge needs at least one crossing time")
		}
	case KindRiver:
		if p.Missionaries < 0 || p.Cannibals < 0 {
			return errors.New("river head counts cannot be negative")
		}
	case KindSubway:
		if p.From == "" || p.To == "" {
			return errors.New("subway needs from and to")
		}
	case KindMaze:
		if p.Grid == "" {
			return errors.New("maze needs a grid")
		}
		if len(p.Start) != 2 || len(p.End) != 2 {
			return errors.New("maze start and end must be [x, y]")
		}
	case "":
		return errors.New("missing kind")
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}

	return nil
}
