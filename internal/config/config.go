// Package config loads the YAML batch file read by `lvsearch run`.
//
//	log:
//	  level: info
//	  format: json
//	search:
//	  max_expansions: 100000
//	  timeout: 5s
//	problems:
//	  - name: classic
//	    kind: bridge
//	    times: [1, 2, 5, 10]
//	  - kind: pour
//	    capacities: [4, 9]
//	    goal: 6
package config

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/search"
)

var (
	// ErrConfigNotFound indicates the configuration file was not found.
	ErrConfigNotFound = errors.New("config: file not found")

	// ErrInvalidFormat indicates the file is not valid YAML for Config.
	ErrInvalidFormat = errors.New("config: invalid format")

	// ErrValidationFailed indicates a semantically invalid configuration.
	ErrValidationFailed = errors.New("config: validation failed")
)

// Kind names a puzzle plug-in.
type Kind string

const (
	KindPour   Kind = "pour"
	KindBridge Kind = "bridge"
	KindRiver  Kind = "river"
	KindSubway Kind = "subway"
	KindMaze   Kind = "maze"
)

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{KindPour, KindBridge, KindRiver, KindSubway, KindMaze}
}

// Config is the root document.
type Config struct {
	Log      logging.Config `yaml:"log"`
	Search   Limits         `yaml:"search"`
	Problems []Problem      `yaml:"problems"`
}

// Limits bounds every search in the batch. Zero means unlimited.
type Limits struct {
	MaxExpansions int           `yaml:"max_expansions"`
	MaxDepth      int           `yaml:"max_depth"`
	MaxCost       float64       `yaml:"max_cost"`
	Timeout       time.Duration `yaml:"timeout"`
}

// Options converts the limits into search options. Timeout is applied by the
// caller through the context.
func (l Limits) Options() []search.Option {
	var opts []search.Option
	if l.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(l.MaxExpansions))
	}
	if l.MaxDepth > 0 {
		opts = append(opts, search.WithMaxDepth(l.MaxDepth))
	}
	if l.MaxCost > 0 {
		opts = append(opts, search.WithMaxCost(l.MaxCost))
	}
	return opts
}

// Problem is one puzzle instance. Only the fields of its Kind are read.
type Problem struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`

	// pour
	Capacities []int `yaml:"capacities"`
	Goal       int   `yaml:"goal"`

	// bridge
	Times []int `yaml:"times"`

	// river
	Missionaries int `yaml:"missionaries"`
	Cannibals    int `yaml:"cannibals"`

	// subway; an empty Map means the built-in Boston network
	Map  string `yaml:"map"`
	From string `yaml:"from"`
	To   string `yaml:"to"`

	// maze; Grid is inline text, Start and End are [x, y]
	Grid     string `yaml:"grid"`
	Start    []int  `yaml:"start"`
	End      []int  `yaml:"end"`
	Diagonal bool   `yaml:"diagonal"`
}

// Label is the problem name, or its kind when unnamed.
func (p Problem) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return string(p.Kind)
}
