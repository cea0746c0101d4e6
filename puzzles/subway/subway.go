// Package subway plans rides on a subway network: stations are states, the
// line taken between two adjacent stations is the action, and the best ride
// is the one with the fewest stops.
package subway

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/search"
)

var (
	// ErrUnknownStation is returned when a ride names a station not on the map.
	ErrUnknownStation = errors.New("subway: unknown station")

	// ErrBadLine is returned for a line with fewer than two stops or a blank stop.
	ErrBadLine = errors.New("subway: invalid line")

	// ErrNoLines is returned for a map without any line.
	ErrNoLines = errors.New("subway: no lines defined")
)

// Link is one edge of the network: the adjacent station and the line joining them.
type Link struct {
	Station string
	Line    string
}

// System is an immutable subway network.
type System struct {
	name  string
	lines []string
	links map[string][]Link
}

// Map is the YAML document describing a network.
//
//	name: boston
//	lines:
//	  blue: [bowdoin, government, state]
//	  red:  [alewife, davis, porter]
type Map struct {
	Name  string              `yaml:"name"`
	Lines map[string][]string `yaml:"lines"`
}

// New builds a System from line name → ordered stops.
// Adjacent stops are joined in both directions. Lines are wired in name order
// so successor order, and therefore tie-breaking, does not depend on map iteration.
func New(name string, lines map[string][]string) (*System, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	names := make([]string, 0, len(lines))
	for line := range lines {
		names = append(names, line)
	}
	sort.Strings(names)

	s := &System{name: name, lines: names, links: make(map[string][]Link)}
	for _, line := range names {
		stops := lines[line]
		if len(stops) < 2 {
			return nil, fmt.Errorf("%w: line %q has %d stops", ErrBadLine, line, len(stops))
		}
		for i, stop := range stops {
			if strings.TrimSpace(stop) == "" {
				return nil, fmt.Errorf("%w: line %q has a blank stop at %d", ErrBadLine, line, i)
			}
			if i == 0 {
				continue
			}
			prev := stops[i-1]
			s.links[prev] = append(s.links[prev], Link{Station: stop, Line: line})
			s.links[stop] = append(s.links[stop], Link{Station: prev, Line: line})
		}
	}

	return s, nil
}

// Load reads a YAML Map from r.
func Load(r io.Reader) (*System, error) {
	var m Map
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("subway: decode map: %w", err)
	}

	return New(m.Name, m.Lines)
}

// Name returns the network name.
func (s *System) Name() string { return s.name }

// Lines returns the line names in sorted order.
func (s *System) Lines() []string { return slices.Clone(s.lines) }

// Stations returns every station in sorted order.
func (s *System) Stations() []string {
	out := make([]string, 0, len(s.links))
	for st := range s.links {
		out = append(out, st)
	}
	sort.Strings(out)

	return out
}

// Has reports whether station is on the map.
func (s *System) Has(station string) bool {
	_, ok := s.links[station]
	return ok
}

// Successors returns the stations adjacent to station, labelled with their line.
func (s *System) Successors(station string) ([]search.Successor[string, string], error) {
	links, ok := s.links[station]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStation, station)
	}
	next := make([]search.Successor[string, string], len(links))
	for i, l := range links {
		next[i] = search.Successor[string, string]{State: l.Station, Action: l.Line}
	}

	return next, nil
}

// Ride returns the ride with the fewest stops from one station to another.
// Path states are stations and actions are the lines taken.
func (s *System) Ride(from, to string, opts ...search.Option) (*search.Result[string, string, int], error) {
	for _, st := range []string{from, to} {
		if !s.Has(st) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStation, st)
		}
	}

	return search.ShortestPath(from, s.Successors, func(st string) bool { return st == to }, opts...)
}

// LongestRide returns the longest of the shortest rides between every pair of
// stations. Pairs are tried in sorted order and the first longest ride wins.
func (s *System) LongestRide(opts ...search.Option) (*search.Result[string, string, int], error) {
	var best *search.Result[string, string, int]
	stations := s.Stations()
	for _, from := range stations {
		for _, to := range stations {
			if from == to {
				continue
			}
			res, err := s.Ride(from, to, opts...)
			if err != nil {
				return nil, err
			}
			if res.Found && (best == nil || res.Cost > best.Cost) {
				best = res
			}
		}
	}
	if best == nil {
		return &search.Result[string, string, int]{}, nil
	}

	return best, nil
}

// Transfers counts line changes along a ride.
func Transfers(lines []string) int {
	n := 0
	for i := 1; i < len(lines); i++ {
		if lines[i] != lines[i-1] {
			n++
		}
	}

	return n
}
