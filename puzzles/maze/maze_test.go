package maze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/puzzles/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// detour has a cheap way around the wall and an expensive shortcut through (0,1).
var detour = [][]int{
	{1, 1, 1},
	{9, 0, 1},
	{1, 1, 1},
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, maze.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, maze.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, maze.ErrNonRectangular},
		{"Negative", [][]int{{1, -2}}, maze.ErrNegativeCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.New(tc.grid, maze.DefaultOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_DeepCopies(t *testing.T) {
	grid := [][]int{{1, 1}}
	m, err := maze.New(grid, maze.DefaultOptions())
	require.NoError(t, err)

	grid[0][1] = 0
	assert.True(t, m.Open(maze.Point{X: 1, Y: 0}))
}

func TestInBoundsAndOpen(t *testing.T) {
	m, err := maze.New(detour, maze.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, m.InBounds(maze.Point{X: 2, Y: 2}))
	assert.False(t, m.InBounds(maze.Point{X: 3, Y: 0}))
	assert.False(t, m.InBounds(maze.Point{X: 0, Y: -1}))
	assert.False(t, m.Open(maze.Point{X: 1, Y: 1}))
	assert.Equal(t, 9, m.At(maze.Point{X: 0, Y: 1}))
	assert.Equal(t, 0, m.At(maze.Point{X: 7, Y: 7}))
}

func TestSuccessors_Connectivity(t *testing.T) {
	m4, err := maze.New(detour, maze.DefaultOptions())
	require.NoError(t, err)
	next, err := m4.Successors(maze.Point{X: 1, Y: 0})
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, maze.Move{Dir: maze.E, Cost: 1}, next[0].Action)
	assert.Equal(t, maze.Move{Dir: maze.W, Cost: 1}, next[1].Action)

	m8, err := maze.New(detour, maze.Options{Conn: maze.Conn8})
	require.NoError(t, err)
	next, err = m8.Successors(maze.Point{X: 1, Y: 0})
	require.NoError(t, err)
	dirs := make([]maze.Direction, len(next))
	for i, s := range next {
		dirs[i] = s.Action.Dir
	}
	assert.Equal(t, []maze.Direction{maze.E, maze.SE, maze.SW, maze.W}, dirs)
}

func TestRoute_Conn4(t *testing.T) {
	m, err := maze.New(detour, maze.DefaultOptions())
	require.NoError(t, err)

	res, err := m.Route(maze.Point{X: 0, Y: 0}, maze.Point{X: 0, Y: 2})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 6, res.Cost)
	assert.Equal(t, []maze.Point{
		{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2},
	}, res.States())

	sum := 0
	for _, mv := range res.Actions() {
		sum += mv.Cost
	}
	assert.Equal(t, res.Cost, sum)
}

func TestRoute_Conn8(t *testing.T) {
	m, err := maze.New(detour, maze.Options{Conn: maze.Conn8})
	require.NoError(t, err)

	res, err := m.Route(maze.Point{X: 0, Y: 0}, maze.Point{X: 0, Y: 2})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 4, res.Cost)
	assert.Equal(t, []maze.Point{{0, 0}, {1, 0}, {2, 1}, {1, 2}, {0, 2}}, res.States())
}

func TestRoute_MaxCost(t *testing.T) {
	m, err := maze.New(detour, maze.DefaultOptions())
	require.NoError(t, err)

	res, err := m.Route(maze.Point{X: 0, Y: 0}, maze.Point{X: 0, Y: 2}, search.WithMaxCost(5))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestRoute_Walled(t *testing.T) {
	m, err := maze.Parse(strings.NewReader("..#..\n..#..\n"), maze.DefaultOptions())
	require.NoError(t, err)

	res, err := m.Route(maze.Point{X: 0, Y: 0}, maze.Point{X: 4, Y: 1})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.True(t, res.Path.Empty())
}

func TestRoute_BadEndpoints(t *testing.T) {
	m, err := maze.New(detour, maze.DefaultOptions())
	require.NoError(t, err)

	_, err = m.Route(maze.Point{X: 0, Y: 0}, maze.Point{X: 1, Y: 1})
	assert.ErrorIs(t, err, maze.ErrBlocked)
	_, err = m.Route(maze.Point{X: -1, Y: 0}, maze.Point{X: 0, Y: 2})
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)
}

func TestParseAndRender(t *testing.T) {
	src := "\n.2.\n9#.\n...\n"
	m, err := maze.Parse(strings.NewReader(src), maze.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 3, m.Height)

	res, err := m.Route(maze.Point{X: 0, Y: 0}, maze.Point{X: 0, Y: 2})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 7, res.Cost)

	assert.Equal(t, "***\n9#*\n***\n", m.Render(res.States()))
	assert.Equal(t, ".2.\n9#.\n...\n", m.Render(nil))

	_, err = maze.Parse(strings.NewReader(".x."), maze.DefaultOptions())
	assert.ErrorIs(t, err, maze.ErrBadCell)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "SW", maze.SW.String())
	assert.Equal(t, "Direction(9)", maze.Direction(9).String())
	assert.Equal(t, "E:3", maze.Move{Dir: maze.E, Cost: 3}.String())
}
