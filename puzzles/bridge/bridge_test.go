package bridge_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/puzzles/bridge"
	"github.com/katalvlaran/lvsearch/search"
)

func TestSolve_ClassicSeventeen(t *testing.T) {
	res, err := bridge.Solve([]int{1, 2, 5, 10})
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, 17, res.Cost)
	assert.Len(t, res.Actions(), 5)
	assert.Equal(t, uint64(0), res.Path.End().Near)
	assert.Equal(t, bridge.Far, res.Path.End().Light)

	// The two slowest people cross together exactly once.
	slowPair := 0
	for _, c := range res.Actions() {
		if c.Time == 10 {
			assert.Equal(t, [2]int{2, 3}, [2]int{c.A, c.B})
			slowPair++
		}
	}
	assert.Equal(t, 1, slowPair)
}

func TestSolve_KnownSequences(t *testing.T) {
	for _, tc := range []struct {
		times []int
		want  []int
	}{
		{[]int{1, 2, 4, 8, 16}, []int{1, 2, 7, 15, 28}},
		{[]int{1, 1, 2, 3, 5, 8, 13, 21}, []int{1, 1, 4, 7, 12, 18, 28}},
	} {
		for n, want := range tc.want {
			times := tc.times[:n+1]
			t.Run(fmt.Sprint(times), func(t *testing.T) {
				res, err := bridge.Solve(times)
				require.NoError(t, err)
				require.True(t, res.Found)
				assert.Equal(t, want, res.Cost)
			})
		}
	}
}

func TestSolve_CostIsSumOfCrossings(t *testing.T) {
	res, err := bridge.Solve([]int{1, 2, 5, 10, 15, 20})
	require.NoError(t, err)
	require.True(t, res.Found)

	b, err := bridge.New([]int{1, 2, 5, 10, 15, 20})
	require.NoError(t, err)

	sum := 0
	for _, st := range res.Path.Steps() {
		next, err := b.Successors(st.From)
		require.NoError(t, err)
		assert.Contains(t, next, search.Successor[bridge.State, bridge.Crossing]{State: st.To, Action: st.Action})
		sum += st.Action.Time
	}
	assert.Equal(t, res.Cost, sum)
}

func TestSolve_Empty(t *testing.T) {
	res, err := bridge.Solve(nil)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, 1, res.Path.Len())
}

func TestNew_Validation(t *testing.T) {
	_, err := bridge.New([]int{1, 0})
	assert.ErrorIs(t, err, bridge.ErrBadTime)

	_, err = bridge.New(make([]int, 65))
	assert.ErrorIs(t, err, bridge.ErrTooManyPeople)
}

func TestSuccessors_FromStart(t *testing.T) {
	b, err := bridge.New([]int{1, 2, 5})
	require.NoError(t, err)

	next, err := b.Successors(b.Start())
	require.NoError(t, err)
	require.Len(t, next, 6) // 3 singles + 3 pairs

	assert.Equal(t, bridge.Crossing{A: 0, B: 0, Time: 1, To: bridge.Far}, next[0].Action)
	assert.Equal(t, bridge.State{Near: 0b110, Light: bridge.Far}, next[0].State)
	assert.Equal(t, bridge.Crossing{A: 0, B: 1, Time: 2, To: bridge.Far}, next[1].Action)
	assert.Equal(t, bridge.State{Near: 0b100, Light: bridge.Far}, next[1].State)

	back, err := b.Successors(next[1].State)
	require.NoError(t, err)
	require.Len(t, back, 3) // 0, 0&1, 1
	assert.Equal(t, bridge.Near, back[0].Action.To)
	assert.Equal(t, bridge.State{Near: 0b101, Light: bridge.Near}, back[0].State)
}

func TestCrossing_String(t *testing.T) {
	assert.Equal(t, "0&3 ->", bridge.Crossing{A: 0, B: 3, Time: 10, To: bridge.Far}.String())
	assert.Equal(t, "1 <-", bridge.Crossing{A: 1, B: 1, Time: 2, To: bridge.Near}.String())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "near[0 2] light:far", bridge.State{Near: 0b101, Light: bridge.Far}.String())
	assert.Equal(t, "near[] light:far", bridge.State{Light: bridge.Far}.String())
}
