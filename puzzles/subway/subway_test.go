package subway_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/puzzles/subway"
)

// interleave rebuilds the alternating station/line sequence of a ride.
func interleave(stations, lines []string) []string {
	out := []string{stations[0]}
	for i, l := range lines {
		out = append(out, l, stations[i+1])
	}
	return out
}

func TestBoston_Rides(t *testing.T) {
	boston := subway.Boston()

	for _, tc := range []struct {
		from, to string
		want     []string
	}{
		{"mit", "government", []string{"mit", "red", "charles", "red", "park", "green", "government"}},
		{"mattapan", "foresthills", []string{
			"mattapan", "red", "umass", "red", "south", "red", "downtown", "orange",
			"chinatown", "orange", "tufts", "orange", "backbay", "orange", "foresthills",
		}},
		{"newton", "alewife", []string{
			"newton", "green", "kenmore", "green", "copley", "green", "park", "red", "charles", "red",
			"mit", "red", "central", "red", "harvard", "red", "porter", "red", "davis", "red", "alewife",
		}},
	} {
		t.Run(tc.from+"-"+tc.to, func(t *testing.T) {
			res, err := boston.Ride(tc.from, tc.to)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, tc.want, interleave(res.States(), res.Actions()))
		})
	}
}

func TestBoston_LongestRide(t *testing.T) {
	res, err := subway.Boston().LongestRide()
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, 15, res.Cost)
	assert.Len(t, res.States(), 16)
	assert.Equal(t, "alewife", res.Path.Start())
	assert.Equal(t, "wonderland", res.Path.End())
}

func TestRide_SameStation(t *testing.T) {
	res, err := subway.Boston().Ride("park", "park")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"park"}, res.States())
}

func TestRide_UnknownStation(t *testing.T) {
	_, err := subway.Boston().Ride("mit", "narnia")
	assert.ErrorIs(t, err, subway.ErrUnknownStation)

	_, err = subway.Boston().Successors("narnia")
	assert.ErrorIs(t, err, subway.ErrUnknownStation)
}

func TestLoad_YAML(t *testing.T) {
	f, err := os.Open("testdata/tiny.yaml")
	require.NoError(t, err)
	defer f.Close()

	sys, err := subway.Load(f)
	require.NoError(t, err)
	assert.Equal(t, "tiny", sys.Name())
	assert.Equal(t, []string{"east", "loop", "spur"}, sys.Lines())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "x", "y"}, sys.Stations())

	res, err := sys.Ride("b", "e")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"b", "a", "e"}, res.States())
	assert.Equal(t, []string{"east", "loop"}, res.Actions())
	assert.Equal(t, 1, subway.Transfers(res.Actions()))

	// Disconnected spur: no ride, but not an error.
	res, err = sys.Ride("a", "x")
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestNew_Validation(t *testing.T) {
	_, err := subway.New("empty", nil)
	assert.ErrorIs(t, err, subway.ErrNoLines)

	_, err = subway.New("short", map[string][]string{"one": {"a"}})
	assert.ErrorIs(t, err, subway.ErrBadLine)

	_, err = subway.New("blank", map[string][]string{"gap": {"a", " ", "c"}})
	assert.ErrorIs(t, err, subway.ErrBadLine)

	_, err = subway.Load(strings.NewReader("lines: [not, a, map]"))
	assert.Error(t, err)
}

func TestTransfers(t *testing.T) {
	assert.Equal(t, 0, subway.Transfers(nil))
	assert.Equal(t, 0, subway.Transfers([]string{"red", "red"}))
	assert.Equal(t, 2, subway.Transfers([]string{"red", "green", "green", "blue"}))
}
