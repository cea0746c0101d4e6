package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
log:
  level: debug
  format: json
search:
  max_expansions: 5000
  max_depth: 40
  timeout: 2s
problems:
  - name: classic
    kind: bridge
    times: [1, 2, 5, 10]
  - kind: pour
    capacities: [4, 9]
    goal: 6
  - kind: river
    missionaries: 3
    cannibals: 3
  - kind: subway
    from: mit
    to: ${LVSEARCH_TEST_STATION}
  - kind: maze
    diagonal: true
    start: [0, 0]
    end: [2, 2]
    grid: |
      ..#
      #..
      ...
`

func TestParse(t *testing.T) {
	t.Setenv("LVSEARCH_TEST_STATION", "government")

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5000, cfg.Search.MaxExpansions)
	assert.Equal(t, 2*time.Second, cfg.Search.Timeout)
	assert.Len(t, cfg.Search.Options(), 2)

	require.Len(t, cfg.Problems, 5)
	assert.Equal(t, "classic", cfg.Problems[0].Label())
	assert.Equal(t, []int{1, 2, 5, 10}, cfg.Problems[0].Times)
	assert.Equal(t, "pour", cfg.Problems[1].Label())
	assert.Equal(t, []int{4, 9}, cfg.Problems[1].Capacities)
	assert.Equal(t, 3, cfg.Problems[2].Cannibals)
	assert.Equal(t, "government", cfg.Problems[3].To)
	assert.Equal(t, "..#\n#..\n...\n", cfg.Problems[4].Grid)
	assert.True(t, cfg.Problems[4].Diagonal)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"NotYAML", "problems: [", ErrInvalidFormat},
		{"UnknownKey", "problems:\n  - kind: river\n    boats: 2\n", ErrInvalidFormat},
		{"NoProblems", "log:\n  level: info\n", ErrValidationFailed},
		{"UnknownKind", "problems:\n  - kind: sokoban\n", ErrValidationFailed},
		{"MissingKind", "problems:\n  - name: x\n", ErrValidationFailed},
		{"BadPour", "problems:\n  - kind: pour\n    capacities: [4]\n", ErrValidationFailed},
		{"BadMaze", "problems:\n  - kind: maze\n    grid: '..'\n    start: [0]\n    end: [1, 0]\n", ErrValidationFailed},
		{"NegativeLimit", "search:\n  max_depth: -1\nproblems:\n  - kind: river\n", ErrValidationFailed},
		{"BadLevel", "log:\n  level: loud\nproblems:\n  - kind: river\n", ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("problems:\n  - kind: river\n    missionaries: 2\n    cannibals: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Problems[0].Missionaries)
	assert.Empty(t, cfg.Search.Options())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)

	_, err = Load(dir)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
