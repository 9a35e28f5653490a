package epd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSuiteParsesPerftAndBestMoveCases(t *testing.T) {
	s, err := LoadSuite("../../testdata/epd/standard.yaml")
	require.NoError(t, err)

	require.Equal(t, "standard-perft", s.Name)
	require.Len(t, s.PerftCases, 3)
	require.Equal(t, "startpos", s.PerftCases[0].Name)
	require.Equal(t, int64(8902), s.PerftCases[0].Nodes[3])

	require.Len(t, s.BestMoves, 1)
	require.Equal(t, "a1a8", s.BestMoves[0].BestMove)
}

func TestPerftCaseDepthsAreSorted(t *testing.T) {
	c := PerftCase{Nodes: map[int]int64{4: 1, 1: 2, 3: 3, 2: 4}}
	require.Equal(t, []int{1, 2, 3, 4}, c.Depths())
}

func TestLoadSuiteMissingFile(t *testing.T) {
	_, err := LoadSuite("../../testdata/epd/does-not-exist.yaml")
	require.Error(t, err)
}
