package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkjm2/lishex/internal/board"
)

func TestTranspositionStoreProbeExact(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := board.NewMove(board.E2, board.E4)

	tt.Store(0xABCDEF, m, 123, TTExact, 5, 0)

	res := tt.Probe(0xABCDEF, 5, 0, -Infinity, Infinity)
	require.True(t, res.Hit)
	require.Equal(t, 123, res.Score)
	require.Equal(t, m, res.Move)
}

func TestTranspositionDepthMiss(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := board.NewMove(board.E2, board.E4)
	tt.Store(0x1234, m, 50, TTExact, 3, 0)

	res := tt.Probe(0x1234, 5, 0, -Infinity, Infinity)
	require.False(t, res.Hit, "shallower stored depth must miss")
	require.Equal(t, m, res.Move, "move is still exposed on a depth miss")
}

func TestTranspositionKeyMismatch(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := board.NewMove(board.E2, board.E4)
	tt.Store(0x1111, m, 50, TTExact, 3, 0)

	res := tt.Probe(0x2222, 1, 0, -Infinity, Infinity)
	require.False(t, res.Hit)
	require.Equal(t, board.NoMove, res.Move)
}

func TestTranspositionMateScoreAdjustment(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := board.NewMove(board.A1, board.A8)

	mateIn2AtRoot := MateScore - 3 // stored relative to root ply 0
	tt.Store(0x55, m, mateIn2AtRoot, TTExact, 2, 0)

	res := tt.Probe(0x55, 2, 0, -Infinity, Infinity)
	require.True(t, res.Hit)
	require.Equal(t, mateIn2AtRoot, res.Score, "re-probing at the same ply must round-trip exactly")
}

func TestTranspositionAlwaysReplace(t *testing.T) {
	tt := NewTranspositionTable(1)
	m1 := board.NewMove(board.E2, board.E4)
	m2 := board.NewMove(board.D2, board.D4)

	tt.Store(0x77, m1, 10, TTExact, 8, 0)
	tt.Store(0x77, m2, 20, TTExact, 1, 0) // shallower, still overwrites

	res := tt.Probe(0x77, 1, 0, -Infinity, Infinity)
	require.True(t, res.Hit)
	require.Equal(t, m2, res.Move)
	require.Equal(t, 20, res.Score)
}

func TestTranspositionClear(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := board.NewMove(board.E2, board.E4)
	tt.Store(0x99, m, 10, TTExact, 4, 0)

	tt.Clear()

	res := tt.Probe(0x99, 1, 0, -Infinity, Infinity)
	require.False(t, res.Hit)
}

func TestTranspositionProbePVIgnoresDepth(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := board.NewMove(board.G1, board.F3)
	tt.Store(0xBEEF, m, 5, TTUpper, 1, 0)

	require.Equal(t, m, tt.ProbePV(0xBEEF))
}
