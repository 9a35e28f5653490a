package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkjm2/lishex/internal/board"
)

func TestIterativeDeepeningRestoresRootPosition(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN, nil)
	require.NoError(t, err)
	before := pos.ToFEN()

	tt := NewTranspositionTable(4)
	s := NewSearcher(tt)
	_, _ = s.IterativeDeepening(pos, UCILimits{Depth: 4})

	require.Equal(t, before, pos.ToFEN(), "search must leave the root position unchanged")
	require.Empty(t, pos.History, "history must be fully unwound after search returns")
}

func TestIterativeDeepeningReturnsLegalMove(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN, nil)
	require.NoError(t, err)

	tt := NewTranspositionTable(4)
	s := NewSearcher(tt)
	m, _ := s.IterativeDeepening(pos, UCILimits{Depth: 3})

	require.NotEqual(t, board.NoMove, m)
	legal := pos.GenerateLegalMoves()
	require.True(t, legal.Contains(m), "chosen move must be among the legal moves at root")
}

func TestMateInOne(t *testing.T) {
	// White to move: Ra1-a8 is mate.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", nil)
	require.NoError(t, err)

	tt := NewTranspositionTable(4)
	s := NewSearcher(tt)
	m, score := s.IterativeDeepening(pos, UCILimits{Depth: 3})

	require.Equal(t, board.NewMove(board.A1, board.A8), m)
	require.Greater(t, score, MateScore-MaxPly)
}

func TestMateInOneForBlack(t *testing.T) {
	pos, err := board.ParseFEN("r5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1", nil)
	require.NoError(t, err)

	tt := NewTranspositionTable(4)
	s := NewSearcher(tt)
	m, score := s.IterativeDeepening(pos, UCILimits{Depth: 3})

	require.Equal(t, board.NewMove(board.A8, board.A1), m)
	require.Greater(t, score, MateScore-MaxPly)
}

// TestSearchDetectsThreefoldRepetitionAsDraw is SPEC_FULL.md §8 scenario
// 5: shuffling back to a position for the third time must search as a
// draw. The position carries a winning rook for White, so driving it
// through IterativeDeepening's own move choice would never reach the
// repeated line (the engine would rather mate); instead the repeating
// moves are played explicitly via MakeMove and negamax is invoked one
// ply in, exactly where isDraw's repetition check applies.
func TestSearchDetectsThreefoldRepetitionAsDraw(t *testing.T) {
	pos, err := board.ParseFEN("7k/8/8/8/8/8/8/R6K w - - 0 1", nil)
	require.NoError(t, err)

	shuffle := []board.Move{
		board.NewMove(board.A1, board.A2),
		board.NewMove(board.H8, board.H7),
		board.NewMove(board.A2, board.A1),
		board.NewMove(board.H7, board.H8),
		board.NewMove(board.A1, board.A2),
		board.NewMove(board.H8, board.H7),
		board.NewMove(board.A2, board.A1),
		board.NewMove(board.H7, board.H8),
	}
	for _, m := range shuffle {
		require.True(t, pos.MakeMove(m), "setup move %s rejected", m)
	}
	require.Equal(t, "7k/8/8/8/8/8/8/R6K w - - 8 5", pos.ToFEN(),
		"shuffle must return to the starting position for the third time")

	tt := NewTranspositionTable(4)
	s := NewSearcher(tt)
	score := s.negamax(pos, 2, 1, -Infinity, Infinity)
	require.Equal(t, 0, score, "a threefold-repeated position must search as a draw")
}

func TestTranspositionTableIsReusedAcrossSearches(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN, nil)
	require.NoError(t, err)

	tt := NewTranspositionTable(4)
	s := NewSearcher(tt)

	s.IterativeDeepening(pos, UCILimits{Depth: 3})
	s.IterativeDeepening(pos, UCILimits{Depth: 3})
	require.Greater(t, tt.HitRate(), 0.0, "a warm table should register probe hits on a repeated search")
}
