package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkjm2/lishex/internal/board"
)

func TestScoreMovesPutsTTMoveFirst(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN, nil)
	require.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	ttMove := moves.Get(moves.Len() - 1)

	mo := NewMoveOrderer()
	scores := mo.ScoreMoves(pos, moves, 0, ttMove)

	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i) == ttMove {
			require.Equal(t, ttMoveScore, scores[i])
		} else {
			require.Less(t, scores[i], ttMoveScore)
		}
	}
}

func TestScoreMovesRanksCapturesByMVVLVA(t *testing.T) {
	// Black queen and black knight both hanging to a white pawn and
	// a white rook respectively; pawn-takes-queen must outscore
	// rook-takes-knight.
	pos, err := board.ParseFEN("4k3/8/8/3q4/4P3/8/8/3Rn2K w - - 0 1", nil)
	require.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	mo := NewMoveOrderer()
	scores := mo.ScoreMoves(pos, moves, 0, board.NoMove)

	var pawnTakesQueen, rookTakesKnight int
	found1, found2 := false, false
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == board.E4 && m.To() == board.D5 {
			pawnTakesQueen = scores[i]
			found1 = true
		}
		if m.From() == board.D1 && m.To() == board.E1 {
			rookTakesKnight = scores[i]
			found2 = true
		}
	}
	require.True(t, found1 && found2, "both captures must be generated")
	require.Greater(t, pawnTakesQueen, rookTakesKnight)
}

func TestUpdateKillersTracksTwoMostRecent(t *testing.T) {
	mo := NewMoveOrderer()
	m1 := board.NewMove(board.E2, board.E4)
	m2 := board.NewMove(board.D2, board.D4)
	m3 := board.NewMove(board.G1, board.F3)

	mo.UpdateKillers(m1, 0)
	mo.UpdateKillers(m2, 0)
	require.Equal(t, m2, mo.killers[0][0])
	require.Equal(t, m1, mo.killers[0][1])

	mo.UpdateKillers(m3, 0)
	require.Equal(t, m3, mo.killers[0][0])
	require.Equal(t, m2, mo.killers[0][1])
}

func TestUpdateHistoryAccumulatesAndClamps(t *testing.T) {
	mo := NewMoveOrderer()
	m := board.NewMove(board.E2, board.E4)

	mo.UpdateHistory(m, 10, true)
	require.Equal(t, 100, mo.history[board.E2][board.E4])

	mo.UpdateHistory(m, 700, false)
	require.Equal(t, -400_000, mo.history[board.E2][board.E4])
}

func TestPickMoveSelectsHighestScoringRemaining(t *testing.T) {
	pos, err := board.ParseFEN(board.StartFEN, nil)
	require.NoError(t, err)
	moves := pos.GenerateLegalMoves()

	scores := make([]int, moves.Len())
	scores[moves.Len()-1] = 999
	target := moves.Get(moves.Len() - 1)

	PickMove(moves, scores, 0)
	require.Equal(t, target, moves.Get(0))
	require.Equal(t, 999, scores[0])
}
