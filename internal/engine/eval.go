// Package engine implements the search and evaluation half of the
// chess engine: iterative-deepening alpha-beta over a board.Position,
// a shared transposition table, and a tapered piece-square evaluation.
package engine

import (
	"github.com/mkjm2/lishex/internal/board"
)

// pieceValues mirrors board.PieceValue but keeps evaluation
// self-contained from move-ordering's own copy.
var pieceValues = board.PieceValue

// Piece-square tables, middlegame and endgame, one per piece type,
// indexed by square as seen from White's side (mirrored via
// Square.Mirror for Black). Values in centipawns, White-POV.
var (
	pawnPSTmg = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 0, -10, -10, 0, 10, 10,
		5, 0, 0, 5, 5, 0, 0, 5,
		0, 0, 10, 20, 20, 10, 0, 0,
		5, 5, 5, 10, 10, 5, 5, 5,
		10, 10, 10, 20, 20, 10, 10, 10,
		20, 20, 20, 30, 30, 20, 20, 20,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	pawnPSTeg = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		8, 8, 5, 4, 4, 5, 8, 8,
		-1, -1, -1, -1, -1, -1, -1, -1,
		2, 0, 0, -1, -1, 10, 0, 2,
		25, 10, 5, 5, 5, 5, 10, 25,
		55, 50, 50, 45, 45, 50, 50, 55,
		125, 120, 120, 110, 110, 120, 120, 125,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightPSTmg = [64]int{
		-5, -10, 0, 0, 0, 0, -10, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
		0, 0, 10, 10, 10, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 5, 0,
		5, 10, 15, 20, 20, 15, 10, 5,
		5, 10, 10, 20, 20, 10, 10, 5,
		0, 0, 5, 10, 10, 5, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
	}
	knightPSTeg = [64]int{
		-35, -10, -5, -5, -5, -5, -10, -35,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 10, 10, 20, 20, 10, 10, -10,
		-10, 10, 15, 20, 20, 15, 10, -10,
		-10, 10, 10, 20, 20, 10, 10, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-35, -10, -5, -5, -5, -5, -10, -35,
	}
	bishopPSTmg = [64]int{
		0, 0, -10, 0, 0, -10, 0, 0,
		0, 0, 0, 10, 10, 0, 0, 0,
		0, 0, 10, 15, 15, 10, 0, 0,
		0, 10, 15, 20, 20, 15, 10, 0,
		0, 10, 15, 20, 20, 15, 10, 0,
		0, 0, 10, 15, 15, 10, 0, 0,
		0, 0, 0, 10, 10, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	bishopPSTeg = [64]int{
		-20, -10, -10, 0, 0, -10, -10, -20,
		0, 0, 0, 10, 10, 0, 0, 0,
		0, 0, 10, 15, 15, 10, 0, 0,
		0, 10, 15, 20, 20, 15, 10, 0,
		0, 10, 15, 20, 20, 15, 10, 0,
		0, 0, 10, 15, 15, 10, 0, 0,
		0, 0, 0, 10, 10, 0, 0, 0,
		-20, -10, -10, 0, 0, -10, -10, -20,
	}
	rookPSTmg = [64]int{
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		25, 25, 25, 25, 25, 25, 25, 25,
		0, 0, 5, 10, 10, 5, 0, 0,
	}
	rookPSTeg = [64]int{
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		15, 15, 15, 15, 15, 15, 15, 15,
		0, 0, 5, 10, 10, 5, 0, 0,
	}
	queenPSTmg = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	queenPSTeg = queenPSTmg
	kingPSTmg  = [64]int{
		-50, -10, 0, 0, 0, 0, -10, -50,
		-10, 0, 10, 10, 10, 10, 0, -10,
		0, 10, 20, 20, 20, 20, 10, 0,
		0, 10, 20, 40, 40, 20, 10, 0,
		0, 10, 20, 40, 40, 20, 10, 0,
		0, 10, 20, 20, 20, 20, 10, 0,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-50, -10, 0, 0, 0, 0, -10, -50,
	}
	kingPSTeg = [64]int{
		0, 5, 5, -10, -10, 0, 10, 5,
		-30, -30, -30, -30, -30, -30, -30, -30,
		-50, -50, -50, -50, -50, -50, -50, -50,
		-70, -70, -70, -70, -70, -70, -70, -70,
		-70, -70, -70, -70, -70, -70, -70, -70,
		-70, -70, -70, -70, -70, -70, -70, -70,
		-70, -70, -70, -70, -70, -70, -70, -70,
		-70, -70, -70, -70, -70, -70, -70, -70,
	}
)

var pstMg = [7][64]int{
	board.NoPieceType: {},
	board.Pawn:        pawnPSTmg,
	board.Knight:      knightPSTmg,
	board.Bishop:      bishopPSTmg,
	board.Rook:        rookPSTmg,
	board.Queen:       queenPSTmg,
	board.King:        kingPSTmg,
}

var pstEg = [7][64]int{
	board.NoPieceType: {},
	board.Pawn:        pawnPSTeg,
	board.Knight:      knightPSTeg,
	board.Bishop:      bishopPSTeg,
	board.Rook:        rookPSTeg,
	board.Queen:       queenPSTeg,
	board.King:        kingPSTeg,
}

// phaseWeight scores how much each piece type contributes to "how much
// of the middlegame is left on the board", out of a total of 24. This
// replaces the original engine's phase formula, whose king term
// (`6 * count(kings)`) always evaluates to a constant 12 since both
// kings are always on the board — almost certainly a copy-paste of the
// knight term that should scale with knight count instead.
var phaseWeight = [7]int{0, 0, 1, 1, 2, 4, 0}

const totalPhase = 24

// EvalConfig carries the tuning knobs a config file is allowed to
// override: everything downstream of raw piece values and PSQTs.
type EvalConfig struct {
	BishopPairMg int
	BishopPairEg int
	TempoBonus   int
}

// DefaultEvalConfig returns the built-in tuning values.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		BishopPairMg: 25,
		BishopPairEg: 50,
		TempoBonus:   10,
	}
}

// Evaluate returns a static score for pos, positive meaning good for
// the side to move: material, piece-square tables tapered between
// middlegame and endgame by remaining material, a bishop-pair bonus,
// and a small tempo bonus for having the move.
func Evaluate(pos *board.Position) int {
	return EvaluateWithConfig(pos, DefaultEvalConfig())
}

// EvaluateWithConfig is Evaluate parameterized by tuning knobs, used by
// the engine once it has loaded a Config.
func EvaluateWithConfig(pos *board.Position, cfg EvalConfig) int {
	var mg, eg, phase int

	for c := board.White; c <= board.Black; c++ {
		sign := 1
		if c == board.Black {
			sign = -1
		}
		for pt := board.Pawn; pt <= board.King; pt++ {
			bb := pos.Pieces[c][pt]
			phase += phaseWeight[pt] * bb.PopCount()
			for bb != 0 {
				sq := bb.PopLSB()
				pstSq := sq
				if c == board.Black {
					pstSq = sq.Mirror()
				}
				mg += sign * (pieceValues[pt] + pstMg[pt][pstSq])
				eg += sign * (pieceValues[pt] + pstEg[pt][pstSq])
			}
		}

		if pos.Pieces[c][board.Bishop].PopCount() >= 2 {
			mg += sign * cfg.BishopPairMg
			eg += sign * cfg.BishopPairEg
		}
	}

	if phase > totalPhase {
		phase = totalPhase
	}
	tapered := (mg*phase + eg*(totalPhase-phase)) / totalPhase

	score := tapered
	if pos.SideToMove == board.Black {
		score = -tapered
	}
	return score + cfg.TempoBonus
}

// IsEndgame reports whether material has dropped low enough that
// endgame-specific move choices (king activity, passed pawns) should
// dominate — both sides below a queen-plus-rook's worth of non-pawn
// material.
func IsEndgame(pos *board.Position) bool {
	limit := pieceValues[board.Queen] + pieceValues[board.Rook]
	for c := board.White; c <= board.Black; c++ {
		material := 0
		for pt := board.Knight; pt <= board.Queen; pt++ {
			material += pos.Pieces[c][pt].PopCount() * pieceValues[pt]
		}
		if material >= limit {
			return false
		}
	}
	return true
}
