package engine

import (
	"github.com/mkjm2/lishex/internal/board"
)

// Move ordering priorities. The TT move is tried first, then captures
// by MVV-LVA, then killer quiets, then everything else by history
// score — the minimum ordering spec.md §4.9 calls for, without the
// counter-move/capture-history refinements a parallel, tuned engine
// would add.
const (
	ttMoveScore  = 10_000_000
	captureBase  = 1_000_000
	killerScore1 = 900_000
	killerScore2 = 800_000
)

// mvvLva scores victim-attacker pairs: most valuable victim, least
// valuable attacker sorts first.
var mvvLva = [6][6]int{
	/*        P   N   B   R   Q   K  (attacker) */
	/* P */ {15, 14, 14, 13, 12, 11},
	/* N */ {25, 24, 24, 23, 22, 21},
	/* B */ {35, 34, 34, 33, 32, 31},
	/* R */ {45, 44, 44, 43, 42, 41},
	/* Q */ {55, 54, 54, 53, 52, 51},
	/* K */ {0, 0, 0, 0, 0, 0},
}

// MoveOrderer carries the killer and history tables, which persist
// across a whole iterative-deepening search.
type MoveOrderer struct {
	killers [MaxPly][2]board.Move
	history [64][64]int
}

// NewMoveOrderer returns an empty orderer.
func NewMoveOrderer() *MoveOrderer {
	mo := &MoveOrderer{}
	mo.Clear()
	return mo
}

// Clear resets killers and halves history scores for a fresh search.
func (mo *MoveOrderer) Clear() {
	for i := range mo.killers {
		mo.killers[i][0] = board.NoMove
		mo.killers[i][1] = board.NoMove
	}
	for i := range mo.history {
		for j := range mo.history[i] {
			mo.history[i][j] /= 2
		}
	}
}

// ScoreMoves assigns an ordering score to every move in the list.
func (mo *MoveOrderer) ScoreMoves(pos *board.Position, moves *board.MoveList, ply int, ttMove board.Move) []int {
	scores := make([]int, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		scores[i] = mo.scoreMove(pos, moves.Get(i), ply, ttMove)
	}
	return scores
}

func (mo *MoveOrderer) scoreMove(pos *board.Position, m board.Move, ply int, ttMove board.Move) int {
	if m == ttMove {
		return ttMoveScore
	}

	if m.IsCapture() {
		attacker := pos.PieceAt(m.From()).Type()
		var victim board.PieceType
		if m.IsEnPassant() {
			victim = board.Pawn
		} else {
			victim = pos.PieceAt(m.To()).Type()
		}
		if victim == board.NoPieceType || victim > board.King || attacker > board.King {
			return captureBase
		}
		return captureBase + mvvLva[victim-1][attacker-1]*1000
	}

	if m.IsPromotion() {
		return captureBase - 1000 + int(m.Promotion())*100
	}

	if m == mo.killers[ply][0] {
		return killerScore1
	}
	if m == mo.killers[ply][1] {
		return killerScore2
	}

	return mo.history[m.From()][m.To()]
}

// PickMove selects the best-scoring remaining move starting at index
// and swaps it into place, the selection-sort step that lets the
// caller sort lazily — only as many moves as get searched.
func PickMove(moves *board.MoveList, scores []int, index int) {
	best := index
	for j := index + 1; j < moves.Len(); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != index {
		moves.Swap(index, best)
		scores[index], scores[best] = scores[best], scores[index]
	}
}

// UpdateKillers records a quiet move that caused a beta cutoff at ply.
func (mo *MoveOrderer) UpdateKillers(m board.Move, ply int) {
	if ply >= MaxPly || mo.killers[ply][0] == m {
		return
	}
	mo.killers[ply][1] = mo.killers[ply][0]
	mo.killers[ply][0] = m
}

// UpdateHistory rewards or penalizes a quiet move by depth squared,
// the standard history heuristic bonus curve.
func (mo *MoveOrderer) UpdateHistory(m board.Move, depth int, isGood bool) {
	from, to := m.From(), m.To()
	bonus := depth * depth

	if isGood {
		mo.history[from][to] += bonus
		if mo.history[from][to] > 400_000 {
			for i := range mo.history {
				for j := range mo.history[i] {
					mo.history[i][j] /= 2
				}
			}
		}
		return
	}

	mo.history[from][to] -= bonus
	if mo.history[from][to] < -400_000 {
		mo.history[from][to] = -400_000
	}
}
