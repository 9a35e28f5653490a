package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/mkjm2/lishex/internal/board"
	"github.com/mkjm2/lishex/internal/logging"
)

// Search bounds and mate-score sentinels.
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128
)

// Limits carries UCI `go` parameters: time budget, depth/node caps,
// and the infinite flag. Named UCILimits to match the
// vocabulary the driver speaks.
type UCILimits struct {
	Time      [2]int // wtime, btime, milliseconds
	Inc       [2]int // winc, binc, milliseconds
	MovesToGo int
	MoveTime  int // fixed time per move, milliseconds; 0 = unset
	Depth     int // 0 = unset
	Nodes     uint64
	Infinite  bool
}

// Info is what the search reports back to the driver once per
// completed iterative-deepening depth, enough to print a UCI `info`
// line without the searcher knowing about UCI.
type Info struct {
	Depth int
	Score int
	Nodes uint64
	PV    []board.Move
}

// Searcher runs iterative-deepening alpha-beta over a single Position,
// consulting a shared TranspositionTable. One Searcher is built once
// per engine instance and reused across searches; it owns no global
// state itself.
type Searcher struct {
	tt      *TranspositionTable
	orderer *MoveOrderer
	evalCfg EvalConfig
	tm      *TimeManager

	nodes    uint64
	stopFlag atomic.Bool

	// OnInfo, if set, is called after every completed depth with the
	// iteration's result. Nil is fine — a headless perft-only caller
	// doesn't need it.
	OnInfo func(Info)
}

// NewSearcher builds a Searcher against a shared transposition table.
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{
		tt:      tt,
		orderer: NewMoveOrderer(),
		evalCfg: DefaultEvalConfig(),
		tm:      NewTimeManager(),
	}
}

// SetEvalConfig overrides the evaluation tuning knobs, e.g. from a
// loaded Config.
func (s *Searcher) SetEvalConfig(cfg EvalConfig) {
	s.evalCfg = cfg
}

// Stop signals the running search to unwind. negamax reads the flag
// every 4096 nodes and after each child search. The clock is not read
// inside negamax: time limits are checked only between completed depth
// iterations, so a running iteration is not cut short by time.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// Nodes returns the node count from the most recent search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// IterativeDeepening searches pos depth 1, 2, 3 … until limits.Depth is
// reached, the time budget is exceeded, or Stop is called, returning
// the best move from the most recently *completed* depth iteration.
func (s *Searcher) IterativeDeepening(pos *board.Position, limits UCILimits) (board.Move, int) {
	s.stopFlag.Store(false)
	s.nodes = 0
	s.orderer.Clear()
	s.tm.Init(limits, pos.SideToMove, pos.Ply)

	maxDepth := limits.Depth
	if maxDepth == 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	var bestMove board.Move
	var bestScore int
	var prevBestMove board.Move
	stability := 0

	for depth := 1; depth <= maxDepth; depth++ {
		score := s.negamax(pos, depth, 0, -Infinity, Infinity)

		if s.stopFlag.Load() {
			break
		}

		pv := s.collectPV(pos, depth)
		if len(pv) == 0 {
			break
		}

		bestMove = pv[0]
		bestScore = score

		if bestMove == prevBestMove {
			stability++
		} else {
			stability = 0
		}
		prevBestMove = bestMove
		s.tm.AdjustForStability(stability)

		if s.OnInfo != nil {
			s.OnInfo(Info{Depth: depth, Score: bestScore, Nodes: s.nodes, PV: pv})
		}

		if limits.Nodes > 0 && s.nodes >= limits.Nodes {
			break
		}
		if !limits.Infinite && s.tm.PastOptimum() {
			break
		}
		if bestScore > MateScore-MaxPly || bestScore < -MateScore+MaxPly {
			break // found a forced mate, no need to search deeper
		}
	}

	return bestMove, bestScore
}

// collectPV rebuilds the principal variation by repeatedly probing the
// TT for the best move and replaying it on a scratch copy of pos,
// stopping at the first miss, illegal replay, or depth bound. This is
// the TT-based PV recovery used in place of a side PV array.
func (s *Searcher) collectPV(pos *board.Position, maxLen int) []board.Move {
	scratch := pos.Copy()
	pv := make([]board.Move, 0, maxLen)

	for i := 0; i < maxLen; i++ {
		m := s.tt.ProbePV(scratch.Hash)
		if m == board.NoMove {
			break
		}
		if !scratch.MakeMove(m) {
			break
		}
		pv = append(pv, m)
	}
	return pv
}

// negamax is alpha-beta search, fail-soft, in negamax form.
func (s *Searcher) negamax(pos *board.Position, depth, ply, alpha, beta int) int {
	if s.nodes&4095 == 0 && s.stopFlag.Load() {
		return 0
	}
	s.nodes++

	if ply > 0 && s.isDraw(pos) {
		return 0
	}

	alphaIn := alpha

	var ttMove board.Move
	probe := s.tt.Probe(pos.Hash, depth, ply, alpha, beta)
	ttMove = probe.Move
	if probe.Hit {
		return probe.Score
	}

	if depth == 0 {
		return EvaluateWithConfig(pos, s.evalCfg)
	}

	inCheck := pos.InCheck()
	moves := pos.GeneratePseudoLegalMoves()

	scores := s.orderer.ScoreMoves(pos, moves, ply, ttMove)

	bestScore := -Infinity
	bestMove := board.NoMove
	legalCount := 0

	for i := 0; i < moves.Len(); i++ {
		PickMove(moves, scores, i)
		m := moves.Get(i)

		if !pos.MakeMove(m) {
			continue
		}
		legalCount++

		score := -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		pos.UndoMove()

		if s.stopFlag.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}

		if score >= beta {
			s.tt.Store(pos.Hash, bestMove, score, TTLower, depth, ply)
			if !m.IsCapture() {
				s.orderer.UpdateKillers(m, ply)
				s.orderer.UpdateHistory(m, depth, true)
			}
			return score
		}
	}

	if legalCount == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return 0
	}

	if alpha != alphaIn {
		s.tt.Store(pos.Hash, bestMove, bestScore, TTExact, depth, ply)
	} else {
		s.tt.Store(pos.Hash, bestMove, bestScore, TTUpper, depth, ply)
	}

	return bestScore
}

// isDraw checks the fifty-move rule, insufficient material, and
// repetition: walking the history stack backwards up to fifty_move
// entries, comparing stored keys to the current key. Captures and
// pawn pushes reset the fifty-move clock and therefore bound the
// window correctly, since no position before the last irreversible
// move can repeat the current one.
func (s *Searcher) isDraw(pos *board.Position) bool {
	if pos.HalfMoveClock >= 100 {
		return true
	}
	if pos.IsInsufficientMaterial() {
		return true
	}

	n := len(pos.History)
	limit := pos.HalfMoveClock
	if limit > n {
		limit = n
	}
	for i := 1; i <= limit; i++ {
		if pos.History[n-i].Hash == pos.Hash {
			return true
		}
	}
	return false
}

// LogSearchStart emits a diagnostic before a search begins — outside
// the hot path, so logging overhead here is irrelevant.
func LogSearchStart(limits UCILimits, ttSizeMB int) {
	logging.Get().Infof("starting search: depth=%d movetime=%dms tt=%dMB",
		limits.Depth, limits.MoveTime, ttSizeMB)
}

func (m Info) String() string {
	return fmt.Sprintf("depth %d score cp %d nodes %d pv %v", m.Depth, m.Score, m.Nodes, m.PV)
}
