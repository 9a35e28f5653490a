package engine

import (
	"github.com/mkjm2/lishex/internal/board"
	"github.com/mkjm2/lishex/internal/logging"
)

// Engine ties a Position to a shared transposition table and a
// Searcher, the object the UCI driver holds for the lifetime of a
// game. Parallel search is explicitly out of scope: one Engine runs
// one Searcher against one Position at a time.
type Engine struct {
	pos      *board.Position
	tt       *TranspositionTable
	searcher *Searcher
	cfg      Config
}

// NewEngine builds an Engine from cfg, allocating the transposition
// table once at startup with a fixed MB budget.
func NewEngine(cfg Config) *Engine {
	tt := NewTranspositionTable(cfg.HashMB)
	s := NewSearcher(tt)
	s.SetEvalConfig(cfg.EvalConfig())

	logging.Get().Infof("engine ready: hash=%dMB default_depth=%d", cfg.HashMB, cfg.DefaultDepth)

	return &Engine{
		tt:       tt,
		searcher: s,
		cfg:      cfg,
	}
}

// SetPosition replaces the engine's current position.
func (e *Engine) SetPosition(pos *board.Position) {
	e.pos = pos
}

// Position returns the engine's current position.
func (e *Engine) Position() *board.Position {
	return e.pos
}

// OnInfo registers a callback invoked once per completed search depth.
func (e *Engine) OnInfo(fn func(Info)) {
	e.searcher.OnInfo = fn
}

// Go starts a search against the current position under limits and
// returns the chosen move and its score.
func (e *Engine) Go(limits UCILimits) (board.Move, int) {
	if limits.Depth == 0 && limits.MoveTime == 0 && !limits.Infinite && limits.Nodes == 0 {
		limits.Depth = e.cfg.DefaultDepth
	}
	return e.searcher.IterativeDeepening(e.pos, limits)
}

// Stop signals a running search to unwind at the next node-count
// check.
func (e *Engine) Stop() {
	e.searcher.Stop()
}

// NewGame clears the transposition table and move-ordering tables for
// a fresh game (UCI `ucinewgame`).
func (e *Engine) NewGame() {
	e.tt.Clear()
	e.searcher.orderer = NewMoveOrderer()
}

// HashFull reports the permille of the transposition table in use.
func (e *Engine) HashFull() int {
	return e.tt.HashFull()
}

// Nodes returns the node count from the most recent search.
func (e *Engine) Nodes() uint64 {
	return e.searcher.Nodes()
}

// Config returns the engine's active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
