package engine

import (
	"github.com/mkjm2/lishex/internal/board"
)

// TTFlag indicates the kind of bound an entry stores.
type TTFlag uint8

const (
	TTBad   TTFlag = iota // slot never written, or invalidated
	TTExact               // exact score
	TTLower               // fail-high: true score >= stored score
	TTUpper               // fail-low: true score <= stored score
)

// TTEntry is one transposition table slot: {key, move, score, depth, flags}.
type TTEntry struct {
	Key   uint64
	Move  board.Move
	Score int32
	Depth int8
	Flag  TTFlag
}

// TranspositionTable is a fixed-capacity, always-replace hash table of
// search results, addressed by key mod capacity. One entry per slot:
// every store overwrites whatever was there, trading a deeper or newer
// result for memory simplicity rather than tracking generations.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64

	probes uint64
	hits   uint64
}

// NewTranspositionTable allocates a table sized to approximately sizeMB
// megabytes, rounded down to a power of two entry count for a cheap
// mask instead of a modulo.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	const entrySize = 24 // bytes, approximate layout of TTEntry
	numEntries := (uint64(sizeMB) * 1024 * 1024) / entrySize
	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}

	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		mask:    numEntries - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// ProbeResult is the outcome of Probe: either a usable bound (Hit) or a
// miss that may still expose a move worth trying first.
type ProbeResult struct {
	Hit   bool
	Score int
	Move  board.Move
}

// Probe looks up key and interprets the stored bound against the
// caller's alpha/beta window at the given depth and ply. The stored
// move is always returned, even on a depth miss, so it can still guide
// move ordering; Hit is only set when the bound resolves to a usable
// score without needing to search deeper.
func (tt *TranspositionTable) Probe(key uint64, depth, ply, alpha, beta int) ProbeResult {
	tt.probes++

	e := &tt.entries[key&tt.mask]
	if e.Flag == TTBad || e.Key != key {
		return ProbeResult{Move: board.NoMove}
	}

	result := ProbeResult{Move: e.Move}
	if int(e.Depth) < depth {
		return result
	}

	score := AdjustScoreFromTT(int(e.Score), ply)

	switch e.Flag {
	case TTExact:
		tt.hits++
		result.Hit = true
		result.Score = score
	case TTLower:
		v := score
		if v > beta {
			v = beta
		}
		if v >= beta {
			tt.hits++
			result.Hit = true
			result.Score = v
		}
	case TTUpper:
		v := score
		if v < alpha {
			v = alpha
		}
		if v <= alpha {
			tt.hits++
			result.Hit = true
			result.Score = v
		}
	}
	return result
}

// ProbePV returns the stored move for key without depth gating, used
// only to rebuild the principal variation after a completed search.
func (tt *TranspositionTable) ProbePV(key uint64) board.Move {
	e := &tt.entries[key&tt.mask]
	if e.Flag == TTBad || e.Key != key {
		return board.NoMove
	}
	return e.Move
}

// Store writes through unconditionally (always-replace). Mate scores
// are converted from "plies from the search root" to "plies from this
// node" before storage, the inverse of the shift Probe applies.
func (tt *TranspositionTable) Store(key uint64, move board.Move, score int, flag TTFlag, depth, ply int) {
	e := &tt.entries[key&tt.mask]
	e.Key = key
	e.Move = move
	e.Score = int32(AdjustScoreToTT(score, ply))
	e.Depth = int8(depth)
	e.Flag = flag
}

// Clear resets every slot.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.probes = 0
	tt.hits = 0
}

// HashFull returns the permille of the table occupied, sampled from the
// first 1000 slots per the standard UCI `info hashfull` convention.
func (tt *TranspositionTable) HashFull() int {
	sampleSize := 1000
	if uint64(sampleSize) > uint64(len(tt.entries)) {
		sampleSize = len(tt.entries)
	}
	used := 0
	for i := 0; i < sampleSize; i++ {
		if tt.entries[i].Flag != TTBad {
			used++
		}
	}
	return (used * 1000) / sampleSize
}

// HitRate returns the probe hit rate as a percentage, for diagnostics.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}

// Size returns the number of entries in the table.
func (tt *TranspositionTable) Size() uint64 {
	return uint64(len(tt.entries))
}

// AdjustScoreFromTT converts a mate score stored "plies from this node"
// back to "plies from the current search root" on retrieval.
func AdjustScoreFromTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

// AdjustScoreToTT converts a mate score expressed "plies from the
// current search root" to "plies from this node" before storage.
func AdjustScoreToTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}
