package board

// MakeMove applies m to the position and reports whether it was legal.
// It always mutates the position (pushing an UndoRecord) and, if the
// mover's king ends up attacked, immediately calls UndoMove and returns
// false — callers never need a separate legality pre-check. On success
// the caller is responsible for eventually calling UndoMove to return
// to the parent position.
//
// Steps follow the data model's make_move algorithm: snapshot, clear
// old en-passant/castle-rights hash contributions, resolve captures
// (including en passant), move the piece, resolve promotion, move the
// castling rook, recompute castle rights and en-passant square, flip
// side to move, and finally test king safety.
func (p *Position) MakeMove(m Move) bool {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()

	rec := UndoRecord{
		Move:           m,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		Hash:           p.Hash,
		Captured:       NoPiece,
	}

	piece := p.Board[from]
	pt := piece.Type()

	if p.EnPassant.IsValid() {
		p.Hash ^= p.Keys.EPKey(p.EnPassant)
	}
	p.Hash ^= p.Keys.CastleKey(p.CastlingRights)

	switch {
	case m.IsEnPassant():
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		rec.Captured = p.removePiece(capSq)
		p.Hash ^= p.Keys.PieceKey(rec.Captured, capSq)
	case m.IsCastling():
		// rook moves separately below; no capture on the king's own move
	default:
		if captured := p.Board[to]; !captured.IsNone() {
			rec.Captured = captured
			p.removePiece(to)
			p.Hash ^= p.Keys.PieceKey(captured, to)
		}
	}

	p.movePiece(from, to)
	p.Hash ^= p.Keys.PieceKey(piece, from)
	p.Hash ^= p.Keys.PieceKey(piece, to)

	if m.IsPromotion() {
		promoPt := m.Promotion()
		promoPiece := NewPiece(promoPt, us)
		p.Pieces[us][Pawn] &^= SquareBB(to)
		p.Pieces[us][promoPt] |= SquareBB(to)
		p.Board[to] = promoPiece
		p.Hash ^= p.Keys.PieceKey(piece, to)
		p.Hash ^= p.Keys.PieceKey(promoPiece, to)
	}

	if m.IsCastling() {
		rookFrom, rookTo := castleRookSquares(from, m.IsKingsideCastle())
		rook := NewPiece(Rook, us)
		p.movePiece(rookFrom, rookTo)
		p.Hash ^= p.Keys.PieceKey(rook, rookFrom)
		p.Hash ^= p.Keys.PieceKey(rook, rookTo)
	}

	p.CastlingRights &= castleSpoil[from] & castleSpoil[to]
	p.Hash ^= p.Keys.CastleKey(p.CastlingRights)

	p.EnPassant = NoSquare
	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		p.EnPassant = Square((int(from) + int(to)) / 2)
		p.Hash ^= p.Keys.EPKey(p.EnPassant)
	}

	if pt == Pawn || !rec.Captured.IsNone() {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
	p.Hash ^= p.Keys.TurnKey()
	p.Ply++
	p.History = append(p.History, rec)
	p.UpdateCheckers()

	if p.IsSquareAttacked(p.KingSquare[us], them) {
		p.UndoMove()
		return false
	}
	return true
}

// UndoMove reverses the most recent MakeMove, restoring the position to
// the snapshot on top of History. Popping an empty History is a
// programming error (invariant 6) and panics rather than silently
// corrupting state.
func (p *Position) UndoMove() {
	n := len(p.History)
	if n == 0 {
		panic("board: UndoMove called with empty history")
	}
	rec := p.History[n-1]
	p.History = p.History[:n-1]

	them := p.SideToMove
	us := them.Other()
	m := rec.Move
	from := m.From()
	to := m.To()

	p.CastlingRights = rec.CastlingRights
	p.EnPassant = rec.EnPassant
	p.HalfMoveClock = rec.HalfMoveClock
	p.Hash = rec.Hash
	p.SideToMove = us
	p.Ply--

	if us == Black {
		p.FullMoveNumber--
	}

	if m.IsPromotion() {
		promoPt := m.Promotion()
		p.Pieces[us][promoPt] &^= SquareBB(to)
		p.Pieces[us][Pawn] |= SquareBB(to)
		p.Board[to] = NewPiece(Pawn, us)
	}

	p.movePiece(to, from)

	if m.IsCastling() {
		rookFrom, rookTo := castleRookSquares(from, m.IsKingsideCastle())
		p.movePiece(rookTo, rookFrom)
	}

	if !rec.Captured.IsNone() {
		if m.IsEnPassant() {
			capSq := to - 8
			if us == Black {
				capSq = to + 8
			}
			p.setPiece(rec.Captured, capSq)
		} else {
			p.setPiece(rec.Captured, to)
		}
	}

	p.UpdateCheckers()
}

// castleRookSquares returns the rook's origin/destination for the
// castling move whose king starts on kingFrom.
func castleRookSquares(kingFrom Square, kingside bool) (from, to Square) {
	rank := kingFrom.Rank()
	if kingside {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}

// MakeNullMove performs a side-flip without moving a piece: records a
// snapshot, clears ep_square, flips turn. The caller must ensure the
// mover is not currently in check.
func (p *Position) MakeNullMove() {
	rec := UndoRecord{
		Move:          NoMove,
		EnPassant:     p.EnPassant,
		HalfMoveClock: p.HalfMoveClock,
		Hash:          p.Hash,
		Captured:      NoPiece,
	}
	rec.CastlingRights = p.CastlingRights

	if p.EnPassant.IsValid() {
		p.Hash ^= p.Keys.EPKey(p.EnPassant)
	}
	p.EnPassant = NoSquare
	p.SideToMove = p.SideToMove.Other()
	p.Hash ^= p.Keys.TurnKey()
	p.Ply++
	p.History = append(p.History, rec)
	p.UpdateCheckers()
}

// UndoNullMove reverses MakeNullMove.
func (p *Position) UndoNullMove() {
	n := len(p.History)
	if n == 0 {
		panic("board: UndoNullMove called with empty history")
	}
	rec := p.History[n-1]
	p.History = p.History[:n-1]

	p.EnPassant = rec.EnPassant
	p.Hash = rec.Hash
	p.SideToMove = p.SideToMove.Other()
	p.Ply--
	p.UpdateCheckers()
}
