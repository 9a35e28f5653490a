package board

// GenerateLegalMoves enumerates legal moves by generating pseudo-legal
// candidates and filtering them through MakeMove/UndoMove.
func (p *Position) GenerateLegalMoves() *MoveList {
	pseudo := p.GeneratePseudoLegalMoves()
	result := NewMoveList()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if p.MakeMove(m) {
			p.UndoMove()
			result.Add(m)
		}
	}
	return result
}

// GeneratePseudoLegalMoves generates all pseudo-legal moves: moves that
// respect piece movement rules but may leave the mover's king in check.
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := NewMoveList()
	p.generateAllMoves(ml)
	return ml
}

func (p *Position) generateAllMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	occupied := p.AllOccupied
	enemies := p.Occupied[them]

	p.generatePawnMoves(ml, us, enemies, occupied)

	knights := p.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		attacks := KnightAttacks(from) & ^p.Occupied[us]
		addMovesFrom(ml, p, from, attacks, enemies)
	}

	bishops := p.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		attacks := BishopAttacks(from, occupied) & ^p.Occupied[us]
		addMovesFrom(ml, p, from, attacks, enemies)
	}

	rooks := p.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		attacks := RookAttacks(from, occupied) & ^p.Occupied[us]
		addMovesFrom(ml, p, from, attacks, enemies)
	}

	queens := p.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		attacks := QueenAttacks(from, occupied) & ^p.Occupied[us]
		addMovesFrom(ml, p, from, attacks, enemies)
	}

	from := p.KingSquare[us]
	attacks := KingAttacks(from) & ^p.Occupied[us]
	addMovesFrom(ml, p, from, attacks, enemies)

	p.generateCastlingMoves(ml, us)
}

// addMovesFrom emits a quiet or capture move per destination bit,
// depending on whether it lands on an enemy-occupied square.
func addMovesFrom(ml *MoveList, p *Position, from Square, dests, enemies Bitboard) {
	for dests != 0 {
		to := dests.PopLSB()
		if enemies&SquareBB(to) != 0 {
			ml.Add(NewCapture(from, to))
		} else {
			ml.Add(NewMove(from, to))
		}
	}
}

func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.Pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	nonPromo := push1 & ^promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		from := Square(int(to) - pushDir)
		ml.Add(NewMove(from, to))
	}

	for push2 != 0 {
		to := push2.PopLSB()
		from := Square(int(to) - 2*pushDir)
		ml.Add(NewDoublePawnPush(from, to))
	}

	nonPromoL := attackL & ^promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		from := Square(int(to) - pushDir + 1)
		ml.Add(NewCapture(from, to))
	}

	nonPromoR := attackR & ^promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		from := Square(int(to) - pushDir - 1)
		ml.Add(NewCapture(from, to))
	}

	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		from := Square(int(to) - pushDir)
		addPromotions(ml, from, to, false)
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		from := Square(int(to) - pushDir + 1)
		addPromotions(ml, from, to, true)
	}

	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		from := Square(int(to) - pushDir - 1)
		addPromotions(ml, from, to, true)
	}

	if p.EnPassant.IsValid() {
		epBB := SquareBB(p.EnPassant)
		var epAttackers Bitboard
		if us == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Add(NewEnPassant(from, p.EnPassant))
		}
	}
}

func addPromotions(ml *MoveList, from, to Square, capture bool) {
	ml.Add(NewPromotion(from, to, Queen, capture))
	ml.Add(NewPromotion(from, to, Rook, capture))
	ml.Add(NewPromotion(from, to, Bishop, capture))
	ml.Add(NewPromotion(from, to, Knight, capture))
}

func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()

	if us == White {
		if p.CastlingRights&WhiteKingSideCastle != 0 &&
			p.AllOccupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(F1, them) && !p.IsSquareAttacked(G1, them) {
			ml.Add(NewCastling(E1, G1, true))
		}
		if p.CastlingRights&WhiteQueenSideCastle != 0 &&
			p.AllOccupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(D1, them) && !p.IsSquareAttacked(C1, them) {
			ml.Add(NewCastling(E1, C1, false))
		}
		return
	}

	if p.CastlingRights&BlackKingSideCastle != 0 &&
		p.AllOccupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
		!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(F8, them) && !p.IsSquareAttacked(G8, them) {
		ml.Add(NewCastling(E8, G8, true))
	}
	if p.CastlingRights&BlackQueenSideCastle != 0 &&
		p.AllOccupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
		!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(D8, them) && !p.IsSquareAttacked(C8, them) {
		ml.Add(NewCastling(E8, C8, false))
	}
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	pseudo := p.GeneratePseudoLegalMoves()
	for i := 0; i < pseudo.Len(); i++ {
		if p.MakeMove(pseudo.Get(i)) {
			p.UndoMove()
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsDraw reports stalemate, the fifty-move rule, or insufficient
// material. Repetition is bounded-history search-level state and is
// checked separately (see internal/engine's repetition detection,
// which walks Position.History back to the last irreversible move).
func (p *Position) IsDraw() bool {
	if p.HalfMoveClock >= 100 {
		return true
	}
	if p.IsInsufficientMaterial() {
		return true
	}
	return p.IsStalemate()
}

// IsInsufficientMaterial reports whether neither side has enough force
// to deliver checkmate.
func (p *Position) IsInsufficientMaterial() bool {
	if p.Pieces[White][Pawn]|p.Pieces[Black][Pawn] != 0 ||
		p.Pieces[White][Rook]|p.Pieces[Black][Rook] != 0 ||
		p.Pieces[White][Queen]|p.Pieces[Black][Queen] != 0 {
		return false
	}

	wKnights := p.Pieces[White][Knight].PopCount()
	wBishops := p.Pieces[White][Bishop].PopCount()
	bKnights := p.Pieces[Black][Knight].PopCount()
	bBishops := p.Pieces[Black][Bishop].PopCount()

	if wKnights+wBishops+bKnights+bBishops == 0 {
		return true
	}
	if wKnights+wBishops <= 1 && bKnights+bBishops == 0 {
		return true
	}
	if bKnights+bBishops <= 1 && wKnights+wBishops == 0 {
		return true
	}
	return false
}
