package board

// Perft counts leaf nodes at depth below p, the standard move-generation
// correctness check. It mutates and restores p via MakeMove/UndoMove.
func Perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !p.MakeMove(m) {
			continue
		}
		nodes += Perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// DividePerft breaks a perft count down per root move, the standard
// "perft divide" used to localize a move generator bug against a known
// reference tool.
func DividePerft(p *Position, depth int) map[string]int64 {
	result := make(map[string]int64)
	if depth < 1 {
		return result
	}

	moves := p.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !p.MakeMove(m) {
			continue
		}
		result[m.String()] = Perft(p, depth-1)
		p.UndoMove()
	}
	return result
}
