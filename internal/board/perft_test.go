package board

import "testing"

func TestPerftStartingPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN, nil)
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if testing.Short() && tc.depth > 4 {
				t.Skip("skipping deep perft in short mode")
			}
			got := Perft(pos, tc.depth)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
			if len(pos.History) != 0 {
				t.Errorf("history not fully unwound, len=%d", len(pos.History))
			}
		})
	}
}

// TestPerftKiwipete exercises castling, promotions, and heavy tactics.
// FEN: r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -
func TestPerftKiwipete(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", nil)
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
		{4, 4085603},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if testing.Short() && tc.depth > 3 {
				t.Skip("skipping deep perft in short mode")
			}
			got := Perft(pos, tc.depth)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftPosition3 exercises en-passant and pawn-endgame edge cases.
// FEN: 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -
func TestPerftPosition3(t *testing.T) {
	pos, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", nil)
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
		{5, 674624},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if testing.Short() && tc.depth > 4 {
				t.Skip("skipping deep perft in short mode")
			}
			got := Perft(pos, tc.depth)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftEnPassantPin covers the horizontal-pin edge case: a pawn that
// could capture en passant but would expose its own king to a rook on
// the same rank.
// FEN: 8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1", nil)
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.IsEnPassant() {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
		}
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tc.depth)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestDividePerft checks that the per-root-move breakdown sums to the
// same total perft would report.
func TestDividePerft(t *testing.T) {
	pos, err := ParseFEN(StartFEN, nil)
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	div := DividePerft(pos, 3)
	var sum int64
	for _, n := range div {
		sum += n
	}
	if sum != 8902 {
		t.Errorf("divide perft sum = %d, want 8902", sum)
	}
	if len(div) != 20 {
		t.Errorf("divide perft root move count = %d, want 20", len(div))
	}
}
