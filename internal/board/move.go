package board

import "fmt"

// Move encodes a chess move in 16 bits:
//
//	bits 0-5:   destination square (0-63)
//	bits 6-11:  origin square (0-63)
//	bits 12-15: flags
//
// Flags are the classic 4-bit encoding where bit 3 marks a promotion and
// bit 2 marks a capture; a promotion-with-capture is the OR of a plain
// promotion flag and the Capture bit.
type Move uint16

// Move flags.
const (
	FlagQuiet          uint16 = 0
	FlagDoublePawnPush uint16 = 1
	FlagKingCastle     uint16 = 2
	FlagQueenCastle    uint16 = 3
	FlagCapture        uint16 = 4
	FlagEpCapture      uint16 = 5
	FlagKnightPromo    uint16 = 8
	FlagBishopPromo    uint16 = 9
	FlagRookPromo      uint16 = 10
	FlagQueenPromo     uint16 = 11
)

const (
	flagPromoBit   uint16 = 8
	flagCaptureBit uint16 = 4
	flagPromoMask  uint16 = 3 // low two bits select the promotion piece
)

// NoMove / NULLMV represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a plain quiet move.
func NewMove(from, to Square) Move {
	return encode(from, to, FlagQuiet)
}

// NewCapture creates a non-special capture.
func NewCapture(from, to Square) Move {
	return encode(from, to, FlagCapture)
}

// NewDoublePawnPush creates a two-square pawn advance.
func NewDoublePawnPush(from, to Square) Move {
	return encode(from, to, FlagDoublePawnPush)
}

// NewPromotion creates a promotion move, OR-ing in the capture bit when
// capture is true to produce one of the four promotion-with-capture flags.
func NewPromotion(from, to Square, promo PieceType, capture bool) Move {
	flag := flagPromoBit | promoFlagBits(promo)
	if capture {
		flag |= flagCaptureBit
	}
	return encode(from, to, flag)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return encode(from, to, FlagEpCapture)
}

// NewCastling creates a castling move (the king's movement only).
func NewCastling(from, to Square, kingside bool) Move {
	if kingside {
		return encode(from, to, FlagKingCastle)
	}
	return encode(from, to, FlagQueenCastle)
}

func encode(from, to Square, flag uint16) Move {
	return Move(to&0x3F) | Move(from&0x3F)<<6 | Move(flag)<<12
}

func promoFlagBits(pt PieceType) uint16 {
	switch pt {
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default:
		return 0 // Knight
	}
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & 0x3F)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> 6) & 0x3F)
}

// Flag returns the raw 4-bit flag.
func (m Move) Flag() uint16 {
	return uint16(m>>12) & 0xF
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag()&flagPromoBit != 0
}

// IsCapture reports whether the flag itself encodes a capture: ordinary
// captures, en-passant, and promotion-with-capture. This does not consult
// the board, unlike the teacher's board-dependent IsCapture.
func (m Move) IsCapture() bool {
	f := m.Flag()
	if f == FlagEpCapture {
		return true
	}
	return f&flagCaptureBit != 0 && f != FlagKingCastle && f != FlagQueenCastle
}

// IsEnPassant reports whether this move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEpCapture
}

// IsCastling reports whether this move is a king- or queen-side castle.
func (m Move) IsCastling() bool {
	return m.Flag() == FlagKingCastle || m.Flag() == FlagQueenCastle
}

// IsKingsideCastle reports whether this move castles short.
func (m Move) IsKingsideCastle() bool {
	return m.Flag() == FlagKingCastle
}

// IsDoublePawnPush reports whether this move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == FlagDoublePawnPush
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// Promotion returns the promotion piece type; only meaningful when
// IsPromotion() is true.
func (m Move) Promotion() PieceType {
	switch m.Flag() & flagPromoMask {
	case 1:
		return Bishop
	case 2:
		return Rook
	case 3:
		return Queen
	default:
		return Knight
	}
}

// String returns the UCI long-algebraic form (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		promoChars := []byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[m.Flag()&flagPromoMask])
	}
	return s
}

// ParseMove parses a UCI long-algebraic move string against pos to
// recover the special-move flags (castling, en passant, promotion).
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	piece := pos.PieceAt(from)
	if piece.IsNone() {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}
	pt := piece.Type()
	capture := !pos.IsEmpty(to)

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo, capture), nil
	}

	if pt == King && abs(int(to)-int(from)) == 2 {
		return NewCastling(from, to, to.File() == 6), nil
	}
	if pt == Pawn && to == pos.EnPassant && pos.EnPassant.IsValid() {
		return NewEnPassant(from, to), nil
	}
	if pt == Pawn && abs(to.Rank()-from.Rank()) == 2 {
		return NewDoublePawnPush(from, to), nil
	}
	if capture {
		return NewCapture(from, to), nil
	}
	return NewMove(from, to), nil
}

// MoveList is a fixed-size list of moves to avoid allocation during
// generation.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set overwrites the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap exchanges two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves currently held, aliasing the backing array.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
