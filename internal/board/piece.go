package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the kind of a chess piece, None included so it
// shares a dense range with the real piece types.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if int(pt) >= len(chars) {
		return ' '
	}
	return chars[pt]
}

// IsSlider reports whether the piece type moves along rays.
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// PieceValue holds the material value of each piece type in centipawns,
// indexed by PieceType (None is 0).
var PieceValue = [7]int{0, 100, 320, 330, 500, 900, 20000}

// pieceTypeBits is the width of the PieceType field inside a Piece. Three
// bits would be enough to hold 0..6, but the encoding uses a full nibble
// so the (piece, square) hash-index space stays a round [0,24) x [0,64)
// rather than a tightly packed [0,15).
const pieceTypeBits = 4

// Piece combines a Color and a PieceType into a single dense value,
// encoded (color << pieceTypeBits) | type. NoPiece is the White/None
// combination and is never looked up in the Zobrist tables.
type Piece uint8

const (
	WhitePawn   Piece = Piece(White)<<pieceTypeBits | Piece(Pawn)
	WhiteKnight Piece = Piece(White)<<pieceTypeBits | Piece(Knight)
	WhiteBishop Piece = Piece(White)<<pieceTypeBits | Piece(Bishop)
	WhiteRook   Piece = Piece(White)<<pieceTypeBits | Piece(Rook)
	WhiteQueen  Piece = Piece(White)<<pieceTypeBits | Piece(Queen)
	WhiteKing   Piece = Piece(White)<<pieceTypeBits | Piece(King)
	BlackPawn   Piece = Piece(Black)<<pieceTypeBits | Piece(Pawn)
	BlackKnight Piece = Piece(Black)<<pieceTypeBits | Piece(Knight)
	BlackBishop Piece = Piece(Black)<<pieceTypeBits | Piece(Bishop)
	BlackRook   Piece = Piece(Black)<<pieceTypeBits | Piece(Rook)
	BlackQueen  Piece = Piece(Black)<<pieceTypeBits | Piece(Queen)
	BlackKing   Piece = Piece(Black)<<pieceTypeBits | Piece(King)
	NoPiece     Piece = Piece(White)<<pieceTypeBits | Piece(NoPieceType)
)

// PieceCount bounds the hash-index range required of any [piece][square]
// table: valid pieces only ever occupy indices up to BlackKing, but the
// spec calls for a round 24-wide array.
const PieceCount = 24

// NewPiece creates a Piece from a PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt > King || c >= NoColor {
		return NoPiece
	}
	return Piece(c)<<pieceTypeBits | Piece(pt)
}

// Type extracts the PieceType in O(1).
func (p Piece) Type() PieceType {
	return PieceType(p & 0xF)
}

// Color extracts the Color in O(1).
func (p Piece) Color() Color {
	return Color(p >> pieceTypeBits)
}

// IsNone reports whether the value denotes the absence of a piece.
func (p Piece) IsNone() bool {
	return p.Type() == NoPieceType
}

// IsBig reports whether the piece is anything but a pawn.
func (p Piece) IsBig() bool {
	return p.Type() != NoPieceType && p.Type() != Pawn
}

// IsMajor reports whether the piece is a rook or queen.
func (p Piece) IsMajor() bool {
	return p.Type() == Rook || p.Type() == Queen
}

// IsMinor reports whether the piece is a knight or bishop.
func (p Piece) IsMinor() bool {
	return p.Type() == Knight || p.Type() == Bishop
}

// IsRookOrQueen reports whether the piece slides on ranks/files.
func (p Piece) IsRookOrQueen() bool {
	return p.Type() == Rook || p.Type() == Queen
}

// IsBishopOrQueen reports whether the piece slides on diagonals.
func (p Piece) IsBishopOrQueen() bool {
	return p.Type() == Bishop || p.Type() == Queen
}

// String returns the FEN character for the piece (uppercase for White).
func (p Piece) String() string {
	if p.IsNone() {
		return "."
	}
	c := p.Type().Char()
	if p.Color() == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Type()]
}
