package chessmg

// Move packs everything needed to make and unmake a move into 32 bits:
//
//	bits  0-5   from square
//	bits  6-11  to square
//	bits 12-15  moving piece
//	bits 16-19  captured piece (NoPiece when quiet)
//	bits 20-23  promotion piece (NoPiece when none)
//	bits 24-25  move flag
//
// The zero Move is not a legal move and doubles as a "no move" sentinel.
type Move uint32

// Move flags. En passant moves carry the captured pawn in the captured field
// even though the target square is empty.
const (
	FlagQuiet uint32 = iota
	FlagCastle
	FlagEnPassant
	FlagDoublePush
)

// NewMove assembles a move. Captured and promo may be NoPiece.
func NewMove(from, to Square, piece, captured, promo Piece, flag uint32) Move {
	return Move(uint32(from) |
		uint32(to)<<6 |
		uint32(piece)<<12 |
		uint32(captured)<<16 |
		uint32(promo)<<20 |
		flag<<24)
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square(m >> 6 & 0x3F) }

// Piece returns the moving piece.
func (m Move) Piece() Piece { return Piece(m >> 12 & 0xF) }

// Captured returns the captured piece, or NoPiece.
func (m Move) Captured() Piece { return Piece(m >> 16 & 0xF) }

// Promotion returns the promotion piece, or NoPiece.
func (m Move) Promotion() Piece { return Piece(m >> 20 & 0xF) }

// Flag returns the move flag.
func (m Move) Flag() uint32 { return uint32(m) >> 24 & 3 }

// IsCapture reports whether the move takes a piece, en passant included.
func (m Move) IsCapture() bool { return m.Captured() != NoPiece }

// IsKingsideCastle reports whether the move is a short castle.
func (m Move) IsKingsideCastle() bool { return m.Flag() == FlagCastle && m.To().File() == 6 }

// IsQueensideCastle reports whether the move is a long castle.
func (m Move) IsQueensideCastle() bool { return m.Flag() == FlagCastle && m.To().File() == 2 }

var promoLetters = map[PieceType]string{Knight: "n", Bishop: "b", Rook: "r", Queen: "q"}

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == 0 {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p != NoPiece {
		s += promoLetters[p.Type()]
	}
	return s
}

// ParseMove reads coordinate notation into its from, to and promotion parts.
// It does not consult a position, so the result still has to be matched
// against the legal moves of some board.
func ParseMove(str string) (from, to Square, promo PieceType, ok bool) {
	if len(str) < 4 || len(str) > 5 {
		return NoSquare, NoSquare, NoPieceType, false
	}
	from, ok = ParseSquare(str[0:2])
	if !ok {
		return NoSquare, NoSquare, NoPieceType, false
	}
	to, ok = ParseSquare(str[2:4])
	if !ok {
		return NoSquare, NoSquare, NoPieceType, false
	}
	if len(str) == 5 {
		switch str[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoSquare, NoSquare, NoPieceType, false
		}
	}
	return from, to, promo, true
}

// ResolveMove matches coordinate notation against the legal moves of b.
// The second result is false when the string is malformed or names no legal
// move in the position.
func ResolveMove(b *Board, str string) (Move, bool) {
	from, to, promo, ok := ParseMove(str)
	if !ok {
		return 0, false
	}
	for _, m := range b.LegalMoves() {
		if m.From() == from && m.To() == to && m.Promotion().Type() == promo {
			return m, true
		}
	}
	return 0, false
}
