// Package chessmg implements a bitboard chess board with full legal move
// generation, FEN parsing, zobrist hashing and perft counting.
package chessmg

import (
	"math/bits"
	"strconv"
)

// Color of a side. White moves first.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType identifies a kind of piece independent of color.
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

// Piece packs a color and a piece type into one byte. The type lives in the
// low three bits and bit three is set for black pieces, so NoPiece is zero.
type Piece uint8

const NoPiece Piece = 0

// MakePiece builds a Piece from a color and type.
func MakePiece(c Color, t PieceType) Piece {
	if t == NoPieceType {
		return NoPiece
	}
	return Piece(t) | Piece(c)<<3
}

// Type returns the piece type, or NoPieceType for NoPiece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the owning side. Only meaningful when p != NoPiece.
func (p Piece) Color() Color { return Color(p >> 3) }

var pieceRunes = map[Piece]rune{
	MakePiece(White, Pawn): 'P', MakePiece(White, Knight): 'N',
	MakePiece(White, Bishop): 'B', MakePiece(White, Rook): 'R',
	MakePiece(White, Queen): 'Q', MakePiece(White, King): 'K',
	MakePiece(Black, Pawn): 'p', MakePiece(Black, Knight): 'n',
	MakePiece(Black, Bishop): 'b', MakePiece(Black, Rook): 'r',
	MakePiece(Black, Queen): 'q', MakePiece(Black, King): 'k',
}

func (p Piece) String() string {
	if r, ok := pieceRunes[p]; ok {
		return string(r)
	}
	return "."
}

// Square indexes the board from a1 = 0 to h8 = 63, file-major within a rank.
type Square int

const NoSquare Square = -1

// SquareOf builds a square from zero-based file and rank.
func SquareOf(file, rank int) Square { return Square(rank*8 + file) }

// File returns the zero-based file (a = 0).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the zero-based rank (rank 1 = 0).
func (s Square) Rank() int { return int(s) >> 3 }

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string(rune('a'+s.File())) + strconv.Itoa(s.Rank()+1)
}

// ParseSquare reads coordinate notation like "e4".
func ParseSquare(str string) (Square, bool) {
	if len(str) != 2 || str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return NoSquare, false
	}
	return SquareOf(int(str[0]-'a'), int(str[1]-'1')), true
}

// CastlingRights is a bit set of the four castling permissions.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// Board holds a full position. Piece placement is kept redundantly as
// per-color per-type bitboards plus a square-indexed mailbox, and the zobrist
// key is maintained incrementally by every mutation.
type Board struct {
	pieceBB  [2][7]uint64
	occupied [2]uint64
	squares  [64]Piece

	turn     Color
	castling CastlingRights
	epSquare Square
	halfmove int
	fullmove int
	key      uint64
}

// Turn returns the side to move.
func (b *Board) Turn() Color { return b.turn }

// Castling returns the remaining castling rights.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassant returns the en passant target square, or NoSquare.
func (b *Board) EnPassant() Square { return b.epSquare }

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the move counter starting at 1.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Hash returns the zobrist key of the position.
func (b *Board) Hash() uint64 { return b.key }

// PieceAt returns the piece on sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// OccupiedBy returns the occupancy bitboard of one side.
func (b *Board) OccupiedBy(c Color) uint64 { return b.occupied[c] }

// AllOccupied returns the combined occupancy bitboard.
func (b *Board) AllOccupied() uint64 { return b.occupied[White] | b.occupied[Black] }

// PieceBB returns the bitboard of one piece kind for one side.
func (b *Board) PieceBB(c Color, t PieceType) uint64 { return b.pieceBB[c][t] }

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square {
	return Square(bits.TrailingZeros64(b.pieceBB[c][King]))
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// put places p on an empty square and updates bitboards and the zobrist key.
func (b *Board) put(sq Square, p Piece) {
	bit := uint64(1) << uint(sq)
	c, t := p.Color(), p.Type()
	b.pieceBB[c][t] |= bit
	b.occupied[c] |= bit
	b.squares[sq] = p
	b.key ^= zobristPiece[c][t][sq]
}

// lift removes and returns the piece on sq.
func (b *Board) lift(sq Square) Piece {
	p := b.squares[sq]
	bit := uint64(1) << uint(sq)
	c, t := p.Color(), p.Type()
	b.pieceBB[c][t] &^= bit
	b.occupied[c] &^= bit
	b.squares[sq] = NoPiece
	b.key ^= zobristPiece[c][t][sq]
	return p
}

func popLSB(bb *uint64) Square {
	sq := bits.TrailingZeros64(*bb)
	*bb &= *bb - 1
	return Square(sq)
}

func popCount(bb uint64) int { return bits.OnesCount64(bb) }

// String renders the board as an eight-rank diagram with rank and file labels,
// white at the bottom.
func (b *Board) String() string {
	var sb []byte
	for rank := 7; rank >= 0; rank-- {
		sb = append(sb, byte('1'+rank), ' ')
		for file := 0; file < 8; file++ {
			p := b.squares[SquareOf(file, rank)]
			sb = append(sb, ' ', byte(p.String()[0]))
		}
		sb = append(sb, '\n')
	}
	sb = append(sb, []byte("   a b c d e f g h\n")...)
	return string(sb)
}
