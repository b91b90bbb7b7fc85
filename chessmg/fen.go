package chessmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartPos is the standard initial position in FEN.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidPosition is wrapped by every ParseFEN failure, so callers can
// match the whole family with errors.Is.
var ErrInvalidPosition = errors.New("invalid position")

func fenErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPosition, fmt.Sprintf(format, args...))
}

var fenPieces = map[byte]Piece{
	'P': MakePiece(White, Pawn), 'N': MakePiece(White, Knight),
	'B': MakePiece(White, Bishop), 'R': MakePiece(White, Rook),
	'Q': MakePiece(White, Queen), 'K': MakePiece(White, King),
	'p': MakePiece(Black, Pawn), 'n': MakePiece(Black, Knight),
	'b': MakePiece(Black, Bishop), 'r': MakePiece(Black, Rook),
	'q': MakePiece(Black, Queen), 'k': MakePiece(Black, King),
}

// ParseFEN builds a board from a six-field FEN record. Structural problems
// such as malformed fields, missing or duplicated kings, or pawns on a back
// rank are rejected with an error wrapping ErrInvalidPosition.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) != 6 {
		return nil, fenErr("expected 6 fields, got %d", len(fields))
	}

	b := &Board{epSquare: NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenErr("expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		lastWasDigit := false
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				if lastWasDigit {
					return nil, fenErr("rank %d has consecutive digits", rank+1)
				}
				file += int(ch - '0')
				lastWasDigit = true
				continue
			}
			lastWasDigit = false
			p, ok := fenPieces[ch]
			if !ok {
				return nil, fenErr("bad piece character %q", ch)
			}
			if file > 7 {
				return nil, fenErr("rank %d overflows", rank+1)
			}
			sq := SquareOf(file, rank)
			bit := uint64(1) << uint(sq)
			b.pieceBB[p.Color()][p.Type()] |= bit
			b.occupied[p.Color()] |= bit
			b.squares[sq] = p
			file++
		}
		if file != 8 {
			return nil, fenErr("rank %d has %d files", rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return nil, fenErr("bad side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				b.castling |= CastleWhiteKing
			case 'Q':
				b.castling |= CastleWhiteQueen
			case 'k':
				b.castling |= CastleBlackKing
			case 'q':
				b.castling |= CastleBlackQueen
			default:
				return nil, fenErr("bad castling character %q", fields[2][i])
			}
		}
	}

	if fields[3] != "-" {
		ep, ok := ParseSquare(fields[3])
		if !ok {
			return nil, fenErr("bad en passant square %q", fields[3])
		}
		want := 5
		if b.turn == Black {
			want = 2
		}
		if ep.Rank() != want {
			return nil, fenErr("en passant square %s on wrong rank", ep)
		}
		b.epSquare = ep
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fenErr("bad halfmove clock %q", fields[4])
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fenErr("bad fullmove number %q", fields[5])
	}
	b.halfmove, b.fullmove = halfmove, fullmove

	if err := b.validate(); err != nil {
		return nil, err
	}
	b.key = b.computeKey()
	return b, nil
}

func (b *Board) validate() error {
	for c := White; c <= Black; c++ {
		if n := popCount(b.pieceBB[c][King]); n != 1 {
			return fenErr("%s has %d kings", c, n)
		}
	}
	const backRanks = 0xFF000000000000FF
	if (b.pieceBB[White][Pawn]|b.pieceBB[Black][Pawn])&backRanks != 0 {
		return fenErr("pawn on a back rank")
	}
	// A position where the side not to move is already in check is unreachable.
	if b.attacked(b.KingSquare(b.turn.Other()), b.turn, b.AllOccupied()) {
		return fenErr("%s king capturable", b.turn.Other())
	}
	return nil
}

// MustParseFEN is ParseFEN that panics on error, for fixed positions.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoard returns the standard initial position.
func NewBoard() *Board {
	return MustParseFEN(StartPos)
}

// ToFEN renders the position as a six-field FEN record.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[SquareOf(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		for _, c := range []struct {
			right CastlingRights
			ch    byte
		}{
			{CastleWhiteKing, 'K'}, {CastleWhiteQueen, 'Q'},
			{CastleBlackKing, 'k'}, {CastleBlackQueen, 'q'},
		} {
			if b.castling&c.right != 0 {
				sb.WriteByte(c.ch)
			}
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}
