package chessmg

// MoveState captures everything MakeMove cannot reconstruct from the move
// itself. UnmakeMove needs the state returned by the matching MakeMove call.
type MoveState struct {
	castling CastlingRights
	epSquare Square
	halfmove int
	fullmove int
	key      uint64
}

// castleRightsLost maps a square to the rights that vanish when a piece moves
// from or to it. Covers king moves, rook moves and rook captures.
var castleRightsLost = [64]CastlingRights{
	0:  CastleWhiteQueen,
	4:  CastleWhiteKing | CastleWhiteQueen,
	7:  CastleWhiteKing,
	56: CastleBlackQueen,
	60: CastleBlackKing | CastleBlackQueen,
	63: CastleBlackKing,
}

// rookCastleSquares returns the rook's from and to squares for a castle move
// identified by the king's destination.
func rookCastleSquares(c Color, kingTo Square) (Square, Square) {
	switch {
	case c == White && kingTo == 6: // g1
		return 7, 5
	case c == White && kingTo == 2: // c1
		return 0, 3
	case c == Black && kingTo == 62: // g8
		return 63, 61
	default: // c8
		return 56, 59
	}
}

// MakeMove applies a pseudo-legal move. When the move would leave the mover's
// king attacked it is unwound in place and MakeMove returns false with the
// board unchanged. On success the returned state feeds UnmakeMove.
func (b *Board) MakeMove(m Move) (bool, MoveState) {
	st := MoveState{
		castling: b.castling,
		epSquare: b.epSquare,
		halfmove: b.halfmove,
		fullmove: b.fullmove,
		key:      b.key,
	}
	us := b.turn
	from, to := m.From(), m.To()

	if b.epSquare != NoSquare {
		b.key ^= zobristEnPassant[b.epSquare.File()]
		b.epSquare = NoSquare
	}

	switch m.Flag() {
	case FlagEnPassant:
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		b.lift(capSq)
	case FlagCastle:
		rookFrom, rookTo := rookCastleSquares(us, to)
		rook := b.lift(rookFrom)
		b.put(rookTo, rook)
	default:
		if m.Captured() != NoPiece {
			b.lift(to)
		}
	}

	b.lift(from)
	if promo := m.Promotion(); promo != NoPiece {
		b.put(to, promo)
	} else {
		b.put(to, m.Piece())
	}

	if lost := castleRightsLost[from] | castleRightsLost[to]; b.castling&lost != 0 {
		b.key ^= zobristCastle[b.castling]
		b.castling &^= lost
		b.key ^= zobristCastle[b.castling]
	}

	if m.Flag() == FlagDoublePush {
		ep := (from + to) / 2
		b.epSquare = ep
		b.key ^= zobristEnPassant[ep.File()]
	}

	if m.Piece().Type() == Pawn || m.IsCapture() {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}
	b.turn = us.Other()
	b.key ^= zobristSide

	if b.InCheck(us) {
		b.UnmakeMove(m, st)
		return false, st
	}
	return true, st
}

// UnmakeMove reverses a move made by MakeMove, restoring the exact prior
// position including clocks and hash.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	us := b.turn.Other()
	from, to := m.From(), m.To()

	b.lift(to)
	b.put(from, m.Piece())

	switch m.Flag() {
	case FlagEnPassant:
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		b.put(capSq, m.Captured())
	case FlagCastle:
		rookFrom, rookTo := rookCastleSquares(us, to)
		rook := b.lift(rookTo)
		b.put(rookFrom, rook)
	default:
		if m.Captured() != NoPiece {
			b.put(to, m.Captured())
		}
	}

	b.turn = us
	b.castling = st.castling
	b.epSquare = st.epSquare
	b.halfmove = st.halfmove
	b.fullmove = st.fullmove
	b.key = st.key
}
