package chessmg

// Move generation runs in two stages: PseudoLegalMoves emits every move that
// obeys piece movement rules, then LegalMoves filters out the ones that leave
// the mover's king attacked by trying each with MakeMove. Castling is the
// exception and is fully validated at generation time since its legality
// involves transit squares, not just the destination.
//
// Generation order is fixed: pawns, knights, bishops, rooks, queens, king,
// castling, each piece scanned from a1 toward h8. Callers may rely on the
// order being deterministic for a given position.

// PseudoLegalMoves appends every pseudo-legal move for the side to move onto
// buf and returns the extended slice.
func (b *Board) PseudoLegalMoves(buf []Move) []Move {
	moves := buf[:0]
	us := b.turn
	them := us.Other()
	own := b.occupied[us]
	opp := b.occupied[them]
	all := own | opp

	moves = b.pawnMoves(moves, us, them, opp, all)

	knight := MakePiece(us, Knight)
	for bb := b.pieceBB[us][Knight]; bb != 0; {
		from := popLSB(&bb)
		moves = b.appendTargets(moves, from, knight, knightAttacks[from]&^own)
	}
	bishop := MakePiece(us, Bishop)
	for bb := b.pieceBB[us][Bishop]; bb != 0; {
		from := popLSB(&bb)
		moves = b.appendTargets(moves, from, bishop, BishopAttacks(from, all)&^own)
	}
	rook := MakePiece(us, Rook)
	for bb := b.pieceBB[us][Rook]; bb != 0; {
		from := popLSB(&bb)
		moves = b.appendTargets(moves, from, rook, RookAttacks(from, all)&^own)
	}
	queen := MakePiece(us, Queen)
	for bb := b.pieceBB[us][Queen]; bb != 0; {
		from := popLSB(&bb)
		moves = b.appendTargets(moves, from, queen, QueenAttacks(from, all)&^own)
	}

	kingSq := b.KingSquare(us)
	moves = b.appendTargets(moves, kingSq, MakePiece(us, King), kingAttacks[kingSq]&^own)
	moves = b.castleMoves(moves, us, all)

	return moves
}

func (b *Board) appendTargets(moves []Move, from Square, piece Piece, targets uint64) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		moves = append(moves, NewMove(from, to, piece, b.squares[to], NoPiece, FlagQuiet))
	}
	return moves
}

func (b *Board) pawnMoves(moves []Move, us, them Color, opp, all uint64) []Move {
	dir := Square(8)
	startRank, promoRank := 1, 7
	if us == Black {
		dir = -8
		startRank, promoRank = 6, 0
	}
	pawn := MakePiece(us, Pawn)

	for bb := b.pieceBB[us][Pawn]; bb != 0; {
		from := popLSB(&bb)

		to := from + dir
		if all&(1<<uint(to)) == 0 {
			if to.Rank() == promoRank {
				moves = appendPromotions(moves, from, to, pawn, NoPiece, us)
			} else {
				moves = append(moves, NewMove(from, to, pawn, NoPiece, NoPiece, FlagQuiet))
				if from.Rank() == startRank {
					if jump := to + dir; all&(1<<uint(jump)) == 0 {
						moves = append(moves, NewMove(from, jump, pawn, NoPiece, NoPiece, FlagDoublePush))
					}
				}
			}
		}

		for caps := pawnCaptures[us][from] & opp; caps != 0; {
			to := popLSB(&caps)
			victim := b.squares[to]
			if to.Rank() == promoRank {
				moves = appendPromotions(moves, from, to, pawn, victim, us)
			} else {
				moves = append(moves, NewMove(from, to, pawn, victim, NoPiece, FlagQuiet))
			}
		}

		if b.epSquare != NoSquare && pawnCaptures[us][from]&(1<<uint(b.epSquare)) != 0 {
			moves = append(moves, NewMove(from, b.epSquare, pawn, MakePiece(them, Pawn), NoPiece, FlagEnPassant))
		}
	}
	return moves
}

func appendPromotions(moves []Move, from, to Square, pawn, victim Piece, us Color) []Move {
	for _, t := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		moves = append(moves, NewMove(from, to, pawn, victim, MakePiece(us, t), FlagQuiet))
	}
	return moves
}

func (b *Board) castleMoves(moves []Move, us Color, all uint64) []Move {
	type castle struct {
		right    CastlingRights
		kingFrom Square
		kingTo   Square
		rookFrom Square
		empty    uint64 // squares between king and rook
		transit  Square // square the king passes through
	}
	var sides [2]castle
	if us == White {
		sides = [2]castle{
			{CastleWhiteKing, 4, 6, 7, 1<<5 | 1<<6, 5},
			{CastleWhiteQueen, 4, 2, 0, 1<<1 | 1<<2 | 1<<3, 3},
		}
	} else {
		sides = [2]castle{
			{CastleBlackKing, 60, 62, 63, 1<<61 | 1<<62, 61},
			{CastleBlackQueen, 60, 58, 56, 1<<57 | 1<<58 | 1<<59, 59},
		}
	}
	them := us.Other()
	for _, c := range sides {
		if b.castling&c.right == 0 || all&c.empty != 0 {
			continue
		}
		if b.attacked(c.kingFrom, them, all) ||
			b.attacked(c.transit, them, all) ||
			b.attacked(c.kingTo, them, all) {
			continue
		}
		moves = append(moves, NewMove(c.kingFrom, c.kingTo, MakePiece(us, King), NoPiece, NoPiece, FlagCastle))
	}
	return moves
}

// LegalMovesInto writes the legal moves for the side to move into buf,
// reusing its backing array, and returns the result.
func (b *Board) LegalMovesInto(buf []Move) []Move {
	pseudo := b.PseudoLegalMoves(buf)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves returns the legal moves for the side to move in a fresh slice.
func (b *Board) LegalMoves() []Move {
	return b.LegalMovesInto(make([]Move, 0, 48))
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool {
	var buf [128]Move
	for _, m := range b.PseudoLegalMoves(buf[:0]) {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			return true
		}
	}
	return false
}
