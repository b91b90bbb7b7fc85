package chessmg

// Status classifies a position for the side to move.
type Status uint8

const (
	StatusOngoing Status = iota
	StatusCheckmate
	StatusStalemate
	StatusInsufficientMaterial
)

func (s Status) String() string {
	switch s {
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusInsufficientMaterial:
		return "insufficient material"
	default:
		return "ongoing"
	}
}

const lightSquares uint64 = 0x55AA55AA55AA55AA

// Status reports whether the game is over and, for checkmate, who won.
// The winner is only meaningful when the status is StatusCheckmate.
func (b *Board) Status() (Status, Color) {
	if !b.HasLegalMoves() {
		if b.InCheck(b.turn) {
			return StatusCheckmate, b.turn.Other()
		}
		return StatusStalemate, White
	}
	if b.InsufficientMaterial() {
		return StatusInsufficientMaterial, White
	}
	return StatusOngoing, White
}

// InsufficientMaterial reports whether neither side retains mating material:
// bare kings, a lone minor piece, or bishops confined to one square color.
func (b *Board) InsufficientMaterial() bool {
	for c := White; c <= Black; c++ {
		if b.pieceBB[c][Pawn]|b.pieceBB[c][Rook]|b.pieceBB[c][Queen] != 0 {
			return false
		}
	}
	knights := b.pieceBB[White][Knight] | b.pieceBB[Black][Knight]
	bishops := b.pieceBB[White][Bishop] | b.pieceBB[Black][Bishop]
	if knights == 0 {
		if bishops == 0 {
			return true
		}
		return bishops&lightSquares == 0 || bishops&^lightSquares == 0
	}
	return bishops == 0 && knights&(knights-1) == 0
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached 100 plies.
func (b *Board) IsFiftyMoveDraw() bool { return b.halfmove >= 100 }

// IsRepetition reports whether the current position is a threefold
// repetition: it must appear at least twice in the given hash history of
// earlier positions (most recent last).
func (b *Board) IsRepetition(history []uint64) bool {
	seen := 0
	for i := len(history) - 2; i >= 0; i -= 2 {
		if history[i] == b.key {
			seen++
			if seen >= 2 {
				return true
			}
		}
	}
	return false
}
