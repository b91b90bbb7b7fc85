package engine

import "github.com/121yaseen/westworld/chessmg"

// Move ordering bonuses. The bands are disjoint: hash move first, then
// promotions, captures by most-valuable-victim least-valuable-attacker,
// killers, and finally quiets by history and placement gain.
const (
	hashMoveBonus  int32 = 1 << 22
	promotionBonus int32 = 1 << 21
	captureBonus   int32 = 1 << 20
	killerBonus    int32 = 1 << 19
	quietBase      int32 = 0
)

// mvvLva is indexed [victim][attacker]; bigger is better for the mover.
var mvvLva [7][7]int32

func init() {
	order := [7]int32{chessmg.Pawn: 1, chessmg.Knight: 2, chessmg.Bishop: 3, chessmg.Rook: 4, chessmg.Queen: 5, chessmg.King: 6}
	for victim := chessmg.Pawn; victim <= chessmg.Queen; victim++ {
		for attacker := chessmg.Pawn; attacker <= chessmg.King; attacker++ {
			mvvLva[victim][attacker] = order[victim]*64 - order[attacker]
		}
	}
}

type scoredMove struct {
	move  chessmg.Move
	score int32
}

// scoreMoves tags each move with its ordering score. Ordering only affects
// how fast alpha-beta prunes, never which move or score it settles on.
func (s *Searcher) scoreMoves(b *chessmg.Board, moves []chessmg.Move, ply int, hashMove chessmg.Move) []scoredMove {
	scored := s.scratch(ply, len(moves))
	turn := b.Turn()
	for i, m := range moves {
		var score int32
		switch {
		case m == hashMove:
			score = hashMoveBonus
		case m.Promotion() != chessmg.NoPiece:
			score = promotionBonus + pieceValueMG[m.Promotion().Type()]
			if m.IsCapture() {
				score += mvvLva[m.Captured().Type()][m.Piece().Type()]
			}
		case m.IsCapture():
			score = captureBonus + mvvLva[m.Captured().Type()][m.Piece().Type()]
		default:
			if slot := s.killers.slot(ply, m); slot >= 0 {
				score = killerBonus - int32(slot)
			} else {
				score = quietBase + s.history.score(turn, m) + psqtDelta(m)
			}
		}
		scored[i] = scoredMove{move: m, score: score}
	}
	return scored
}

// pickNext selection-sorts lazily: it swaps the best remaining move into
// position i and returns it. Cheaper than a full sort when cutoffs are early.
func pickNext(scored []scoredMove, i int) chessmg.Move {
	best := i
	for j := i + 1; j < len(scored); j++ {
		if scored[j].score > scored[best].score {
			best = j
		}
	}
	scored[i], scored[best] = scored[best], scored[i]
	return scored[i].move
}
