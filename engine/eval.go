// Package engine provides the static evaluator and the iterative deepening
// alpha-beta searcher built on top of package chessmg.
package engine

import (
	"github.com/121yaseen/westworld/chessmg"
)

// Game phase weights. A full opening position sums to TotalPhase and the
// evaluation is blended between middlegame and endgame values accordingly.
const (
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4
	totalPhase  = 4*knightPhase + 4*bishopPhase + 4*rookPhase + 2*queenPhase
)

// Tapered piece values in centipawns, indexed by chessmg.PieceType.
var (
	pieceValueMG = [7]int32{chessmg.Pawn: 88, chessmg.Knight: 316, chessmg.Bishop: 331, chessmg.Rook: 494, chessmg.Queen: 993}
	pieceValueEG = [7]int32{chessmg.Pawn: 112, chessmg.Knight: 294, chessmg.Bishop: 320, chessmg.Rook: 542, chessmg.Queen: 940}
)

const (
	bishopPairMG = 26
	bishopPairEG = 48
)

// PieceValue returns the middlegame value of a piece type, exposed for move
// ordering and material displays.
func PieceValue(t chessmg.PieceType) int32 { return pieceValueMG[t] }

func phase(b *chessmg.Board) int32 {
	ph := int32(0)
	for c := chessmg.White; c <= chessmg.Black; c++ {
		ph += int32(count(b, c, chessmg.Knight)) * knightPhase
		ph += int32(count(b, c, chessmg.Bishop)) * bishopPhase
		ph += int32(count(b, c, chessmg.Rook)) * rookPhase
		ph += int32(count(b, c, chessmg.Queen)) * queenPhase
	}
	if ph > totalPhase {
		ph = totalPhase
	}
	return ph
}

func count(b *chessmg.Board, c chessmg.Color, t chessmg.PieceType) int {
	bb := b.PieceBB(c, t)
	n := 0
	for bb != 0 {
		bb &= bb - 1
		n++
	}
	return n
}

// Evaluate scores the position in centipawns from the side to move's
// perspective. It is a pure function of the position: material tapered by
// game phase plus the bishop pair, so the score only changes across captures
// and promotions. Terminal positions are the searcher's job, not the
// evaluator's.
func Evaluate(b *chessmg.Board) int32 {
	var mg, eg [2]int32
	for c := chessmg.White; c <= chessmg.Black; c++ {
		for t := chessmg.Pawn; t <= chessmg.Queen; t++ {
			n := int32(count(b, c, t))
			mg[c] += n * pieceValueMG[t]
			eg[c] += n * pieceValueEG[t]
		}
		if count(b, c, chessmg.Bishop) >= 2 {
			mg[c] += bishopPairMG
			eg[c] += bishopPairEG
		}
	}

	ph := phase(b)
	mgScore := mg[chessmg.White] - mg[chessmg.Black]
	egScore := eg[chessmg.White] - eg[chessmg.Black]
	score := (mgScore*ph + egScore*(totalPhase-ph)) / totalPhase

	if b.Turn() == chessmg.Black {
		return -score
	}
	return score
}
