package chessmg

import "math/rand"

// Zobrist keys are drawn from a fixed-seed generator so hashes are stable
// across runs and across processes.
var (
	zobristPiece     [2][7][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5EEDBEEF))
	for c := 0; c < 2; c++ {
		for t := Pawn; t <= King; t++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][t][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rng.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.Uint64()
	}
	zobristSide = rng.Uint64()
}

// computeKey rebuilds the zobrist key from scratch. Used when a position is
// set up wholesale; incremental updates keep it current afterwards.
func (b *Board) computeKey() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			key ^= zobristPiece[p.Color()][p.Type()][sq]
		}
	}
	key ^= zobristCastle[b.castling]
	if b.epSquare != NoSquare {
		key ^= zobristEnPassant[b.epSquare.File()]
	}
	if b.turn == Black {
		key ^= zobristSide
	}
	return key
}
