package chessmg

import "math/bits"

// Precomputed attack tables. Sliding attacks are resolved at query time by
// clipping a full ray at its first blocker.
var (
	knightAttacks [64]uint64
	kingAttacks   [64]uint64
	pawnCaptures  [2][64]uint64

	rookRays   [64][4]uint64
	bishopRays [64][4]uint64
)

// Ray direction order mirrors the table layout: a true entry means the ray
// runs toward higher square indices, so the first blocker is the lowest bit.
var (
	rookForward   = [4]bool{true, false, true, false}  // N, S, E, W
	bishopForward = [4]bool{true, true, false, false}  // NE, NW, SE, SW
)

func init() {
	rookDirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs := [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	for sq := 0; sq < 64; sq++ {
		rank, file := sq>>3, sq&7

		for _, d := range [][2]int{
			{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
			{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
		} {
			knightAttacks[sq] |= squareBit(rank+d[0], file+d[1])
		}
		for dr := -1; dr <= 1; dr++ {
			for df := -1; df <= 1; df++ {
				if dr != 0 || df != 0 {
					kingAttacks[sq] |= squareBit(rank+dr, file+df)
				}
			}
		}
		pawnCaptures[White][sq] = squareBit(rank+1, file-1) | squareBit(rank+1, file+1)
		pawnCaptures[Black][sq] = squareBit(rank-1, file-1) | squareBit(rank-1, file+1)

		for d, dir := range rookDirs {
			rookRays[sq][d] = buildRay(rank, file, dir[0], dir[1])
		}
		for d, dir := range bishopDirs {
			bishopRays[sq][d] = buildRay(rank, file, dir[0], dir[1])
		}
	}
}

func squareBit(rank, file int) uint64 {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return 0
	}
	return uint64(1) << uint(rank*8+file)
}

func buildRay(rank, file, dr, df int) uint64 {
	var ray uint64
	for r, f := rank+dr, file+df; r >= 0 && r <= 7 && f >= 0 && f <= 7; r, f = r+dr, f+df {
		ray |= uint64(1) << uint(r*8+f)
	}
	return ray
}

// slide clips each ray of sq at its first blocker in occ. The blocker square
// itself stays in the attack set so captures are included.
func slide(sq Square, occ uint64, rays *[64][4]uint64, forward *[4]bool) uint64 {
	var att uint64
	for d := 0; d < 4; d++ {
		ray := rays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			var first int
			if forward[d] {
				first = bits.TrailingZeros64(blockers)
			} else {
				first = 63 - bits.LeadingZeros64(blockers)
			}
			ray &^= rays[first][d]
		}
		att |= ray
	}
	return att
}

// RookAttacks returns the rook attack set from sq given an occupancy.
func RookAttacks(sq Square, occ uint64) uint64 {
	return slide(sq, occ, &rookRays, &rookForward)
}

// BishopAttacks returns the bishop attack set from sq given an occupancy.
func BishopAttacks(sq Square, occ uint64) uint64 {
	return slide(sq, occ, &bishopRays, &bishopForward)
}

// QueenAttacks returns the queen attack set from sq given an occupancy.
func QueenAttacks(sq Square, occ uint64) uint64 {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// attacked reports whether sq is attacked by any piece of the given side,
// evaluated against an explicit occupancy so callers can void squares.
func (b *Board) attacked(sq Square, by Color, occ uint64) bool {
	if pawnCaptures[by.Other()][sq]&b.pieceBB[by][Pawn] != 0 {
		return true
	}
	if knightAttacks[sq]&b.pieceBB[by][Knight] != 0 {
		return true
	}
	if kingAttacks[sq]&b.pieceBB[by][King] != 0 {
		return true
	}
	diag := b.pieceBB[by][Bishop] | b.pieceBB[by][Queen]
	if diag != 0 && BishopAttacks(sq, occ)&diag != 0 {
		return true
	}
	line := b.pieceBB[by][Rook] | b.pieceBB[by][Queen]
	if line != 0 && RookAttacks(sq, occ)&line != 0 {
		return true
	}
	return false
}

// IsSquareAttacked reports whether sq is attacked by the given side.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.attacked(sq, by, b.AllOccupied())
}

// InCheck reports whether c's king is attacked.
func (b *Board) InCheck(c Color) bool {
	return b.attacked(b.KingSquare(c), c.Other(), b.AllOccupied())
}
