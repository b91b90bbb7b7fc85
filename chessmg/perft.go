package chessmg

import (
	"fmt"
	"sort"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Move buffers are reused per ply so the walk allocates once per depth.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	bufs := make([][]Move, depth)
	for i := range bufs {
		bufs[i] = make([]Move, 0, 64)
	}
	return perft(b, depth, bufs)
}

func perft(b *Board, depth int, bufs [][]Move) uint64 {
	moves := b.LegalMovesInto(bufs[depth-1])
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		_, st := b.MakeMove(m)
		nodes += perft(b, depth-1, bufs)
		b.UnmakeMove(m, st)
	}
	return nodes
}

// PerftDivide prints the per-move subtree counts at the root, in move
// notation order, followed by the total. Used to diff against other engines.
func PerftDivide(b *Board, depth int) uint64 {
	type line struct {
		move  string
		nodes uint64
	}
	var lines []line
	var total uint64
	for _, m := range b.LegalMoves() {
		_, st := b.MakeMove(m)
		nodes := Perft(b, depth-1)
		b.UnmakeMove(m, st)
		lines = append(lines, line{m.String(), nodes})
		total += nodes
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].move < lines[j].move })
	for _, l := range lines {
		fmt.Printf("%s: %d\n", l.move, l.nodes)
	}
	fmt.Printf("total: %d\n", total)
	return total
}
