// Command perft counts move generation leaf nodes for a position, optionally
// split per root move and optionally cross-checked against an independent
// move generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/121yaseen/westworld/chessmg"
)

func main() {
	fen := flag.String("fen", chessmg.StartPos, "position to count from")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-move node counts at root")
	crossCheck := flag.Bool("crosscheck", false, "compare the total against dragontoothmg")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := chessmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	start := time.Now()
	var nodes uint64
	if *divide {
		nodes = chessmg.PerftDivide(board, *depth)
	} else {
		nodes = chessmg.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("perft(%d) = %d in %s (%.0f nps)\n", *depth, nodes, elapsed.Round(time.Millisecond), nps)

	if *crossCheck {
		ref := dragontoothmg.ParseFen(*fen)
		refNodes := referencePerft(&ref, *depth)
		if refNodes != nodes {
			fmt.Fprintf(os.Stderr, "mismatch: reference generator counts %d\n", refNodes)
			os.Exit(1)
		}
		fmt.Println("crosscheck ok")
	}
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth <= 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}
