package chessmg_test

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/121yaseen/westworld/chessmg"
)

// The dragontoothmg generator is the independent referee: move lists and
// perft totals have to agree with it on every test position.

func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	for _, pos := range perftPositions {
		t.Run(pos.name, func(t *testing.T) {
			b := chessmg.MustParseFEN(pos.fen)
			ref := dragontoothmg.ParseFen(pos.fen)

			var got, want []string
			for _, m := range b.LegalMoves() {
				got = append(got, m.String())
			}
			for _, m := range ref.GenerateLegalMoves() {
				want = append(want, m.String())
			}
			sort.Strings(got)
			sort.Strings(want)

			if len(got) != len(want) {
				t.Fatalf("move count %d, reference %d\ngot  %v\nwant %v", len(got), len(want), got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("move lists diverge at %q vs %q\ngot  %v\nwant %v", got[i], want[i], got, want)
				}
			}
		})
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

func TestPerftMatchesReferenceGenerator(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, pos := range perftPositions {
		t.Run(pos.name, func(t *testing.T) {
			b := chessmg.MustParseFEN(pos.fen)
			ref := dragontoothmg.ParseFen(pos.fen)
			for d := 1; d <= depth; d++ {
				got := chessmg.Perft(b, d)
				want := referencePerft(&ref, d)
				if got != want {
					t.Fatalf("perft(%d) = %d, reference %d", d, got, want)
				}
			}
		})
	}
}
