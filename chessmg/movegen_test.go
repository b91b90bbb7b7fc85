package chessmg_test

import (
	"testing"

	"github.com/121yaseen/westworld/chessmg"
)

var perftPositions = []struct {
	name   string
	fen    string
	counts []uint64 // counts[d-1] = perft(d)
}{
	{
		name:   "startpos",
		fen:    chessmg.StartPos,
		counts: []uint64{20, 400, 8902, 197281},
	},
	{
		name:   "kiwipete",
		fen:    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		counts: []uint64{48, 2039, 97862},
	},
	{
		name:   "endgame pins",
		fen:    "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		counts: []uint64{14, 191, 2812, 43238},
	},
	{
		name:   "promotion tangle",
		fen:    "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		counts: []uint64{6, 264, 9467},
	},
	{
		name:   "mirror tactics",
		fen:    "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		counts: []uint64{44, 1486, 62379},
	},
	{
		name:   "symmetric middlegame",
		fen:    "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		counts: []uint64{46, 2079, 89890},
	},
}

func TestPerft(t *testing.T) {
	for _, pos := range perftPositions {
		t.Run(pos.name, func(t *testing.T) {
			b, err := chessmg.ParseFEN(pos.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			for d, want := range pos.counts {
				if got := chessmg.Perft(b, d+1); got != want {
					t.Errorf("perft(%d) = %d, want %d", d+1, got, want)
				}
			}
			if got := b.ToFEN(); got != pos.fen {
				t.Errorf("perft corrupted the board: %s", got)
			}
		})
	}
}

func TestPerftStartposDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 takes a while")
	}
	b := chessmg.NewBoard()
	if got := chessmg.Perft(b, 5); got != 4865609 {
		t.Fatalf("perft(5) = %d, want 4865609", got)
	}
}

// Every legal move must actually be playable, and playing it must never leave
// the mover's own king attacked.
func TestLegalMovesClosure(t *testing.T) {
	for _, pos := range perftPositions {
		b := chessmg.MustParseFEN(pos.fen)
		mover := b.Turn()
		for _, m := range b.LegalMoves() {
			fromBit := uint64(1) << uint(m.From())
			if b.OccupiedBy(mover)&fromBit == 0 {
				t.Fatalf("%s: move %s starts on a square %s does not occupy", pos.name, m, mover)
			}
			if m.IsCapture() && m.Flag() != chessmg.FlagEnPassant {
				toBit := uint64(1) << uint(m.To())
				if b.OccupiedBy(mover.Other())&toBit == 0 {
					t.Fatalf("%s: capture %s lands on an empty square", pos.name, m)
				}
			}
			ok, st := b.MakeMove(m)
			if !ok {
				t.Fatalf("%s: legal move %s rejected by MakeMove", pos.name, m)
			}
			if b.InCheck(mover) {
				t.Fatalf("%s: move %s leaves %s in check", pos.name, m, mover)
			}
			b.UnmakeMove(m, st)
		}
		if got := b.ToFEN(); got != pos.fen {
			t.Fatalf("%s: closure walk corrupted the board: %s", pos.name, got)
		}
	}
}

// A pseudo-legal move that MakeMove vetoes must leave no trace behind.
func TestRejectedMovesLeaveNoTrace(t *testing.T) {
	// The b5 pawn is pinned along the fifth rank, so its advances get vetoed.
	b := chessmg.MustParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	fen, hash := b.ToFEN(), b.Hash()
	rejected := 0
	for _, m := range b.PseudoLegalMoves(nil) {
		ok, st := b.MakeMove(m)
		if ok {
			b.UnmakeMove(m, st)
		} else {
			rejected++
		}
		if b.Hash() != hash || b.ToFEN() != fen {
			t.Fatalf("after trying %s: board drifted to %s", m, b.ToFEN())
		}
	}
	if rejected == 0 {
		t.Fatal("expected at least one pseudo-legal move to be vetoed")
	}
}

func TestResolveMove(t *testing.T) {
	b := chessmg.NewBoard()
	m, ok := chessmg.ResolveMove(b, "e2e4")
	if !ok {
		t.Fatal("e2e4 should resolve in the start position")
	}
	if m.Flag() != chessmg.FlagDoublePush {
		t.Errorf("e2e4 flag = %d, want double push", m.Flag())
	}
	if _, ok := chessmg.ResolveMove(b, "e2e5"); ok {
		t.Error("e2e5 resolved but is not legal")
	}
	if _, ok := chessmg.ResolveMove(b, "banana"); ok {
		t.Error("malformed input resolved")
	}

	promo := chessmg.MustParseFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	m, ok = chessmg.ResolveMove(promo, "a7a8q")
	if !ok {
		t.Fatal("a7a8q should resolve")
	}
	if m.Promotion().Type() != chessmg.Queen {
		t.Errorf("promotion type = %v, want queen", m.Promotion().Type())
	}
}

func BenchmarkPerft4(b *testing.B) {
	board := chessmg.NewBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := chessmg.Perft(board, 4); n != 197281 {
			b.Fatalf("perft(4) = %d", n)
		}
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	board := chessmg.MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	buf := make([]chessmg.Move, 0, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.LegalMovesInto(buf)
	}
}
