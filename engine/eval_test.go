package engine_test

import (
	"testing"

	"github.com/121yaseen/westworld/chessmg"
	"github.com/121yaseen/westworld/engine"
)

func TestEvaluateBalancedPositionsScoreZero(t *testing.T) {
	fens := []string{
		chessmg.StartPos,
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"8/8/4k3/8/8/8/8/K7 w - - 0 1",
	}
	for _, fen := range fens {
		if got := engine.Evaluate(chessmg.MustParseFEN(fen)); got != 0 {
			t.Errorf("Evaluate(%q) = %d, want 0", fen, got)
		}
	}
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	// White is a queen up; the same position scored for black must negate.
	whiteToMove := "rnb1kbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	blackToMove := "rnb1kbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"

	w := engine.Evaluate(chessmg.MustParseFEN(whiteToMove))
	b := engine.Evaluate(chessmg.MustParseFEN(blackToMove))
	if w <= 0 {
		t.Errorf("queen-up side scores %d, want positive", w)
	}
	if w != -b {
		t.Errorf("perspective flip changed magnitude: white %d, black %d", w, b)
	}
}

func TestEvaluateIsDeterministicAndPure(t *testing.T) {
	b := chessmg.MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	fen := b.ToFEN()
	first := engine.Evaluate(b)
	for i := 0; i < 5; i++ {
		if got := engine.Evaluate(b); got != first {
			t.Fatalf("evaluation drifted from %d to %d on call %d", first, got, i+2)
		}
	}
	if b.ToFEN() != fen {
		t.Fatalf("Evaluate mutated the board: %s", b.ToFEN())
	}
}

func TestEvaluateCountsTheBishopPair(t *testing.T) {
	pair := chessmg.MustParseFEN("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	single := chessmg.MustParseFEN("4k3/8/8/8/8/8/8/2B1K3 w - - 0 1")
	if engine.Evaluate(pair) <= 2*engine.Evaluate(single)-engine.Evaluate(chessmg.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")) {
		t.Error("two bishops should be worth more than twice one bishop")
	}
}
