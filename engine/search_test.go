package engine_test

import (
	"strings"
	"testing"
	"time"

	"github.com/121yaseen/westworld/chessmg"
	"github.com/121yaseen/westworld/engine"
)

// plainNegamax is the unpruned, unordered reference: full minimax over the
// legal move tree with first-in-generation-order tie breaking.
func plainNegamax(b *chessmg.Board, depth, ply int) (int32, chessmg.Move) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		if b.InCheck(b.Turn()) {
			return -(engine.MateScore - int32(ply)), 0
		}
		return engine.DrawScore, 0
	}
	if depth <= 0 {
		return engine.Evaluate(b), 0
	}
	bestScore := -engine.Infinity
	var bestMove chessmg.Move
	for _, m := range moves {
		_, st := b.MakeMove(m)
		score, _ := plainNegamax(b, depth-1, ply+1)
		score = -score
		b.UnmakeMove(m, st)
		if score > bestScore {
			bestScore, bestMove = score, m
		}
	}
	return bestScore, bestMove
}

var searchPositions = []string{
	chessmg.StartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

// Pruning and move ordering are speed devices only: the searched move and
// score must match the exhaustive reference at every depth.
func TestSearchMatchesExhaustiveNegamax(t *testing.T) {
	depths := []int{1, 2, 3}
	if testing.Short() {
		depths = []int{1, 2}
	}
	for _, fen := range searchPositions {
		for _, depth := range depths {
			b := chessmg.MustParseFEN(fen)
			wantScore, wantMove := plainNegamax(b.Copy(), depth, 0)

			res := engine.NewSearcher().Search(b, depth)
			if res.Score != wantScore || res.Move != wantMove {
				t.Errorf("%q depth %d: got %s score %d, reference %s score %d",
					fen, depth, res.Move, res.Score, wantMove, wantScore)
			}
		}
	}
}

func TestSearchStartposDepthOne(t *testing.T) {
	b := chessmg.NewBoard()
	res := engine.NewSearcher().Search(b, 1)

	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}
	if res.Depth != 1 {
		t.Errorf("depth = %d, want 1", res.Depth)
	}
	if res.Outcome != engine.OutcomeExact {
		t.Errorf("outcome = %v, want exact", res.Outcome)
	}
	legal := b.LegalMoves()
	if len(legal) != 20 {
		t.Fatalf("start position has %d legal moves", len(legal))
	}
	found := false
	for _, m := range legal {
		if m == res.Move {
			found = true
		}
	}
	if !found {
		t.Errorf("move %s is not a legal opening move", res.Move)
	}
	if got := b.ToFEN(); got != chessmg.StartPos {
		t.Errorf("search mutated the caller's board: %s", got)
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Scholar's setup one move early: Qd8-h4 mates on the spot.
	b := chessmg.MustParseFEN("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2")
	res := engine.NewSearcher().Search(b, 1)

	if got := res.Move.String(); got != "d8h4" {
		t.Errorf("move = %s, want d8h4", got)
	}
	if !engine.IsMateScore(res.Score) || res.Score <= 0 {
		t.Errorf("score = %d, want a winning mate score", res.Score)
	}
	if res.Outcome != engine.OutcomeCheckmate {
		t.Errorf("outcome = %v, want checkmate", res.Outcome)
	}
}

func TestSearchOnTerminalPositions(t *testing.T) {
	mated := engine.NewSearcher().Search(
		chessmg.MustParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"), 4)
	if mated.Move != 0 || mated.Outcome != engine.OutcomeCheckmate || mated.Score != -engine.MateScore {
		t.Errorf("checkmated root: move %s score %d outcome %v", mated.Move, mated.Score, mated.Outcome)
	}

	stale := engine.NewSearcher().Search(chessmg.MustParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"), 4)
	if stale.Move != 0 || stale.Outcome != engine.OutcomeStalemate || stale.Score != engine.DrawScore {
		t.Errorf("stalemated root: move %s score %d outcome %v", stale.Move, stale.Score, stale.Outcome)
	}
}

func TestSearchPrefersTheFasterMate(t *testing.T) {
	// Ladder mate: Ra8 is mate now, slower mates exist via checks first.
	b := chessmg.MustParseFEN("6k1/8/1R4K1/R7/8/8/8/8 w - - 0 1")
	res := engine.NewSearcher().Search(b, 5)
	if got := res.Move.String(); got != "a5a8" {
		t.Errorf("move = %s, want a5a8", got)
	}
	if res.Score != engine.MateScore-1 {
		t.Errorf("score = %d, want mate at ply 1", res.Score)
	}
}

func TestParallelSearchMatchesSequential(t *testing.T) {
	for _, fen := range searchPositions {
		seq := engine.NewSearcher().Search(chessmg.MustParseFEN(fen), 3)
		par := engine.NewSearcher(engine.WithWorkers(4)).Search(chessmg.MustParseFEN(fen), 3)
		if seq.Move != par.Move || seq.Score != par.Score || seq.Depth != par.Depth {
			t.Errorf("%q: sequential %s/%d/%d, parallel %s/%d/%d",
				fen, seq.Move, seq.Score, seq.Depth, par.Move, par.Score, par.Depth)
		}
	}
}

func TestSearchHonorsTimeBudget(t *testing.T) {
	s := engine.NewSearcher(engine.WithTimeBudget(50 * time.Millisecond))
	started := time.Now()
	res := s.Search(chessmg.NewBoard(), 64)
	elapsed := time.Since(started)

	if res.Move == 0 {
		t.Fatal("no move returned under a time budget")
	}
	if res.Depth < 1 {
		t.Fatalf("depth = %d, want at least the first iteration", res.Depth)
	}
	// Generous bound: the stop poll fires every few thousand nodes.
	if elapsed > 5*time.Second {
		t.Fatalf("search ran %v against a 50ms budget", elapsed)
	}
}

func TestSearchReportsProgress(t *testing.T) {
	var sb strings.Builder
	s := engine.NewSearcher(engine.WithInfoWriter(&sb))
	s.Search(chessmg.NewBoard(), 2)

	out := sb.String()
	if !strings.Contains(out, "info depth 1") || !strings.Contains(out, "info depth 2") {
		t.Errorf("progress output missing depth lines:\n%s", out)
	}
	if !strings.Contains(out, "score cp ") {
		t.Errorf("progress output missing score:\n%s", out)
	}
}

func TestScoreString(t *testing.T) {
	cases := []struct {
		score int32
		want  string
	}{
		{0, "cp 0"},
		{-137, "cp -137"},
		{engine.MateScore - 1, "mate 1"},
		{engine.MateScore - 4, "mate 2"},
		{-(engine.MateScore - 2), "mate -1"},
	}
	for _, tc := range cases {
		if got := engine.ScoreString(tc.score); got != tc.want {
			t.Errorf("ScoreString(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
