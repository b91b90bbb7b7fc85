package engine

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/121yaseen/westworld/chessmg"
)

// Score bounds. Mate scores are encoded relative to the root: a side mated at
// ply p scores -(MateScore - p), so shorter mates always win comparisons.
const (
	Infinity  int32 = 31000
	MateScore int32 = 30000
	DrawScore int32 = 0

	mateBound = MateScore - maxPly
	maxDepth  = 64
)

// IsMateScore reports whether a score encodes a forced mate.
func IsMateScore(score int32) bool {
	return score > mateBound || score < -mateBound
}

// Outcome classifies a search result.
type Outcome uint8

const (
	// OutcomeExact means a normal centipawn score.
	OutcomeExact Outcome = iota
	// OutcomeCheckmate means the score encodes a forced mate, or the root
	// itself is checkmate when Move is zero.
	OutcomeCheckmate
	// OutcomeStalemate means the root has no legal moves and no check.
	OutcomeStalemate
)

// Result is the outcome of one search. Move is the zero Move only when the
// root position is already terminal.
type Result struct {
	Move    chessmg.Move
	Score   int32
	Depth   int
	Nodes   uint64
	Outcome Outcome
	Elapsed time.Duration
}

// Searcher runs iterative deepening negamax with alpha-beta pruning. Move
// ordering (hash move, MVV-LVA, killers, history, placement deltas) is purely
// a speed device: for a fixed position and depth the chosen move and score
// are identical to an exhaustive minimax with first-in-generation-order tie
// breaking. A Searcher is not safe for concurrent use by multiple goroutines.
type Searcher struct {
	budget   time.Duration
	workers  int
	info     io.Writer
	hintBits uint

	hints      *hintTable
	killers    killerTable
	history    historyTable
	moveBufs   [maxPly][]chessmg.Move
	scoredBufs [maxPly][]scoredMove

	tc        timeControl
	stop      *atomic.Bool
	nodes     uint64
	depthDone bool
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithTimeBudget caps search wall time. Depth 1 always completes regardless
// of the budget, so a move is returned even under an expired clock.
func WithTimeBudget(d time.Duration) Option {
	return func(s *Searcher) { s.budget = d }
}

// WithWorkers sets how many goroutines split the root moves. Parallel search
// returns the same move and score as a single worker, just sooner.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithInfoWriter streams one progress line per completed depth to w.
func WithInfoWriter(w io.Writer) Option {
	return func(s *Searcher) { s.info = w }
}

// WithHintTableBits sizes the ordering hint table at 1<<bits entries.
func WithHintTableBits(bits uint) Option {
	return func(s *Searcher) {
		if bits >= 10 && bits <= 28 {
			s.hintBits = bits
		}
	}
}

// NewSearcher builds a Searcher. Without options it searches single threaded
// with no time limit.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		workers:  1,
		hintBits: 18,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hints = newHintTable(s.hintBits)
	return s
}

// Search explores the position to the requested depth, or until the time
// budget runs out, and returns the best move from the deepest fully completed
// iteration. The caller's board is copied up front and never mutated.
func (s *Searcher) Search(b *chessmg.Board, depth int) Result {
	local := *b
	root := &local
	started := time.Now()

	moves := root.LegalMoves()
	if len(moves) == 0 {
		if root.InCheck(root.Turn()) {
			return Result{Score: -MateScore, Outcome: OutcomeCheckmate, Elapsed: time.Since(started)}
		}
		return Result{Score: DrawScore, Outcome: OutcomeStalemate, Elapsed: time.Since(started)}
	}

	if depth < 1 {
		depth = 1
	}
	if depth > maxDepth {
		depth = maxDepth
	}

	s.nodes = 0
	s.depthDone = false
	s.stop = &atomic.Bool{}
	s.hints.clear()
	s.killers.clear()
	s.history.clear()
	s.tc.arm(s.budget)

	var best Result
	for d := 1; d <= depth; d++ {
		score, move, complete := s.searchRoot(root, moves, d)
		if !complete {
			break
		}
		s.depthDone = true
		best = Result{
			Move:    move,
			Score:   score,
			Depth:   d,
			Nodes:   s.nodes,
			Outcome: outcomeOf(score),
			Elapsed: time.Since(started),
		}
		s.report(best)
		if IsMateScore(score) || s.tc.expired() {
			break
		}
	}
	best.Nodes = s.nodes
	best.Elapsed = time.Since(started)
	return best
}

func (s *Searcher) searchRoot(b *chessmg.Board, moves []chessmg.Move, depth int) (int32, chessmg.Move, bool) {
	if s.workers > 1 && depth > 1 && len(moves) > 1 {
		return s.searchRootParallel(b, moves, depth)
	}

	// Root moves stay in generation order so ties resolve to the first one.
	alpha, beta := -Infinity, Infinity
	bestScore := -Infinity
	var bestMove chessmg.Move
	for _, m := range moves {
		_, st := b.MakeMove(m)
		score := -s.negamax(b, -beta, -alpha, depth-1, 1)
		b.UnmakeMove(m, st)
		if s.stop.Load() {
			return 0, 0, false
		}
		if score > bestScore {
			bestScore, bestMove = score, m
		}
		if score > alpha {
			alpha = score
		}
	}
	s.hints.store(b.Hash(), bestMove)
	return bestScore, bestMove, true
}

// searchRootParallel farms the root moves out to worker goroutines, each
// searching its subtree with a full window on its own board copy and private
// tables. Full windows keep every child score exact, so the aggregated answer
// matches the sequential one.
func (s *Searcher) searchRootParallel(b *chessmg.Board, moves []chessmg.Move, depth int) (int32, chessmg.Move, bool) {
	n := len(moves)
	scores := make([]int32, n)

	workers := s.workers
	if workers > n {
		workers = n
	}

	var next atomic.Int64
	var nodes atomic.Uint64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ws := s.newWorker()
			defer nodes.Add(ws.nodes)
			for {
				i := int(next.Add(1)) - 1
				if i >= n || ws.stop.Load() {
					return
				}
				local := *b
				local.MakeMove(moves[i])
				scores[i] = -ws.negamax(&local, -Infinity, Infinity, depth-1, 1)
			}
		}()
	}
	wg.Wait()
	s.nodes += nodes.Load()

	if s.stop.Load() {
		return 0, 0, false
	}
	best := 0
	for i := 1; i < n; i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	s.hints.store(b.Hash(), moves[best])
	return scores[best], moves[best], true
}

// newWorker clones the searcher for one goroutine: shared stop flag and
// clock, private ordering state.
func (s *Searcher) newWorker() *Searcher {
	return &Searcher{
		workers:   1,
		hints:     newHintTable(16),
		tc:        s.tc,
		stop:      s.stop,
		depthDone: true,
	}
}

func (s *Searcher) negamax(b *chessmg.Board, alpha, beta int32, depth, ply int) int32 {
	s.nodes++
	if s.nodes&4095 == 0 && s.depthDone && s.tc.expired() {
		s.stop.Store(true)
	}
	if s.stop.Load() {
		return 0
	}

	moves := b.LegalMovesInto(s.moveBuf(ply))
	s.moveBufs[ply] = moves[:0]
	if len(moves) == 0 {
		// Mate and stalemate outrank the depth horizon.
		if b.InCheck(b.Turn()) {
			return -(MateScore - int32(ply))
		}
		return DrawScore
	}
	if depth <= 0 || ply >= maxPly-1 {
		return Evaluate(b)
	}

	hashMove, _ := s.hints.probe(b.Hash())
	scored := s.scoreMoves(b, moves, ply, hashMove)

	bestScore := -Infinity
	var bestMove chessmg.Move
	for i := range scored {
		m := pickNext(scored, i)
		_, st := b.MakeMove(m)
		score := -s.negamax(b, -beta, -alpha, depth-1, ply+1)
		b.UnmakeMove(m, st)
		if s.stop.Load() {
			return 0
		}
		if score > bestScore {
			bestScore, bestMove = score, m
		}
		if bestScore >= beta {
			if !m.IsCapture() && m.Promotion() == chessmg.NoPiece {
				s.killers.insert(ply, m)
				s.history.bump(b.Turn(), m, depth)
			}
			break
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	s.hints.store(b.Hash(), bestMove)
	return bestScore
}

func (s *Searcher) moveBuf(ply int) []chessmg.Move {
	if s.moveBufs[ply] == nil {
		s.moveBufs[ply] = make([]chessmg.Move, 0, 64)
	}
	return s.moveBufs[ply]
}

func (s *Searcher) scratch(ply, n int) []scoredMove {
	if cap(s.scoredBufs[ply]) < n {
		s.scoredBufs[ply] = make([]scoredMove, n, n+16)
	}
	return s.scoredBufs[ply][:n]
}

func (s *Searcher) report(r Result) {
	if s.info == nil {
		return
	}
	ms := r.Elapsed.Milliseconds()
	nps := int64(0)
	if ms > 0 {
		nps = int64(r.Nodes) * 1000 / ms
	}
	fmt.Fprintf(s.info, "info depth %d score %s nodes %d time %d nps %d pv %s\n",
		r.Depth, ScoreString(r.Score), r.Nodes, ms, nps, r.Move)
}

func outcomeOf(score int32) Outcome {
	if IsMateScore(score) {
		return OutcomeCheckmate
	}
	return OutcomeExact
}

// ScoreString renders a score the way engines print it: "cp N" for centipawn
// scores and "mate N" in full moves for forced mates, negative when the side
// to move is the one getting mated.
func ScoreString(score int32) string {
	if !IsMateScore(score) {
		return fmt.Sprintf("cp %d", score)
	}
	if score > 0 {
		plies := MateScore - score
		return fmt.Sprintf("mate %d", (plies+1)/2)
	}
	plies := MateScore + score
	return fmt.Sprintf("mate -%d", (plies+1)/2)
}
