// Command play runs a game in the terminal. Each side is played by a human
// typing coordinate moves, by the searcher directly, or by the tool-driven
// agent loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/bits"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/121yaseen/westworld/agent"
	"github.com/121yaseen/westworld/chessmg"
	"github.com/121yaseen/westworld/engine"
)

type controller interface {
	move(b *chessmg.Board) (chessmg.Move, bool)
}

func main() {
	fen := flag.String("fen", chessmg.StartPos, "starting position")
	depth := flag.Int("depth", 4, "search depth")
	movetime := flag.Duration("movetime", 0, "time budget per engine move (0 = none)")
	workers := flag.Int("workers", 1, "parallel root search workers")
	whiteKind := flag.String("white", "human", "who plays white: human, engine or agent")
	blackKind := flag.String("black", "engine", "who plays black: human, engine or agent")
	flag.Parse()

	board, err := chessmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	scanner := bufio.NewScanner(os.Stdin)
	players := [2]controller{}
	for i, kind := range []string{*whiteKind, *blackKind} {
		p, err := buildController(kind, scanner, *depth, *movetime, *workers)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		players[i] = p
	}

	history := []uint64{board.Hash()}
	for {
		fmt.Println()
		fmt.Print(board)
		fmt.Printf("%s to move, move %d, clock %d", board.Turn(), board.FullmoveNumber(), board.HalfmoveClock())
		if ep := board.EnPassant(); ep != chessmg.NoSquare {
			fmt.Printf(", en passant %s", ep)
		}
		fmt.Printf(", material %+d\n%s\n", materialBalance(board), board.ToFEN())

		status, winner := board.Status()
		if status != chessmg.StatusOngoing {
			announce(status, winner)
			return
		}
		if board.IsFiftyMoveDraw() {
			fmt.Println("Draw by the fifty move rule.")
			return
		}
		if board.IsRepetition(history[:len(history)-1]) {
			fmt.Println("Draw by threefold repetition.")
			return
		}

		m, ok := players[int(board.Turn())].move(board)
		if !ok {
			fmt.Println("Game aborted.")
			return
		}
		board.MakeMove(m)
		history = append(history, board.Hash())
	}
}

// materialBalance sums piece values from white's point of view, in centipawns.
func materialBalance(b *chessmg.Board) int32 {
	bal := int32(0)
	for t := chessmg.Pawn; t <= chessmg.Queen; t++ {
		white := bits.OnesCount64(b.PieceBB(chessmg.White, t))
		black := bits.OnesCount64(b.PieceBB(chessmg.Black, t))
		bal += int32(white-black) * engine.PieceValue(t)
	}
	return bal
}

func buildController(kind string, scanner *bufio.Scanner, depth int, movetime time.Duration, workers int) (controller, error) {
	opts := []engine.Option{
		engine.WithWorkers(workers),
		engine.WithInfoWriter(os.Stdout),
	}
	if movetime > 0 {
		opts = append(opts, engine.WithTimeBudget(movetime))
	}
	switch kind {
	case "human":
		return &humanController{scanner: scanner}, nil
	case "engine":
		return &engineController{searcher: engine.NewSearcher(opts...), depth: depth}, nil
	case "agent":
		return &agentController{searcher: engine.NewSearcher(opts...), depth: depth}, nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}

type humanController struct {
	scanner *bufio.Scanner
}

func (h *humanController) move(b *chessmg.Board) (chessmg.Move, bool) {
	for {
		fmt.Print("your move> ")
		if !h.scanner.Scan() {
			return 0, false
		}
		line := strings.TrimSpace(h.scanner.Text())
		switch line {
		case "quit", "resign":
			return 0, false
		case "moves":
			for _, m := range b.LegalMoves() {
				fmt.Printf("%s ", m)
			}
			fmt.Println()
			continue
		}
		if m, ok := chessmg.ResolveMove(b, line); ok {
			return m, true
		}
		fmt.Printf("%q is not a legal move here (try 'moves')\n", line)
	}
}

type engineController struct {
	searcher *engine.Searcher
	depth    int
}

func (e *engineController) move(b *chessmg.Board) (chessmg.Move, bool) {
	res := e.searcher.Search(b, e.depth)
	if res.Move == 0 {
		return 0, false
	}
	fmt.Printf("engine plays %s (%s)\n", res.Move, engine.ScoreString(res.Score))
	return res.Move, true
}

type agentController struct {
	searcher *engine.Searcher
	depth    int
}

func (a *agentController) move(b *chessmg.Board) (chessmg.Move, bool) {
	// The agent commits to its own copy; the outer loop owns the real board.
	tools := agent.NewTools(b.Copy(), a.searcher)
	player := agent.NewPlayer(tools, agent.EnginePolicy{}, agent.WithAnalyzeDepth(a.depth))
	decision, err := player.Play()
	if err != nil {
		fmt.Fprintf(os.Stderr, "agent: %v\n", err)
		return 0, false
	}

	ranked := slices.Clone(decision.Analyzed)
	slices.SortStableFunc(ranked, func(x, y agent.MoveAnalysis) int {
		return int(y.Score - x.Score)
	})
	show := ranked
	if len(show) > 3 {
		show = show[:3]
	}
	for _, an := range show {
		fmt.Printf("  candidate %s score %s\n", an.Move, engine.ScoreString(an.Score))
	}
	fmt.Printf("agent plays %s\n", decision.Move)
	return decision.Move, true
}

func announce(status chessmg.Status, winner chessmg.Color) {
	switch status {
	case chessmg.StatusCheckmate:
		fmt.Printf("Checkmate, %s wins.\n", winner)
	case chessmg.StatusStalemate:
		fmt.Println("Stalemate.")
	case chessmg.StatusInsufficientMaterial:
		fmt.Println("Draw by insufficient material.")
	}
}
