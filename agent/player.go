package agent

import (
	"golang.org/x/exp/slices"

	"github.com/121yaseen/westworld/chessmg"
)

// Policy drives the decision loop. Propose returns the candidates to analyze
// next; an empty slice means the policy is ready to decide. Decide picks the
// move to commit from everything analyzed so far.
type Policy interface {
	Propose(board *chessmg.Board, legal []chessmg.Move, round int, analyzed []MoveAnalysis) []chessmg.Move
	Decide(board *chessmg.Board, analyzed []MoveAnalysis) chessmg.Move
}

// Decision records one completed turn: the committed move and every analysis
// that informed it, in the order the tool calls were made.
type Decision struct {
	Move     chessmg.Move
	Analyzed []MoveAnalysis
}

// Player runs a Policy against a Tools surface with a hard cap on analyze
// rounds per turn. A policy that keeps proposing past the cap fails the turn
// with ErrBudgetExceeded and nothing is committed.
type Player struct {
	tools      *Tools
	policy     Policy
	depth      int
	maxAnalyze int
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithAnalyzeDepth sets the search depth of each analyze round.
func WithAnalyzeDepth(depth int) PlayerOption {
	return func(p *Player) {
		if depth > 0 {
			p.depth = depth
		}
	}
}

// WithMaxAnalyze caps the analyze rounds per turn.
func WithMaxAnalyze(n int) PlayerOption {
	return func(p *Player) {
		if n > 0 {
			p.maxAnalyze = n
		}
	}
}

// NewPlayer builds a Player. Defaults: analyze depth 3, at most 3 analyze
// rounds per turn.
func NewPlayer(tools *Tools, policy Policy, opts ...PlayerOption) *Player {
	p := &Player{
		tools:      tools,
		policy:     policy,
		depth:      3,
		maxAnalyze: 3,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play runs one turn: analyze rounds as directed by the policy, then one
// commit. Tool errors and the round cap surface unchanged and leave the
// board as it was.
func (p *Player) Play() (Decision, error) {
	legal := p.tools.LegalMoves()
	if len(legal) == 0 {
		return Decision{}, ErrGameOver
	}

	var analyzed []MoveAnalysis
	for round := 0; ; round++ {
		candidates := p.policy.Propose(p.tools.Board(), legal, round, analyzed)
		if len(candidates) == 0 {
			break
		}
		if round >= p.maxAnalyze {
			return Decision{Analyzed: analyzed}, ErrBudgetExceeded
		}
		batch, err := p.tools.AnalyzeMoves(candidates, p.depth)
		if err != nil {
			return Decision{Analyzed: analyzed}, err
		}
		analyzed = append(analyzed, batch...)
	}

	move := p.policy.Decide(p.tools.Board(), analyzed)
	if err := p.tools.Commit(move); err != nil {
		return Decision{Analyzed: analyzed}, err
	}
	return Decision{Move: move, Analyzed: analyzed}, nil
}

// EnginePolicy analyzes every legal move once and commits the best score,
// first in generation order on ties. With no analyses to go on it falls back
// to the first legal move.
type EnginePolicy struct{}

func (EnginePolicy) Propose(_ *chessmg.Board, legal []chessmg.Move, round int, _ []MoveAnalysis) []chessmg.Move {
	if round > 0 {
		return nil
	}
	return slices.Clone(legal)
}

func (EnginePolicy) Decide(board *chessmg.Board, analyzed []MoveAnalysis) chessmg.Move {
	if len(analyzed) == 0 {
		if legal := board.LegalMoves(); len(legal) > 0 {
			return legal[0]
		}
		return 0
	}
	best := analyzed[0]
	for _, a := range analyzed[1:] {
		if a.Score > best.Score {
			best = a
		}
	}
	return best.Move
}
