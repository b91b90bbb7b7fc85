// Package agent exposes the engine to a tool-driven player: a small tool
// surface over one live game (analyze candidate moves, commit one) and a
// bounded decision loop around it.
package agent

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/121yaseen/westworld/chessmg"
	"github.com/121yaseen/westworld/engine"
)

var (
	// ErrIllegalMove reports a candidate that is not legal in the current
	// position. The position is left untouched.
	ErrIllegalMove = errors.New("illegal move")

	// ErrBudgetExceeded reports a decision loop that ran out of analyze
	// rounds before committing a move.
	ErrBudgetExceeded = errors.New("analyze budget exceeded")

	// ErrGameOver reports a tool call on a finished game.
	ErrGameOver = errors.New("game is over")
)

// MoveAnalysis is the verdict on one candidate move. Score is in centipawns
// from the perspective of the side making the move, so bigger is always
// better for the caller.
type MoveAnalysis struct {
	Move    chessmg.Move
	Score   int32
	Depth   int
	Outcome engine.Outcome
}

// Tools wraps one live board with the two operations a playing agent gets:
// AnalyzeMoves to look ahead and Commit to move. All analysis runs on board
// copies, so the game state only changes through Commit.
type Tools struct {
	board    *chessmg.Board
	searcher *engine.Searcher
}

// NewTools builds a tool surface over board, analyzed by searcher.
func NewTools(board *chessmg.Board, searcher *engine.Searcher) *Tools {
	return &Tools{board: board, searcher: searcher}
}

// Board returns the live board. Mutating it bypasses Commit and is the
// caller's responsibility.
func (t *Tools) Board() *chessmg.Board { return t.board }

// LegalMoves returns the legal moves in the current position.
func (t *Tools) LegalMoves() []chessmg.Move { return t.board.LegalMoves() }

// AnalyzeMoves scores each candidate by searching the position after it to
// the given depth. Every candidate is validated against the legal move set
// first; any illegal one fails the whole call with ErrIllegalMove and the
// board is untouched either way.
func (t *Tools) AnalyzeMoves(candidates []chessmg.Move, depth int) ([]MoveAnalysis, error) {
	legal := t.board.LegalMoves()
	if len(legal) == 0 {
		return nil, ErrGameOver
	}
	for _, m := range candidates {
		if !slices.Contains(legal, m) {
			return nil, fmt.Errorf("%w: %s", ErrIllegalMove, m)
		}
	}

	analyses := make([]MoveAnalysis, 0, len(candidates))
	for _, m := range candidates {
		after := t.board.Copy()
		after.MakeMove(m)
		res := t.searcher.Search(after, depth)
		analyses = append(analyses, MoveAnalysis{
			Move:    m,
			Score:   -res.Score,
			Depth:   res.Depth + 1,
			Outcome: flipOutcome(res),
		})
	}
	return analyses, nil
}

// Commit plays one legal move on the live board.
func (t *Tools) Commit(m chessmg.Move) error {
	legal := t.board.LegalMoves()
	if len(legal) == 0 {
		return ErrGameOver
	}
	if !slices.Contains(legal, m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	t.board.MakeMove(m)
	return nil
}

// flipOutcome reclassifies a reply-side search result for the mover.
func flipOutcome(res engine.Result) engine.Outcome {
	switch res.Outcome {
	case engine.OutcomeStalemate:
		return engine.OutcomeStalemate
	case engine.OutcomeCheckmate:
		return engine.OutcomeCheckmate
	default:
		if engine.IsMateScore(res.Score) {
			return engine.OutcomeCheckmate
		}
		return engine.OutcomeExact
	}
}
