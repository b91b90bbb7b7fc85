package agent

import (
	"fmt"

	"github.com/121yaseen/westworld/chessmg"
	"github.com/121yaseen/westworld/engine"
)

// The FEN boundary is the stateless twin of Tools: positions travel as FEN
// strings and moves as coordinate notation, so callers on the far side of a
// serialization boundary never hold board state.

// MoveReport is the JSON-friendly form of MoveAnalysis.
type MoveReport struct {
	Move          string `json:"move"`
	Score         int32  `json:"score"`
	BestLineDepth int    `json:"best_line_depth"`
}

// AnalyzeMovesFEN parses fen, validates the candidate move strings and scores
// each one with a search of the given depth. Scores are from the perspective
// of the side to move in fen. Parse failures wrap chessmg.ErrInvalidPosition;
// unknown or illegal candidates wrap ErrIllegalMove.
func AnalyzeMovesFEN(searcher *engine.Searcher, fen string, candidates []string, depth int) ([]MoveReport, error) {
	board, err := chessmg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	moves := make([]chessmg.Move, 0, len(candidates))
	for _, str := range candidates {
		m, ok := chessmg.ResolveMove(board, str)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrIllegalMove, str)
		}
		moves = append(moves, m)
	}

	tools := NewTools(board, searcher)
	analyses, err := tools.AnalyzeMoves(moves, depth)
	if err != nil {
		return nil, err
	}

	reports := make([]MoveReport, len(analyses))
	for i, a := range analyses {
		reports[i] = MoveReport{
			Move:          a.Move.String(),
			Score:         a.Score,
			BestLineDepth: a.Depth,
		}
	}
	return reports, nil
}

// MakeMoveFEN applies one move to the position in fen and returns the
// resulting FEN. The input position is validated the same way ParseFEN
// validates it, and the move must be legal there.
func MakeMoveFEN(fen, move string) (string, error) {
	board, err := chessmg.ParseFEN(fen)
	if err != nil {
		return "", err
	}
	m, ok := chessmg.ResolveMove(board, move)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrIllegalMove, move)
	}
	board.MakeMove(m)
	return board.ToFEN(), nil
}
