package engine

import (
	"fmt"

	"furrybot/pkg/rules"
)

// Choice is the outcome of a move selection
type Choice struct {
	Move  rules.Move
	UCI   string
	Score Score // from the mover's point of view
	Nodes uint  // search steps spent on this selection
}

// SelectMove replays history and returns the best move for the side to move,
// or nil when the game is already over.
func (e *Engine) SelectMove(history []string) (*Choice, error) {
	factory := e.NewPosition
	if factory == nil {
		factory = rules.NewNotnil
	}
	pos, err := factory(history)
	if err != nil {
		return nil, fmt.Errorf("replay history: %w", err)
	}
	return e.Choose(pos), nil
}

// Choose searches every legal move of pos and returns the best one. Each
// candidate is searched from a minimizing step with its own full window; the
// first candidate reaching the best score wins ties.
func (e *Engine) Choose(pos rules.Position) *Choice {
	moves := e.candidates(pos)
	if len(moves) == 0 {
		e.logf("no legal moves, %s", pos.Status())
		return nil
	}
	sign := pos.Turn().Sign()
	start := e.Visited
	var best *Choice
	for _, m := range moves {
		score := e.try(pos, m, func() Score {
			return e.Min(pos, e.depth(), -Infinity, Infinity, sign)
		})
		if best == nil || score > best.Score {
			best = &Choice{Move: m, Score: score}
		}
	}
	best.UCI = pos.UCI(best.Move)
	best.Nodes = e.Visited - start
	e.logf("%s plays %s score:%d nodes:%d", pos.Turn(), best.UCI, best.Score, best.Nodes)
	return best
}
