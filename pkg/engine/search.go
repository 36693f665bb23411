package engine

import (
	"fmt"

	"furrybot/pkg/rules"
)

// Max is the maximizing step of the search. sign is +1 when the side the
// search is optimizing for is white and -1 when it is black; it stays fixed
// for a whole search and only orients leaf scores.
func (e *Engine) Max(pos rules.Position, depth int, alpha, beta Score, sign int) Score {
	e.enter(alpha, beta)
	if depth == 0 || pos.GameOver() {
		return Score(sign) * e.Evaluate(pos, depth)
	}
	best := -Infinity
	for _, m := range e.candidates(pos) {
		score := e.try(pos, m, func() Score {
			return e.Min(pos, depth-1, alpha, beta, sign)
		})
		best = maxOf(best, score)
		if e.DisablePruning {
			continue
		}
		alpha = maxOf(alpha, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// Min is the minimizing step of the search, the mirror of Max
func (e *Engine) Min(pos rules.Position, depth int, alpha, beta Score, sign int) Score {
	e.enter(alpha, beta)
	if depth == 0 || pos.GameOver() {
		return Score(sign) * e.Evaluate(pos, depth)
	}
	worst := Infinity
	for _, m := range e.candidates(pos) {
		score := e.try(pos, m, func() Score {
			return e.Max(pos, depth-1, alpha, beta, sign)
		})
		worst = minOf(worst, score)
		if e.DisablePruning {
			continue
		}
		beta = minOf(beta, worst)
		if beta <= alpha {
			break
		}
	}
	return worst
}

func (e *Engine) enter(alpha, beta Score) {
	e.Visited++
	if alpha > beta {
		panic(fmt.Sprintf("engine: search window inverted (alpha %d > beta %d)", alpha, beta))
	}
}

// try plays m, runs next, and takes m back even if next panics
func (e *Engine) try(pos rules.Position, m rules.Move, next func() Score) Score {
	undo := pos.Apply(m)
	defer undo()
	return next()
}

func (e *Engine) candidates(pos rules.Position) []rules.Move {
	moves := pos.LegalMoves()
	if e.Order == nil || len(moves) < 2 {
		return moves
	}
	ordered := e.Order(pos, moves)
	if len(ordered) != len(moves) {
		panic(fmt.Sprintf("engine: orderer returned %d of %d moves", len(ordered), len(moves)))
	}
	return ordered
}
