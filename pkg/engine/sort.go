package engine

import (
	"golang.org/x/exp/slices"

	"furrybot/pkg/rules"
)

// Orderer returns the candidates of pos in the order they should be searched.
// It must return a permutation of moves and must not keep state between calls;
// anything it remembers has to be passed in when it is built.
type Orderer func(pos rules.Position, moves []rules.Move) []rules.Move

// ByVariance searches checks first, then captures, then promotions, which have
// the highest potential score variance. Equal moves keep their order.
func ByVariance(pos rules.Position, moves []rules.Move) []rules.Move {
	out := slices.Clone(moves)
	slices.SortStableFunc(out, func(a, b rules.Move) bool {
		return variance(a) < variance(b)
	})
	return out
}

func variance(m rules.Move) int {
	switch {
	case m.Check:
		return 0
	case m.Capture:
		return 1
	case m.Promotion != rules.NoKind:
		return 2
	}
	return 3
}

// PreferMoves searches the expected move for the current ply first. line maps
// a ply (see rules.Position.Ply) to a move in coordinate notation, typically
// the opponent replies predicted from earlier turns.
func PreferMoves(line map[int]string) Orderer {
	return func(pos rules.Position, moves []rules.Move) []rules.Move {
		want, ok := line[pos.Ply()]
		if !ok {
			return moves
		}
		i := slices.IndexFunc(moves, func(m rules.Move) bool {
			return pos.UCI(m) == want
		})
		if i <= 0 {
			return moves
		}
		out := slices.Delete(slices.Clone(moves), i, i+1)
		return slices.Insert(out, 0, moves[i])
	}
}

// Chain applies orderers left to right
func Chain(orderers ...Orderer) Orderer {
	return func(pos rules.Position, moves []rules.Move) []rules.Move {
		for _, o := range orderers {
			moves = o(pos, moves)
		}
		return moves
	}
}
