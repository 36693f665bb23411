package engine

import "furrybot/pkg/rules"

// Evaluate scores pos from white's point of view using the default tables.
// depth is the search depth still remaining at pos; it makes shallower mates
// score higher than deeper ones.
func Evaluate(pos rules.Position, depth int) Score {
	return EvaluateWith(pos, depth, DefaultTables)
}

// EvaluateWith is Evaluate with an explicit table set
func EvaluateWith(pos rules.Position, depth int, t *Tables) Score {
	switch pos.Status() {
	case rules.Checkmate:
		// the side to move is the one that got mated
		return -Score(pos.Turn().Sign()) * (MateScore + Score(depth))
	case rules.Stalemate:
		return 0
	case rules.ThreefoldRepetition:
		return RepetitionPenalty
	}
	return Material(pos) + Positional(pos, t)
}

// Material returns white's material minus black's
func Material(pos rules.Position) Score {
	var score Score
	for sq := rules.Square(0); sq < 64; sq++ {
		pc, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		score += Score(pc.Color.Sign()) * PieceValue(pc.Kind)
	}
	return score
}

// Positional returns the piece-square balance, white minus black
func Positional(pos rules.Position, t *Tables) Score {
	var score Score
	for sq := rules.Square(0); sq < 64; sq++ {
		pc, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		score += Score(pc.Color.Sign()) * t.Weight(pc, sq)
	}
	return score
}
