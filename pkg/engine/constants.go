package engine

import (
	"math"

	"furrybot/pkg/rules"
)

// Score is a white-oriented evaluation in centipawns
type Score int32

// Infinity is bigger than any score Evaluate can return
const Infinity = Score(math.MaxInt32)

// MateScore is the base magnitude of a checkmate; the remaining depth is added on top
const MateScore = Score(500000)

// RepetitionPenalty is returned for a threefold repetition regardless of the side to move
const RepetitionPenalty = Score(-150)

// DefaultDepth is the number of plies searched below each root candidate
const DefaultDepth = 2

var pieceValues = [7]Score{
	rules.NoKind: 0,
	rules.Pawn:   100,
	rules.Knight: 320,
	rules.Bishop: 330,
	rules.Rook:   500,
	rules.Queen:  900,
	rules.King:   0,
}

// PieceValue returns the material worth of a piece kind
func PieceValue(k rules.PieceKind) Score {
	if int(k) >= len(pieceValues) {
		return 0
	}
	return pieceValues[k]
}

// IsMate reports whether s carries a checkmate sentinel for either side
func IsMate(s Score) bool {
	return s >= MateScore || s <= -MateScore
}
