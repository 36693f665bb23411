package rules

import (
	"strconv"
	"strings"
)

// StartFEN is the standard initial position
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// repetitionKey keeps the placement, side, castling and en passant fields
func repetitionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

func halfmoveClock(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 5 {
		return 0
	}
	n, err := strconv.Atoi(fields[4])
	if err != nil {
		return 0
	}
	return n
}

// plyFromFEN derives the half-move count from the fullmove number and side to move
func plyFromFEN(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return 0
	}
	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		return 0
	}
	ply := 2 * (full - 1)
	if fields[1] == "b" {
		ply++
	}
	return ply
}

// insufficientMaterial reports bare kings, a single minor piece, or bishops
// that all stand on squares of one color
func insufficientMaterial(pos Position) bool {
	minors := 0
	bishopShades := map[int]bool{}
	onlyBishops := true
	for sq := Square(0); sq < 64; sq++ {
		pc, ok := pos.PieceAt(sq)
		if !ok || pc.Kind == King {
			continue
		}
		switch pc.Kind {
		case Knight:
			minors++
			onlyBishops = false
		case Bishop:
			minors++
			bishopShades[(sq.File()+sq.Rank())%2] = true
		default:
			return false
		}
	}
	if minors <= 1 {
		return true
	}
	return onlyBishops && len(bishopShades) == 1
}
