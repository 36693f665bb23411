// Package rules defines the contract the engine uses to talk to a chess rules
// implementation, together with backends built on third-party move generators.
package rules

import "fmt"

// Color is the side a piece belongs to or the side to move
type Color uint8

const (
	White Color = iota
	Black
)

// Sign returns +1 for White and -1 for Black
func (c Color) Sign() int {
	if c == Black {
		return -1
	}
	return 1
}

// Other returns the opposing color
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// PieceKind is a piece type without color
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = [...]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the lowercase letter used for this kind in coordinate notation
func (k PieceKind) Letter() string {
	if k == NoKind || int(k) >= len(kindLetters) {
		return ""
	}
	return string(kindLetters[k])
}

// Piece is a colored piece standing on a square
type Piece struct {
	Kind  PieceKind
	Color Color
}

// Square indexes the board from a1 (0) to h8 (63), file-major within a rank
type Square uint8

// NewSquare builds a square from a zero based file and rank
func NewSquare(file, rank int) Square {
	return Square(file + 8*rank)
}

// File returns the zero based file (a = 0)
func (s Square) File() int { return int(s) % 8 }

// Rank returns the zero based rank (1st rank = 0)
func (s Square) Rank() int { return int(s) / 8 }

func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

// Move is a legal transition produced by Position.LegalMoves
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
	Capture   bool
	Check     bool

	// native is the backend's own representation, consumed by Apply
	native interface{}
}

// UCI returns the coordinate notation of the move: <from><to>[promotion]
func (m Move) UCI() string {
	return m.From.String() + m.To.String() + m.Promotion.Letter()
}

func (m Move) String() string { return m.UCI() }

// Status describes whether and how the game has ended in a position
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	ThreefoldRepetition
	FiftyMoveRule
	InsufficientMaterial
)

var statusNames = [...]string{"ongoing", "checkmate", "stalemate", "threefold repetition", "fifty-move rule", "insufficient material"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Position is a mutable game state owned by a single move-selection request.
//
// Apply returns the function that reverts it. Undo functions must be called
// exactly once and in the reverse order of the Apply calls that produced them;
// implementations panic on misuse.
type Position interface {
	Turn() Color
	PieceAt(sq Square) (Piece, bool)
	LegalMoves() []Move
	Apply(m Move) (undo func())
	Status() Status
	// GameOver reports any terminal status, including draws the evaluator does not score specially.
	GameOver() bool
	// Ply counts half-moves since the initial position, including applied search moves.
	Ply() int
	FEN() string
	UCI(m Move) string
}

// Factory builds a Position by replaying a move history from the initial position
type Factory func(history []string) (Position, error)

// FindUCI returns the legal move with the given coordinate notation
func FindUCI(pos Position, uci string) (Move, bool) {
	for _, m := range pos.LegalMoves() {
		if pos.UCI(m) == uci {
			return m, true
		}
	}
	return Move{}, false
}
