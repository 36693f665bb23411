package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/notnil/chess"
)

// notations tried in order when replaying a history entry. SAN would read
// "g1f3" as the pawn move "f3", so coordinates go to the UCI decoder first.
var (
	sanFirst = []chess.Notation{
		chess.AlgebraicNotation{},
		chess.UCINotation{},
		chess.LongAlgebraicNotation{},
	}
	uciFirst = []chess.Notation{
		chess.UCINotation{},
		chess.AlgebraicNotation{},
		chess.LongAlgebraicNotation{},
	}
	coordinates = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][qrbn]?$`)
)

// NotnilPosition is a Position backed by github.com/notnil/chess. Positions
// are immutable there, so apply/undo is a stack of positions.
type NotnilPosition struct {
	stack    []*chess.Position
	moves    []*chess.Move // from stack[0] to the top, history included
	counts   map[string]int
	startPly int
	startFEN string
}

// NewNotnil replays history from the standard initial position. Each entry may
// be SAN ("Nf3", "exd5", "O-O"), UCI ("g1f3") or long algebraic ("Ng1-f3").
func NewNotnil(history []string) (Position, error) {
	p, err := NewNotnilFEN(chess.NewGame().Position().String())
	if err != nil {
		return nil, err
	}
	if err := p.replay(history); err != nil {
		return nil, err
	}
	return p, nil
}

// NewNotnilFEN starts from an arbitrary FEN with no history
func NewNotnilFEN(fen string) (*NotnilPosition, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	root := chess.NewGame(opt).Position()
	p := &NotnilPosition{
		stack:    []*chess.Position{root},
		counts:   map[string]int{},
		startPly: plyFromFEN(root.String()),
		startFEN: root.String(),
	}
	p.counts[repetitionKey(root.String())]++
	return p, nil
}

func (p *NotnilPosition) replay(history []string) error {
	for i, raw := range history {
		mv, err := p.decode(raw)
		if err != nil {
			return replayError(i+1, raw, err)
		}
		p.push(mv)
	}
	return nil
}

// decode parses one history entry leniently
func (p *NotnilPosition) decode(raw string) (*chess.Move, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "0-0-0", "O-O-O")
	s = strings.ReplaceAll(s, "0-0", "O-O")
	if s == "" {
		return nil, fmt.Errorf("empty move")
	}
	top := p.top()
	notations := sanFirst
	// plain coordinates, possibly with a separator: "g1f3", "e2-e4", "d4xe5"
	if c := strings.NewReplacer("-", "", "x", "").Replace(s); coordinates.MatchString(c) {
		s, notations = c, uciFirst
	}
	var lastErr error
	for _, n := range notations {
		mv, err := n.Decode(top, s)
		if err == nil && mv != nil && isValid(top, mv) {
			return mv, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("not a legal move in %s", top.String())
	}
	return nil, lastErr
}

func isValid(pos *chess.Position, mv *chess.Move) bool {
	for _, v := range pos.ValidMoves() {
		if v.S1() == mv.S1() && v.S2() == mv.S2() && v.Promo() == mv.Promo() {
			return true
		}
	}
	return false
}

func (p *NotnilPosition) top() *chess.Position {
	return p.stack[len(p.stack)-1]
}

// push resolves mv against the generated legal moves so tags are populated
func (p *NotnilPosition) push(mv *chess.Move) {
	top := p.top()
	for _, v := range top.ValidMoves() {
		if v.S1() == mv.S1() && v.S2() == mv.S2() && v.Promo() == mv.Promo() {
			mv = v
			break
		}
	}
	next := top.Update(mv)
	p.stack = append(p.stack, next)
	p.moves = append(p.moves, mv)
	p.counts[repetitionKey(next.String())]++
}

func (p *NotnilPosition) pop() {
	last := p.top()
	p.counts[repetitionKey(last.String())]--
	p.stack = p.stack[:len(p.stack)-1]
	p.moves = p.moves[:len(p.moves)-1]
}

// Moves returns the moves applied since the starting position, history first
func (p *NotnilPosition) Moves() []*chess.Move {
	return append([]*chess.Move(nil), p.moves...)
}

func (p *NotnilPosition) Turn() Color {
	if p.top().Turn() == chess.Black {
		return Black
	}
	return White
}

func (p *NotnilPosition) PieceAt(sq Square) (Piece, bool) {
	pc := p.top().Board().Piece(chess.Square(sq))
	if pc == chess.NoPiece {
		return Piece{}, false
	}
	return Piece{Kind: notnilKind(pc.Type()), Color: notnilColor(pc.Color())}, true
}

func (p *NotnilPosition) LegalMoves() []Move {
	valid := p.top().ValidMoves()
	out := make([]Move, 0, len(valid))
	for _, v := range valid {
		out = append(out, Move{
			From:      Square(v.S1()),
			To:        Square(v.S2()),
			Promotion: notnilKind(v.Promo()),
			Capture:   v.HasTag(chess.Capture) || v.HasTag(chess.EnPassant),
			Check:     v.HasTag(chess.Check),
			native:    v,
		})
	}
	return out
}

func (p *NotnilPosition) Apply(m Move) func() {
	mv, ok := m.native.(*chess.Move)
	if !ok {
		panic(fmt.Sprintf("rules: move %s was not produced by a notnil position", m.UCI()))
	}
	p.push(mv)
	depth := len(p.stack)
	done := false
	return func() {
		if done || len(p.stack) != depth {
			panic(fmt.Sprintf("rules: undo of %s out of order", m.UCI()))
		}
		done = true
		p.pop()
	}
}

func (p *NotnilPosition) Status() Status {
	top := p.top()
	switch top.Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	}
	fen := top.String()
	if p.counts[repetitionKey(fen)] >= 3 {
		return ThreefoldRepetition
	}
	if halfmoveClock(fen) >= 100 {
		return FiftyMoveRule
	}
	if insufficientMaterial(p) {
		return InsufficientMaterial
	}
	return Ongoing
}

func (p *NotnilPosition) GameOver() bool {
	return p.Status() != Ongoing
}

func (p *NotnilPosition) Ply() int {
	return p.startPly + len(p.stack) - 1
}

func (p *NotnilPosition) FEN() string {
	return p.top().String()
}

func (p *NotnilPosition) UCI(m Move) string {
	if mv, ok := m.native.(*chess.Move); ok {
		return chess.UCINotation{}.Encode(p.top(), mv)
	}
	return m.UCI()
}

// StartFEN returns the position the history was replayed from
func (p *NotnilPosition) StartFEN() string {
	return p.startFEN
}

func notnilKind(t chess.PieceType) PieceKind {
	switch t {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return NoKind
}

func notnilColor(c chess.Color) Color {
	if c == chess.Black {
		return Black
	}
	return White
}
