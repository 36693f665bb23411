package rules

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// DragonPosition is a Position backed by github.com/dylhunn/dragontoothmg,
// which mutates one board in place and hands back unapply closures.
type DragonPosition struct {
	board    dragontoothmg.Board
	undos    []func()
	hashes   []uint64
	counts   map[uint64]int
	startPly int
}

// NewDragon replays a history of coordinate moves ("e2e4", "e7e8q") from the
// standard initial position.
func NewDragon(history []string) (Position, error) {
	p, err := NewDragonFEN(StartFEN)
	if err != nil {
		return nil, err
	}
	for i, raw := range history {
		s := strings.ToLower(strings.NewReplacer("-", "", " ", "").Replace(raw))
		mv, err := dragontoothmg.ParseMove(s)
		if err != nil {
			return nil, replayError(i+1, raw, err)
		}
		legal, ok := p.find(mv)
		if !ok {
			return nil, replayError(i+1, raw, nil)
		}
		p.push(legal)
	}
	return p, nil
}

// NewDragonFEN starts from an arbitrary FEN with no history
func NewDragonFEN(fen string) (p *DragonPosition, err error) {
	if len(strings.Fields(fen)) < 4 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("%w: %v", ErrInvalidFEN, r)
		}
	}()
	p = &DragonPosition{
		board:    dragontoothmg.ParseFen(fen),
		counts:   map[uint64]int{},
		startPly: plyFromFEN(fen),
	}
	h := p.board.Hash()
	p.hashes = append(p.hashes, h)
	p.counts[h]++
	return p, nil
}

func (p *DragonPosition) find(mv dragontoothmg.Move) (dragontoothmg.Move, bool) {
	for _, legal := range p.board.GenerateLegalMoves() {
		if legal.From() == mv.From() && legal.To() == mv.To() && legal.Promote() == mv.Promote() {
			return legal, true
		}
	}
	return 0, false
}

func (p *DragonPosition) push(mv dragontoothmg.Move) {
	p.undos = append(p.undos, p.board.Apply(mv))
	h := p.board.Hash()
	p.hashes = append(p.hashes, h)
	p.counts[h]++
}

func (p *DragonPosition) pop() {
	h := p.hashes[len(p.hashes)-1]
	p.counts[h]--
	p.hashes = p.hashes[:len(p.hashes)-1]
	unapply := p.undos[len(p.undos)-1]
	p.undos = p.undos[:len(p.undos)-1]
	unapply()
}

func (p *DragonPosition) Turn() Color {
	if p.board.Wtomove {
		return White
	}
	return Black
}

func (p *DragonPosition) PieceAt(sq Square) (Piece, bool) {
	bit := uint64(1) << uint(sq)
	for _, side := range []struct {
		bb    *dragontoothmg.Bitboards
		color Color
	}{{&p.board.White, White}, {&p.board.Black, Black}} {
		if side.bb.All&bit == 0 {
			continue
		}
		switch {
		case side.bb.Pawns&bit != 0:
			return Piece{Pawn, side.color}, true
		case side.bb.Knights&bit != 0:
			return Piece{Knight, side.color}, true
		case side.bb.Bishops&bit != 0:
			return Piece{Bishop, side.color}, true
		case side.bb.Rooks&bit != 0:
			return Piece{Rook, side.color}, true
		case side.bb.Queens&bit != 0:
			return Piece{Queen, side.color}, true
		case side.bb.Kings&bit != 0:
			return Piece{King, side.color}, true
		}
	}
	return Piece{}, false
}

func (p *DragonPosition) LegalMoves() []Move {
	legal := p.board.GenerateLegalMoves()
	out := make([]Move, 0, len(legal))
	for _, mv := range legal {
		capture := dragontoothmg.IsCapture(mv, &p.board) || p.isEnPassant(mv)
		unapply := p.board.Apply(mv)
		check := p.board.OurKingInCheck()
		unapply()
		out = append(out, Move{
			From:      Square(mv.From()),
			To:        Square(mv.To()),
			Promotion: PieceKind(mv.Promote()),
			Capture:   capture,
			Check:     check,
			native:    mv,
		})
	}
	return out
}

// isEnPassant spots a pawn moving diagonally onto an empty square
func (p *DragonPosition) isEnPassant(mv dragontoothmg.Move) bool {
	from, to := Square(mv.From()), Square(mv.To())
	pc, ok := p.PieceAt(from)
	if !ok || pc.Kind != Pawn || from.File() == to.File() {
		return false
	}
	_, occupied := p.PieceAt(to)
	return !occupied
}

func (p *DragonPosition) Apply(m Move) func() {
	mv, ok := m.native.(dragontoothmg.Move)
	if !ok {
		panic(fmt.Sprintf("rules: move %s was not produced by a dragon position", m.UCI()))
	}
	p.push(mv)
	depth := len(p.undos)
	done := false
	return func() {
		if done || len(p.undos) != depth {
			panic(fmt.Sprintf("rules: undo of %s out of order", m.UCI()))
		}
		done = true
		p.pop()
	}
}

func (p *DragonPosition) Status() Status {
	if len(p.board.GenerateLegalMoves()) == 0 {
		if p.board.OurKingInCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if p.counts[p.board.Hash()] >= 3 {
		return ThreefoldRepetition
	}
	if p.board.Halfmoveclock >= 100 {
		return FiftyMoveRule
	}
	if insufficientMaterial(p) {
		return InsufficientMaterial
	}
	return Ongoing
}

func (p *DragonPosition) GameOver() bool {
	return p.Status() != Ongoing
}

func (p *DragonPosition) Ply() int {
	return p.startPly + len(p.undos)
}

func (p *DragonPosition) FEN() string {
	return p.board.ToFen()
}

func (p *DragonPosition) UCI(m Move) string {
	if mv, ok := m.native.(dragontoothmg.Move); ok {
		return mv.String()
	}
	return m.UCI()
}
