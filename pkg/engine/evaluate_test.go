package engine

import (
	"strings"
	"testing"

	"furrybot/pkg/rules"
)

const (
	startFEN        = rules.StartFEN
	middlegameFEN   = "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"
	unbalancedFEN   = "r3k2r/pp3ppp/2n5/3q4/8/2N2B2/PP3PPP/R2Q1RK1 b kq - 0 14"
	whiteMatedFEN   = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	blackMatedFEN   = "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1"
	stalemateFEN    = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	mateInOneWhite  = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	mateInOneBlack  = "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1"
	singleReplyFEN  = "rnbqkbnr/ppppp1pp/8/5p1Q/4P3/8/PPPP1PPP/RNB1KBNR b KQkq - 1 2"
	promotionRace   = "8/P6k/8/8/8/8/6p1/K7 w - - 0 1"
	bishopEndingFEN = "8/5k2/3b4/8/8/2B5/5K2/8 w - - 0 40"
	rookEndingFEN   = "8/5k2/3p4/8/8/2P5/5K2/4R3 w - - 0 1"
)

type loader struct {
	name string
	load func(fen string) (rules.Position, error)
}

var loaders = []loader{
	{"notnil", func(fen string) (rules.Position, error) { return rules.NewNotnilFEN(fen) }},
	{"dragon", func(fen string) (rules.Position, error) { return rules.NewDragonFEN(fen) }},
}

func mustLoad(t *testing.T, l loader, fen string) rules.Position {
	t.Helper()
	pos, err := l.load(fen)
	if err != nil {
		t.Fatalf("%s: load %q: %v", l.name, fen, err)
	}
	return pos
}

// mirrorFEN rotates the board by 180 degrees, swaps piece colors and the side
// to move. Castling and en passant rights are dropped.
func mirrorFEN(fen string) string {
	fields := strings.Fields(fen)
	ranks := strings.Split(fields[0], "/")
	out := make([]string, len(ranks))
	for i, rank := range ranks {
		var sb strings.Builder
		runes := []rune(rank)
		for j := len(runes) - 1; j >= 0; j-- {
			r := runes[j]
			switch {
			case r >= 'a' && r <= 'z':
				r = r - 'a' + 'A'
			case r >= 'A' && r <= 'Z':
				r = r - 'A' + 'a'
			}
			sb.WriteRune(r)
		}
		out[len(ranks)-1-i] = sb.String()
	}
	side := "w"
	if fields[1] == "w" {
		side = "b"
	}
	return strings.Join(out, "/") + " " + side + " - - 0 1"
}

func TestMaterialStartIsBalanced(t *testing.T) {
	for _, l := range loaders {
		pos := mustLoad(t, l, startFEN)
		if got := Material(pos); got != 0 {
			t.Errorf("%s: Material = %d, want 0", l.name, got)
		}
		if got := Positional(pos, DefaultTables); got != 0 {
			t.Errorf("%s: Positional = %d, want 0", l.name, got)
		}
		if got := Evaluate(pos, 0); got != 0 {
			t.Errorf("%s: Evaluate = %d, want 0", l.name, got)
		}
	}
}

func TestMaterialCountsPieceValues(t *testing.T) {
	// white: K R B P vs black: K N
	pos := mustLoad(t, loaders[0], "4k3/8/3n4/8/8/8/4P3/2B1K2R w - - 0 1")
	want := Score(500 + 330 + 100 - 320)
	if got := Material(pos); got != want {
		t.Errorf("Material = %d, want %d", got, want)
	}
}

func TestEvaluationIsAntisymmetric(t *testing.T) {
	for _, l := range loaders {
		for _, fen := range []string{startFEN, middlegameFEN, unbalancedFEN, promotionRace, bishopEndingFEN} {
			pos := mustLoad(t, l, fen)
			mirror := mustLoad(t, l, mirrorFEN(fen))
			if a, b := Material(pos), Material(mirror); a != -b {
				t.Errorf("%s %q: material %d, mirrored %d", l.name, fen, a, b)
			}
			if a, b := Positional(pos, DefaultTables), Positional(mirror, DefaultTables); a != -b {
				t.Errorf("%s %q: positional %d, mirrored %d", l.name, fen, a, b)
			}
			if a, b := Evaluate(pos, 0), Evaluate(mirror, 0); a != -b {
				t.Errorf("%s %q: evaluate %d, mirrored %d", l.name, fen, a, b)
			}
		}
	}
}

func TestCheckmateScores(t *testing.T) {
	for _, l := range loaders {
		white := mustLoad(t, l, whiteMatedFEN)
		black := mustLoad(t, l, blackMatedFEN)
		for depth := 0; depth <= 3; depth++ {
			if got, want := Evaluate(white, depth), -(MateScore + Score(depth)); got != want {
				t.Errorf("%s: white mated at depth %d = %d, want %d", l.name, depth, got, want)
			}
			if got, want := Evaluate(black, depth), MateScore+Score(depth); got != want {
				t.Errorf("%s: black mated at depth %d = %d, want %d", l.name, depth, got, want)
			}
		}
		if Evaluate(black, 2) <= Evaluate(black, 1) {
			t.Errorf("%s: a faster mate does not score higher", l.name)
		}
		if !IsMate(Evaluate(black, 0)) || !IsMate(Evaluate(white, 0)) {
			t.Errorf("%s: mate scores not recognized by IsMate", l.name)
		}
	}
}

func TestStalemateIsZero(t *testing.T) {
	for _, l := range loaders {
		pos := mustLoad(t, l, stalemateFEN)
		if got := Evaluate(pos, 2); got != 0 {
			t.Errorf("%s: stalemate = %d, want 0", l.name, got)
		}
	}
}

func TestRepetitionPenaltyIgnoresSideToMove(t *testing.T) {
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, factory := range []rules.Factory{rules.NewNotnil, rules.NewDragon} {
		// white to move after the third occurrence of the start position
		pos, err := factory(shuffle)
		if err != nil {
			t.Fatal(err)
		}
		if got := Evaluate(pos, 1); got != RepetitionPenalty {
			t.Errorf("white to move: %d, want %d", got, RepetitionPenalty)
		}
		// black to move after the third occurrence of the position after Nf3
		pos, err = factory(append([]string{"g1f3", "g8f6", "f3g1", "f6g8"}, shuffle[:5]...))
		if err != nil {
			t.Fatal(err)
		}
		if pos.Status() != rules.ThreefoldRepetition {
			t.Fatalf("status %s, want threefold repetition", pos.Status())
		}
		if got := Evaluate(pos, 1); got != RepetitionPenalty {
			t.Errorf("black to move: %d, want %d", got, RepetitionPenalty)
		}
	}
}
