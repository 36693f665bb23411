package engine

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"furrybot/pkg/rules"
)

func tableJSON(skip string, length int) string {
	var parts []string
	for _, key := range []string{"p", "n", "b", "r", "q", "k"} {
		if key == skip {
			continue
		}
		weights := make([]string, length)
		for i := range weights {
			weights[i] = fmt.Sprint(i)
		}
		parts = append(parts, fmt.Sprintf("%q: [%s]", key, strings.Join(weights, ",")))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func TestLoadTables(t *testing.T) {
	tables, err := LoadTables(strings.NewReader(tableJSON("", 64)))
	if err != nil {
		t.Fatal(err)
	}
	a1 := rules.NewSquare(0, 0)
	h8 := rules.NewSquare(7, 7)
	if got := tables.Weight(rules.Piece{Kind: rules.Rook, Color: rules.White}, h8); got != 63 {
		t.Errorf("white rook h8 = %d, want 63", got)
	}
	if got := tables.Weight(rules.Piece{Kind: rules.Rook, Color: rules.Black}, h8); got != 0 {
		t.Errorf("black rook h8 = %d, want 0", got)
	}
	if got := tables.Weight(rules.Piece{Kind: rules.Rook, Color: rules.Black}, a1); got != 63 {
		t.Errorf("black rook a1 = %d, want 63", got)
	}
}

func TestLoadTablesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		shape bool
	}{
		{"missing kind", tableJSON("q", 64), true},
		{"short table", tableJSON("", 63), true},
		{"long table", tableJSON("", 65), true},
		{"not json", "pawns: 100", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTables(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, ErrTableShape); got != tt.shape {
				t.Errorf("errors.Is(%v, ErrTableShape) = %v, want %v", err, got, tt.shape)
			}
		})
	}
}

func TestDefaultTablesMirrorForBlack(t *testing.T) {
	e2 := rules.NewSquare(4, 1)
	e7 := rules.NewSquare(4, 6)
	white := DefaultTables.Weight(rules.Piece{Kind: rules.Pawn, Color: rules.White}, e2)
	black := DefaultTables.Weight(rules.Piece{Kind: rules.Pawn, Color: rules.Black}, e7)
	if white != -20 || black != -20 {
		t.Errorf("pawn on its home e-file square: white %d, black %d, want -20", white, black)
	}
	g1 := rules.NewSquare(6, 0)
	if got := DefaultTables.Weight(rules.Piece{Kind: rules.King, Color: rules.White}, g1); got != 30 {
		t.Errorf("castled white king = %d, want 30", got)
	}
}

func TestPieceValue(t *testing.T) {
	want := map[rules.PieceKind]Score{
		rules.Pawn: 100, rules.Knight: 320, rules.Bishop: 330,
		rules.Rook: 500, rules.Queen: 900, rules.King: 0, rules.NoKind: 0,
	}
	for kind, v := range want {
		if got := PieceValue(kind); got != v {
			t.Errorf("PieceValue(%v) = %d, want %d", kind, got, v)
		}
	}
	if got := PieceValue(rules.PieceKind(42)); got != 0 {
		t.Errorf("PieceValue of an unknown kind = %d", got)
	}
}
