package engine

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"furrybot/pkg/rules"
)

//go:embed piecetable.json
var defaultTableJSON []byte

// ErrTableShape indicates a piece-square table set with missing kinds or wrong lengths
var ErrTableShape = errors.New("malformed piece-square table")

// Tables holds one 64 entry table per piece kind, indexed from a1 in white's view
type Tables [7][64]Score

// DefaultTables is the embedded table set used by NewEngine
var DefaultTables = mustParseTables(defaultTableJSON)

var tableKeys = map[string]rules.PieceKind{
	"p": rules.Pawn,
	"n": rules.Knight,
	"b": rules.Bishop,
	"r": rules.Rook,
	"q": rules.Queen,
	"k": rules.King,
}

// LoadTables reads a JSON object mapping p, n, b, r, q and k to 64 integers each
func LoadTables(r io.Reader) (*Tables, error) {
	raw := map[string][]int{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode piece-square tables: %w", err)
	}
	var t Tables
	for key, kind := range tableKeys {
		weights, ok := raw[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrTableShape, key)
		}
		if len(weights) != 64 {
			return nil, fmt.Errorf("%w: %q has %d entries", ErrTableShape, key, len(weights))
		}
		for i, w := range weights {
			t[kind][i] = Score(w)
		}
	}
	return &t, nil
}

func mustParseTables(data []byte) *Tables {
	t, err := LoadTables(bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	return t
}

// Weight returns the positional bonus of pc standing on sq from its owner's view.
// Black reads the table rotated by 180 degrees.
func (t *Tables) Weight(pc rules.Piece, sq rules.Square) Score {
	idx := int(sq)
	if pc.Color == rules.Black {
		idx = 63 - idx
	}
	return t[pc.Kind][idx]
}
