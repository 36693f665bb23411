// Package theory names the opening a game has followed. It is used for
// diagnostics only and never influences which move is played.
package theory

import (
	"strings"
	"sync"

	"github.com/notnil/chess"
	"github.com/notnil/chess/opening"

	"furrybot/pkg/rules"
)

var (
	bookOnce sync.Once
	book     *opening.BookECO
)

// eco builds the book on first use. A book that fails to build leaves
// openings unnamed instead of taking the caller down.
func eco() *opening.BookECO {
	bookOnce.Do(func() {
		defer func() {
			if recover() != nil {
				book = nil
			}
		}()
		book = opening.NewBookECO()
	})
	return book
}

// Opening is a named ECO line
type Opening struct {
	Code  string
	Title string
	Plies int // length of the named line
}

// Lookup returns the deepest named opening the history passed through, or
// nil when none matches. Unparseable histories are treated as unnamed.
func Lookup(history []string) *Opening {
	moves, err := replay(history)
	if err != nil {
		return nil
	}
	b := eco()
	if b == nil {
		return nil
	}
	op := b.Find(moves)
	if op == nil {
		return nil
	}
	// the book stores each line as space separated coordinate moves
	return &Opening{Code: op.Code(), Title: op.Title(), Plies: len(strings.Fields(op.PGN()))}
}

// Name returns the title of Lookup, or "" when the line is unnamed
func Name(history []string) string {
	if op := Lookup(history); op != nil {
		return op.Title
	}
	return ""
}

func replay(history []string) ([]*chess.Move, error) {
	pos, err := rules.NewNotnil(history)
	if err != nil {
		return nil, err
	}
	return pos.(*rules.NotnilPosition).Moves(), nil
}
