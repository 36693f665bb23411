// Package engine picks moves with a fixed-depth minimax search with
// alpha-beta pruning over a rules.Position, scored by a white-oriented
// static evaluator.
package engine

import (
	"fmt"
	"io"
	"log"

	"furrybot/pkg/rules"
)

// Engine is the Minimax Engine. It is not safe for concurrent use; give every
// goroutine its own Engine.
type Engine struct {
	// Depth is the number of plies searched below each root candidate
	Depth int
	// Tables are the piece-square weights; nil means DefaultTables
	Tables *Tables
	// NewPosition rebuilds a position from a move history; nil means rules.NewNotnil
	NewPosition rules.Factory
	// Order optionally reorders candidates at every node
	Order Orderer
	// DisablePruning searches the full tree with an unchanged window
	DisablePruning bool
	// Log receives one line per selected move
	Log *log.Logger

	Visited        uint
	EvaluatedNodes uint
}

// NewEngine returns an Engine searching DefaultDepth plies with the default tables
func NewEngine() *Engine {
	return &Engine{
		Depth:       DefaultDepth,
		Tables:      DefaultTables,
		NewPosition: rules.NewNotnil,
		Log:         log.New(io.Discard, "[FURRY] ", 0),
	}
}

// ResetStats will reset the Statistics of the Engine
func (e *Engine) ResetStats() {
	e.Visited = 0
	e.EvaluatedNodes = 0
}

// Evaluate scores pos with the engine's tables
func (e *Engine) Evaluate(pos rules.Position, depth int) Score {
	e.EvaluatedNodes++
	return EvaluateWith(pos, depth, e.tables())
}

func (e *Engine) tables() *Tables {
	if e.Tables == nil {
		return DefaultTables
	}
	return e.Tables
}

func (e *Engine) depth() int {
	if e.Depth < 0 {
		return 0
	}
	return e.Depth
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.Log != nil {
		e.Log.Output(2, fmt.Sprintf(format, args...))
	}
}
