package engine

import "furrybot/pkg/rules"

// Perft counts the leaf positions of the full legal move tree up to depth.
// It exercises the same apply/undo path as the search and is used to check
// rules backends against known node counts.
func (e *Engine) Perft(pos rules.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range pos.LegalMoves() {
		undo := pos.Apply(m)
		nodes += e.Perft(pos, depth-1)
		undo()
	}
	return nodes
}

// Divide reports the perft count below each legal move, keyed by coordinate notation
func (e *Engine) Divide(pos rules.Position, depth int) map[string]uint64 {
	out := map[string]uint64{}
	if depth < 1 {
		return out
	}
	for _, m := range pos.LegalMoves() {
		undo := pos.Apply(m)
		n := e.Perft(pos, depth-1)
		undo()
		out[pos.UCI(m)] = n
		e.logf("%s - %d nodes", pos.UCI(m), n)
	}
	return out
}
