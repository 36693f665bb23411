package rules

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove indicates a history entry that could not be parsed or is not legal
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed starting position
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// ReplayError reports the history entry that stopped a replay
type ReplayError struct {
	Err  error  // underlying error, usually ErrIllegalMove
	Ply  int    // 1-based index of the failing entry
	Move string // the text of the failing entry
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay ply %d, move %q: %v", e.Ply, e.Move, e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}

func replayError(ply int, move string, cause error) error {
	err := ErrIllegalMove
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrIllegalMove, cause)
	}
	return &ReplayError{Err: err, Ply: ply, Move: move}
}
