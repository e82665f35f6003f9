package game

import (
	"errors"
	"fmt"

	"github.com/daystram/chessrules/board"
)

var (
	ErrInvalidMove         = errors.New("invalid move")
	ErrInvalidHistoryIndex = errors.New("invalid history index")
)

// MoveError reports a rejected Execute call together with the history index and the move
// it was given.
type MoveError struct {
	Err   error
	Index int
	Move  board.Move
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v: index=%d move=%s (%s)", e.Err, e.Index, e.Move.UCI(), e.Move.IsTurn)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
