package chess

import (
	"errors"
	"fmt"
)

// InvalidIndexError reports an out-of-board 0x88 index.
type InvalidIndexError struct {
	Index int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("chess: invalid index %d", e.Index)
}

// InvalidMoveError reports a move that cannot be resolved against the
// current position.
type InvalidMoveError struct {
	From, To Square
}

func (e *InvalidMoveError) Error() string {
	from, to := "?", "?"
	if e.From.OnBoard() {
		from = e.From.String()
	}
	if e.To.OnBoard() {
		to = e.To.String()
	}
	return fmt.Sprintf("chess: invalid move %s-%s", from, to)
}

// Sentinel errors visible at the boundary, per the external interface's
// error list.
var (
	ErrIllegalKingSideCastle  = errors.New("chess: illegal king side castle")
	ErrIllegalQueenSideCastle = errors.New("chess: illegal queen side castle")
	ErrIllegalCapture         = errors.New("chess: illegal capture")
	ErrUnknownPiece           = errors.New("chess: unknown piece")
	ErrAmbiguousMoveNotation  = errors.New("chess: ambiguous move notation")
	ErrInvalidPromotion       = errors.New("chess: invalid promotion")
	ErrNoMoveToUndo           = errors.New("chess: no move to undo")
)
