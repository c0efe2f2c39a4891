package engine

import "errors"

var (
	ErrOutOfBounds   = errors.New("square out of bounds")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrInvalidMove   = errors.New("invalid move")
	ErrGameOver      = errors.New("game is over")
	ErrUnknownMove   = errors.New("unknown move")
)
