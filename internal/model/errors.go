package model

import "errors"

var (
	ErrNothingToRedo     = errors.New("nothing to redo")
	ErrPromotionRequired = errors.New("promotion piece required")
	ErrUnknownPiece      = errors.New("unknown piece type")
	ErrConnectionExists  = errors.New("connection already exists")
	ErrNotConnected      = errors.New("not connected")
)
