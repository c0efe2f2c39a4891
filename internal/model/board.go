package model

import (
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func pieceTypeOf(k engine.Kind) PieceType {
	return PieceType(k.String())
}

func (p PieceType) kind() (engine.Kind, error) {
	k, ok := engine.KindFromString(string(p))
	if !ok {
		return engine.NoKind, fmt.Errorf("%q: %w", p, ErrUnknownPiece)
	}
	return k, nil
}

type BoardState struct {
	Board             [][]*Piece `json:"board"`
	BlackKingPosition Position   `json:"blackKingPosition"`
	WhiteKingPosition Position   `json:"whiteKingPosition"`
}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    string    `json:"color"`
	Position Position  `json:"position"`
}

// Position is a board coordinate as the front end sees it: X is the file
// (0 = a), Y is the row from the top (0 = eighth rank).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func positionOf(sq engine.Square) Position {
	return Position{X: sq.Col, Y: sq.Row}
}

// ParsePosition reads an algebraic square name such as "e2".
func ParsePosition(name string) (Position, error) {
	sq, err := engine.ParseSquare(name)
	if err != nil {
		return Position{}, err
	}
	return positionOf(sq), nil
}

func (p Position) square() engine.Square {
	return engine.Square{Row: p.Y, Col: p.X}
}

func (p Position) inBounds() bool {
	return engine.InBounds(p.Y, p.X)
}

func (p Position) String() string {
	return p.square().String()
}

func newPiece(p engine.Piece, sq engine.Square) *Piece {
	if p.IsEmpty() {
		return nil
	}
	return &Piece{Type: pieceTypeOf(p.Kind), Color: p.Color.String(), Position: positionOf(sq)}
}

func newBoardState(b engine.Board) *BoardState {
	grid := b.Grid()
	state := &BoardState{Board: make([][]*Piece, engine.Size)}
	for row := range grid {
		state.Board[row] = make([]*Piece, engine.Size)
		for col, p := range grid[row] {
			sq := engine.Square{Row: row, Col: col}
			state.Board[row][col] = newPiece(p, sq)
			if p.Kind != engine.King {
				continue
			}
			if p.Color == engine.White {
				state.WhiteKingPosition = positionOf(sq)
			} else {
				state.BlackKingPosition = positionOf(sq)
			}
		}
	}
	return state
}
