package model

import "github.com/benbeisheim/chessrules-backend/internal/engine"

// MoveRequest is a move as picked on the board: two squares and, for a pawn
// reaching the last rank, the promotion piece.
type MoveRequest struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

type Ply struct {
	Piece          *Piece          `json:"piece"`
	From           Position        `json:"from"`
	To             Position        `json:"to"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceType       `json:"promotion,omitempty"`
	Notation       string          `json:"notation"`
}

// Move pairs white's ply with black's reply; BlackPly is nil until black
// has moved.
type Move struct {
	WhitePly Ply  `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

type SimpleMove struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

func newPly(m engine.Move, notation string) Ply {
	ply := Ply{
		Piece:         newPiece(m.Piece, m.From),
		From:          positionOf(m.From),
		To:            positionOf(m.To),
		CapturedPiece: newPiece(m.Captured, m.CaptureSquare()),
		Notation:      notation,
	}
	if m.Tag == engine.TagPromotion {
		ply.Promotion = pieceTypeOf(m.Promotion)
	}
	if from, to, ok := m.RookPath(); ok {
		ply.CastleRookMove = &CastleRookMove{From: positionOf(from), To: positionOf(to)}
	}
	return ply
}

func newSimpleMove(m engine.Move) SimpleMove {
	sm := SimpleMove{From: positionOf(m.From), To: positionOf(m.To)}
	if m.Tag == engine.TagPromotion {
		sm.Promotion = pieceTypeOf(m.Promotion)
	}
	return sm
}

// pairPlies groups plies into white/black move pairs. Games always start
// with white to move.
func pairPlies(plies []Ply) []Move {
	history := make([]Move, 0, (len(plies)+1)/2)
	for i := 0; i < len(plies); i += 2 {
		mv := Move{WhitePly: plies[i]}
		if i+1 < len(plies) {
			black := plies[i+1]
			mv.BlackPly = &black
		}
		history = append(history, mv)
	}
	return history
}
