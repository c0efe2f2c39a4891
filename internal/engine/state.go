// Package engine implements the chess rules: board, move generation, the
// king-safety filter and a reversible game state.
//
// A GameState is not safe for concurrent use; callers serialize access.
package engine

import "fmt"

// Status is the terminal classification of the position to move.
type Status uint8

const (
	InProgress Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "in-progress"
}

// historyEntry keeps what undo cannot derive from the move itself.
type historyEntry struct {
	move      Move
	castling  CastlingRights
	enPassant *Square
	legal     []Move
}

// GameState owns the board and everything needed to play and take back
// moves.
type GameState struct {
	board     Board
	toMove    Color
	castling  CastlingRights
	enPassant *Square
	history   []historyEntry

	legal      []Move
	legalFresh bool
	checkmate  bool
	stalemate  bool
}

// NewGameState returns the standard initial position with white to move
// and full castling rights.
func NewGameState() *GameState {
	return &GameState{
		board:    NewBoard(),
		toMove:   White,
		castling: fullCastlingRights(),
	}
}

func (g *GameState) position() position {
	return position{board: &g.board, side: g.toMove, castling: g.castling, enPassant: g.enPassant}
}

// ValidMoves recomputes the legal moves of the side to move and refreshes
// the checkmate and stalemate flags. The returned slice is the caller's.
func (g *GameState) ValidMoves() []Move {
	g.refresh()
	return append([]Move(nil), g.legal...)
}

func (g *GameState) refresh() {
	pos := g.position()
	g.legal = filterLegal(pos, generatePseudoLegal(pos))
	g.legalFresh = true
	checked := inCheck(&g.board, g.toMove)
	g.checkmate = len(g.legal) == 0 && checked
	g.stalemate = len(g.legal) == 0 && !checked
}

func (g *GameState) ensureLegal() {
	if !g.legalFresh {
		g.refresh()
	}
}

// MakeMove plays m, which must be one of the current legal moves (matched by
// origin, destination and promotion kind). The legal set and terminal flags
// for the new side to move are recomputed before returning.
func (g *GameState) MakeMove(m Move) error {
	g.ensureLegal()
	if g.checkmate || g.stalemate {
		return fmt.Errorf("make move %s: %w", m, ErrGameOver)
	}
	legal, ok := g.lookup(m)
	if !ok {
		return fmt.Errorf("make move %s: %w", m, ErrInvalidMove)
	}

	g.history = append(g.history, historyEntry{move: legal, castling: g.castling, enPassant: g.enPassant, legal: g.legal})
	applyMove(&g.board, legal)
	g.castling.update(legal)
	g.enPassant = nil
	if legal.Tag == TagDoublePawnAdvance {
		skipped := Square{Row: (legal.From.Row + legal.To.Row) / 2, Col: legal.From.Col}
		g.enPassant = &skipped
	}
	g.toMove = g.toMove.Opponent()
	g.refresh()
	return nil
}

func (g *GameState) lookup(m Move) (Move, bool) {
	for _, candidate := range g.legal {
		if candidate.Same(m) {
			return candidate, true
		}
	}
	return Move{}, false
}

// UndoMove takes back the last move and returns it. The legal set saved
// before the move is restored; a position a move was played from is never
// terminal, so both flags are cleared.
func (g *GameState) UndoMove() (Move, error) {
	if len(g.history) == 0 {
		return Move{}, ErrNothingToUndo
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	revertMove(&g.board, last.move)
	g.castling = last.castling
	g.enPassant = last.enPassant
	g.toMove = g.toMove.Opponent()

	g.legal = last.legal
	g.legalFresh = true
	g.checkmate = false
	g.stalemate = false
	return last.move, nil
}

// Board returns a copy of the board.
func (g *GameState) Board() Board {
	return g.board
}

func (g *GameState) Piece(row, col int) (Piece, error) {
	return g.board.Get(row, col)
}

func (g *GameState) ToMove() Color {
	return g.toMove
}

func (g *GameState) CastlingRights() CastlingRights {
	return g.castling
}

// EnPassantTarget returns the square skipped by the last double pawn
// advance, if the last move was one.
func (g *GameState) EnPassantTarget() (Square, bool) {
	if g.enPassant == nil {
		return Square{}, false
	}
	return *g.enPassant, true
}

func (g *GameState) Checkmate() bool {
	return g.checkmate
}

func (g *GameState) Stalemate() bool {
	return g.stalemate
}

func (g *GameState) Status() Status {
	switch {
	case g.checkmate:
		return Checkmate
	case g.stalemate:
		return Stalemate
	}
	return InProgress
}

func (g *GameState) InCheck() bool {
	return inCheck(&g.board, g.toMove)
}

// KingSafety reports checkers and pinned pieces for the side to move.
func (g *GameState) KingSafety() KingSafety {
	return analyzeKingSafety(&g.board, g.toMove)
}

// History returns the applied moves, oldest first.
func (g *GameState) History() []Move {
	moves := make([]Move, len(g.history))
	for i, h := range g.history {
		moves[i] = h.move
	}
	return moves
}

// LastMove returns the most recently applied move.
func (g *GameState) LastMove() (Move, bool) {
	if len(g.history) == 0 {
		return Move{}, false
	}
	return g.history[len(g.history)-1].move, true
}

// Clone returns an independent copy of the state.
func (g *GameState) Clone() *GameState {
	c := *g
	c.history = append([]historyEntry(nil), g.history...)
	c.legal = append([]Move(nil), g.legal...)
	return &c
}
