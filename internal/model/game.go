package model

import (
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/exp/slices"
)

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// The connections observing a specific game
type GameConnections struct {
	connections map[string]Conn // clientID -> connection
	mu          sync.Mutex
}

// Game is one board session: the engine state plus what the front end needs
// around it (ply history with notation, the redo log and observers).
type Game struct {
	ID          string
	mu          sync.Mutex
	state       *engine.GameState
	plies       []Ply
	redo        []engine.Move // most recently undone last
	connections *GameConnections
	lastActive  time.Time
}

// GameState is the JSON snapshot sent to the front end.
type GameState struct {
	Sound           string         `json:"sound"`
	Board           *BoardState    `json:"boardState"`
	ToMove          string         `json:"toMove"`
	MoveHistory     []Move         `json:"moveHistory"`
	CapturedPieces  CapturedPieces `json:"capturedPieces"`
	IsCheck         bool           `json:"isCheck"`
	Checkers        []Position     `json:"checkers"`
	LegalMoves      []SimpleMove   `json:"legalMoves"`
	EnPassantTarget *Position      `json:"enPassantTarget"`
	Resolve         *string        `json:"resolve"`
	LastMove        *SimpleMove    `json:"lastMove"`
	CanUndo         bool           `json:"canUndo"`
	CanRedo         bool           `json:"canRedo"`
}

// CapturedPieces lists the pieces each side has taken.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		state:       engine.NewGameState(),
		connections: NewGameConnections(),
		lastActive:  time.Now(),
	}
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

// LegalMoves lists the legal moves of the side to move, optionally only
// those starting on from.
func (g *Game) LegalMoves(from *Position) []SimpleMove {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]SimpleMove, 0)
	for _, m := range g.state.ValidMoves() {
		if from != nil && m.From != from.square() {
			continue
		}
		out = append(out, newSimpleMove(m))
	}
	return out
}

func (g *Game) MakeMove(req MoveRequest) error {
	g.mu.Lock()
	m, err := g.resolve(req)
	if err == nil {
		err = g.play(m)
	}
	if err != nil {
		g.mu.Unlock()
		return err
	}
	g.redo = g.redo[:0]
	g.lastActive = time.Now()
	log.Debugf("game %s: played %s", g.ID, m.UCI())
	g.publish()
	return nil
}

// resolve matches a request against the legal moves by origin and
// destination. Several matches only happen for promotions, which then need
// an explicit piece.
func (g *Game) resolve(req MoveRequest) (engine.Move, error) {
	if !req.From.inBounds() || !req.To.inBounds() {
		return engine.Move{}, fmt.Errorf("move %v-%v: %w", req.From, req.To, engine.ErrOutOfBounds)
	}
	want := engine.Move{From: req.From.square(), To: req.To.square()}
	var candidates []engine.Move
	for _, m := range g.state.ValidMoves() {
		if m.Equal(want) {
			candidates = append(candidates, m)
		}
	}
	switch {
	case len(candidates) == 0:
		if g.state.Checkmate() || g.state.Stalemate() {
			return engine.Move{}, fmt.Errorf("move %s%s: %w", req.From, req.To, engine.ErrGameOver)
		}
		return engine.Move{}, fmt.Errorf("move %s%s: %w", req.From, req.To, engine.ErrInvalidMove)
	case len(candidates) == 1:
		return candidates[0], nil
	case req.Promotion == "":
		return engine.Move{}, fmt.Errorf("move %s%s: %w", req.From, req.To, ErrPromotionRequired)
	}
	kind, err := req.Promotion.kind()
	if err != nil {
		return engine.Move{}, err
	}
	i := slices.IndexFunc(candidates, func(m engine.Move) bool { return m.Promotion == kind })
	if i < 0 {
		return engine.Move{}, fmt.Errorf("promote to %s: %w", req.Promotion, engine.ErrInvalidMove)
	}
	return candidates[i], nil
}

// play applies a legal move and records its ply.
func (g *Game) play(m engine.Move) error {
	notation, err := g.state.SAN(m)
	if err != nil {
		return err
	}
	if err := g.state.MakeMove(m); err != nil {
		return err
	}
	g.plies = append(g.plies, newPly(m, notation))
	return nil
}

func (g *Game) Undo() error {
	g.mu.Lock()
	m, err := g.state.UndoMove()
	if err != nil {
		g.mu.Unlock()
		return err
	}
	g.plies = g.plies[:len(g.plies)-1]
	g.redo = append(g.redo, m)
	g.lastActive = time.Now()
	log.Debugf("game %s: took back %s", g.ID, m.UCI())
	g.publish()
	return nil
}

// Redo replays the most recently undone move. The engine's undo is exact, so
// the move is legal again in the position it is replayed into.
func (g *Game) Redo() error {
	g.mu.Lock()
	if len(g.redo) == 0 {
		g.mu.Unlock()
		return ErrNothingToRedo
	}
	m := g.redo[len(g.redo)-1]
	if err := g.play(m); err != nil {
		g.mu.Unlock()
		return err
	}
	g.redo = g.redo[:len(g.redo)-1]
	g.lastActive = time.Now()
	log.Debugf("game %s: replayed %s", g.ID, m.UCI())
	g.publish()
	return nil
}

// Reset starts a new game on this board. The engine state is replaced, not
// rewound.
func (g *Game) Reset() {
	g.mu.Lock()
	g.state = engine.NewGameState()
	g.plies = nil
	g.redo = nil
	g.lastActive = time.Now()
	log.Debugf("game %s: reset", g.ID)
	g.publish()
}

// Idle reports whether the game has no observers and has not changed since
// before the cutoff.
func (g *Game) Idle(cutoff time.Time) bool {
	if g.ConnectionCount() > 0 {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastActive.Before(cutoff)
}

// snapshot must be called with g.mu held.
func (g *Game) snapshot() GameState {
	moves := g.state.ValidMoves()
	legal := make([]SimpleMove, len(moves))
	for i, m := range moves {
		legal[i] = newSimpleMove(m)
	}
	safety := g.state.KingSafety()
	checkers := make([]Position, len(safety.Checkers))
	for i, sq := range safety.Checkers {
		checkers[i] = positionOf(sq)
	}

	state := GameState{
		Board:          newBoardState(g.state.Board()),
		ToMove:         g.state.ToMove().String(),
		MoveHistory:    pairPlies(g.plies),
		CapturedPieces: newCapturedPieces(),
		IsCheck:        safety.InCheck,
		Checkers:       checkers,
		LegalMoves:     legal,
		CanUndo:        len(g.plies) > 0,
		CanRedo:        len(g.redo) > 0,
	}
	if sq, ok := g.state.EnPassantTarget(); ok {
		pos := positionOf(sq)
		state.EnPassantTarget = &pos
	}
	if status := g.state.Status(); status != engine.InProgress {
		result := status.String()
		state.Resolve = &result
	}
	for _, ply := range g.plies {
		if ply.CapturedPiece == nil {
			continue
		}
		// listed under the side that made the capture
		if ply.Piece.Color == engine.White.String() {
			state.CapturedPieces.White = append(state.CapturedPieces.White, *ply.CapturedPiece)
		} else {
			state.CapturedPieces.Black = append(state.CapturedPieces.Black, *ply.CapturedPiece)
		}
	}
	if n := len(g.plies); n > 0 {
		last := g.plies[n-1]
		state.LastMove = &SimpleMove{From: last.From, To: last.To, Promotion: last.Promotion}
		state.Sound = soundOf(last, safety.InCheck)
	}
	return state
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

func soundOf(last Ply, check bool) string {
	switch {
	case check:
		return "check"
	case last.CapturedPiece != nil:
		return "capture"
	case last.CastleRookMove != nil:
		return "castle"
	case last.Promotion != "":
		return "promote"
	}
	return "move"
}

// RegisterConnection adds an observer and sends it the current state. A
// client that is already connected keeps its existing connection.
func (g *Game) RegisterConnection(clientID string, conn Conn) error {
	g.mu.Lock()
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		g.connections.mu.Unlock()
		g.mu.Unlock()
		return fmt.Errorf("client %s: %w", clientID, ErrConnectionExists)
	}
	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()
	log.Infof("game %s: client %s connected", g.ID, clientID)

	g.publish()
	return nil
}

// UnregisterConnection removes the observer if conn is still the one
// registered for clientID.
func (g *Game) UnregisterConnection(clientID string, conn Conn) {
	g.connections.mu.Lock()
	current, exists := g.connections.connections[clientID]
	if !exists || current != conn {
		g.connections.mu.Unlock()
		return
	}
	delete(g.connections.connections, clientID)
	g.connections.mu.Unlock()
	log.Infof("game %s: client %s disconnected", g.ID, clientID)

	g.mu.Lock()
	g.lastActive = time.Now()
	g.mu.Unlock()
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	return len(g.connections.connections)
}

// Notify sends a message to a single observer.
func (g *Game) Notify(clientID string, msg ws.Message) error {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	conn, ok := g.connections.connections[clientID]
	if !ok {
		return fmt.Errorf("client %s: %w", clientID, ErrNotConnected)
	}
	return conn.WriteJSON(msg)
}

// publish sends the current state to every observer and releases g.mu. It
// must be called with g.mu held. The connections lock is taken before g.mu
// is released, so observers receive states in the order the mutations
// happened, and a connection never has two concurrent writers. Observers
// whose write fails are dropped.
func (g *Game) publish() {
	state := g.snapshot()
	g.connections.mu.Lock()
	g.mu.Unlock()
	defer g.connections.mu.Unlock()

	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Errorf("game %s: encode state: %v", g.ID, err)
		return
	}
	for clientID, conn := range g.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("game %s: dropping client %s: %v", g.ID, clientID, err)
			delete(g.connections.connections, clientID)
			_ = conn.Close()
		}
	}
}
