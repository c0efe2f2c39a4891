package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type recordingConn struct {
	msgs []ws.Message
}

func (c *recordingConn) WriteJSON(v interface{}) error {
	c.msgs = append(c.msgs, v.(ws.Message))
	return nil
}

func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) last(t *testing.T) ws.Message {
	t.Helper()
	if len(c.msgs) == 0 {
		t.Fatal("no messages")
	}
	return c.msgs[len(c.msgs)-1]
}

func newWebSocketController(t *testing.T) (*WebSocketController, *service.GameService, string) {
	t.Helper()
	gm := service.NewGameManager(0)
	t.Cleanup(gm.Close)
	gs := service.NewGameService(gm)
	id, err := gs.CreateGame()
	if err != nil {
		t.Fatal(err)
	}
	return NewWebSocketController(gs), gs, id
}

func message(t *testing.T, typ ws.MessageType, payload interface{}) ws.Message {
	t.Helper()
	if payload == nil {
		return ws.Message{Type: typ}
	}
	msg, err := ws.NewMessage(typ, payload)
	if err != nil {
		t.Fatal(err)
	}
	return msg
}

func TestHandleMessageCommands(t *testing.T) {
	wsc, gs, id := newWebSocketController(t)
	e4 := model.MoveRequest{From: model.Position{X: 4, Y: 6}, To: model.Position{X: 4, Y: 4}}

	if err := wsc.handleMessage(id, message(t, ws.MessageTypeMove, e4)); err != nil {
		t.Fatal(err)
	}
	state, _ := gs.GetGameState(id)
	if state.ToMove != "black" || len(state.MoveHistory) != 1 {
		t.Fatalf("after move %+v", state)
	}

	if err := wsc.handleMessage(id, message(t, ws.MessageTypeUndo, nil)); err != nil {
		t.Fatal(err)
	}
	if state, _ = gs.GetGameState(id); state.ToMove != "white" || !state.CanRedo {
		t.Fatalf("after undo %+v", state)
	}

	if err := wsc.handleMessage(id, message(t, ws.MessageTypeRedo, nil)); err != nil {
		t.Fatal(err)
	}
	if state, _ = gs.GetGameState(id); state.ToMove != "black" || state.CanRedo {
		t.Fatalf("after redo %+v", state)
	}

	if err := wsc.handleMessage(id, message(t, ws.MessageTypeReset, nil)); err != nil {
		t.Fatal(err)
	}
	if state, _ = gs.GetGameState(id); state.CanUndo || state.ToMove != "white" {
		t.Fatalf("after reset %+v", state)
	}
}

func TestHandleMessageErrors(t *testing.T) {
	wsc, _, id := newWebSocketController(t)

	bad := ws.Message{Type: ws.MessageTypeMove, Payload: json.RawMessage(`{"from":`)}
	if err := wsc.handleMessage(id, bad); err == nil || !strings.Contains(err.Error(), "parse move") {
		t.Fatalf("malformed payload: got %v", err)
	}

	if err := wsc.handleMessage(id, ws.Message{Type: "castle"}); err == nil || !strings.Contains(err.Error(), "unknown message type") {
		t.Fatalf("unknown type: got %v", err)
	}

	illegal := model.MoveRequest{From: model.Position{X: 4, Y: 6}, To: model.Position{X: 4, Y: 3}}
	if err := wsc.handleMessage(id, message(t, ws.MessageTypeMove, illegal)); !errors.Is(err, engine.ErrInvalidMove) {
		t.Fatalf("illegal move: got %v want ErrInvalidMove", err)
	}
	if err := wsc.handleMessage(id, message(t, ws.MessageTypeUndo, nil)); !errors.Is(err, engine.ErrNothingToUndo) {
		t.Fatalf("undo: got %v want ErrNothingToUndo", err)
	}
	if err := wsc.handleMessage(id, message(t, ws.MessageTypeRedo, nil)); !errors.Is(err, model.ErrNothingToRedo) {
		t.Fatalf("redo: got %v want ErrNothingToRedo", err)
	}
	if err := wsc.handleMessage("missing", message(t, ws.MessageTypeReset, nil)); !errors.Is(err, service.ErrGameNotFound) {
		t.Fatalf("unknown game: got %v want ErrGameNotFound", err)
	}
}

func TestSendErrorReachesClient(t *testing.T) {
	wsc, gs, id := newWebSocketController(t)
	conn := &recordingConn{}
	if err := gs.RegisterConnection(id, "c", conn); err != nil {
		t.Fatal(err)
	}

	cause := wsc.handleMessage(id, message(t, ws.MessageTypeUndo, nil))
	wsc.sendError(id, "c", cause)

	last := conn.last(t)
	if last.Type != ws.MessageTypeError {
		t.Fatalf("last message %s", last.Type)
	}
	var p ws.ErrorPayload
	if err := json.Unmarshal(last.Payload, &p); err != nil {
		t.Fatal(err)
	}
	if p.Error != cause.Error() {
		t.Fatalf("error payload %q want %q", p.Error, cause.Error())
	}

	// a client that is gone is only logged
	before := len(conn.msgs)
	wsc.sendError(id, "gone", cause)
	if len(conn.msgs) != before {
		t.Fatalf("error for another client reached c")
	}
}

func TestCommandsBroadcastState(t *testing.T) {
	wsc, gs, id := newWebSocketController(t)
	conn := &recordingConn{}
	if err := gs.RegisterConnection(id, "c", conn); err != nil {
		t.Fatal(err)
	}
	d4 := model.MoveRequest{From: model.Position{X: 3, Y: 6}, To: model.Position{X: 3, Y: 4}}
	if err := wsc.handleMessage(id, message(t, ws.MessageTypeMove, d4)); err != nil {
		t.Fatal(err)
	}
	last := conn.last(t)
	if last.Type != ws.MessageTypeGameState {
		t.Fatalf("last message %s", last.Type)
	}
	var state model.GameState
	if err := json.Unmarshal(last.Payload, &state); err != nil {
		t.Fatal(err)
	}
	if state.MoveHistory[0].WhitePly.Notation != "d4" {
		t.Fatalf("broadcast history %+v", state.MoveHistory)
	}
}
