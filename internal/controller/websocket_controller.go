package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection runs for the lifetime of one websocket. The connection is
// registered as an observer of its game and then only read from here; all
// writes go through the game.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	clientID, _ := c.Locals("clientID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, clientID, c); err != nil {
		log.Warnf("game %s: refusing client %s: %v", gameID, clientID, err)
		_ = c.WriteJSON(ws.NewError(err))
		_ = c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, clientID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("game %s: read from %s: %v", gameID, clientID, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(gameID, clientID, fmt.Errorf("parse message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			log.Debugf("game %s: %s from %s failed: %v", gameID, msg.Type, clientID, err)
			wsc.sendError(gameID, clientID, err)
		}
	}
}

func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("parse move: %w", err)
		}
		return wsc.gameService.HandleMove(gameID, move)
	case ws.MessageTypeUndo:
		return wsc.gameService.Undo(gameID)
	case ws.MessageTypeRedo:
		return wsc.gameService.Redo(gameID)
	case ws.MessageTypeReset:
		return wsc.gameService.Reset(gameID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(gameID, clientID string, cause error) {
	if err := wsc.gameService.SendError(gameID, clientID, cause); err != nil {
		log.Warnf("game %s: report error to %s: %v", gameID, clientID, err)
	}
}
