package ws

import (
	"encoding/json"
)

// MessageType is the kind of a websocket message; it selects how Payload is
// decoded.
type MessageType string

const (
	// client -> server
	MessageTypeMove  MessageType = "move"
	MessageTypeUndo  MessageType = "undo"
	MessageTypeRedo  MessageType = "redo"
	MessageTypeReset MessageType = "reset"

	// server -> client
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope for every websocket frame in both directions.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage encodes v as the payload of a message of type t.
func NewMessage(t MessageType, v interface{}) (Message, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: payload}, nil
}

func NewError(err error) Message {
	payload, _ := json.Marshal(ErrorPayload{Error: err.Error()})
	return Message{Type: MessageTypeError, Payload: payload}
}
