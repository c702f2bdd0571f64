package websocket

import (
	"encoding/json"

	"github.com/jage9/dot-game-center/internal/engine"
)

// Message is one request or response frame: an action name plus an
// action-specific payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type StartPayload struct {
	Game string `json:"game"`
}

type InputPayload struct {
	Session string         `json:"session"`
	Tokens  []engine.Token `json:"tokens"`
}

type SessionPayload struct {
	Session string `json:"session"`
}

type ResponsePayload struct {
	Session string           `json:"session,omitempty"`
	State   *engine.Snapshot `json:"state,omitempty"`
	Moved   bool             `json:"moved,omitempty"`
	Error   string           `json:"error,omitempty"`
}
