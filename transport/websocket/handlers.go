package websocket

import (
	"context"
	"encoding/json"
	"time"
)

func (that *Server) handleStart(ctx context.Context, message *Message) ResponsePayload {
	var payload StartPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return ResponsePayload{Error: "invalid payload"}
	}

	session, err := that.sessions.StartSession(ctx, payload.Game)
	if err != nil {
		return ResponsePayload{Error: err.Error()}
	}

	state := session.Engine.Snapshot()

	return ResponsePayload{Session: session.ID, State: &state}
}

func (that *Server) handleInput(ctx context.Context, message *Message) ResponsePayload {
	var payload InputPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return ResponsePayload{Error: "invalid payload"}
	}

	state, err := that.sessions.ApplyInput(ctx, payload.Session, payload.Tokens)
	if err != nil {
		return ResponsePayload{Error: err.Error()}
	}

	return ResponsePayload{Session: payload.Session, State: &state}
}

// handleCPUTurn applies the thinking delay before running the CPU move;
// engines never schedule their own turns.
func (that *Server) handleCPUTurn(ctx context.Context, message *Message) ResponsePayload {
	var payload SessionPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return ResponsePayload{Error: "invalid payload"}
	}

	if that.cpuDelay > 0 {
		select {
		case <-time.After(that.cpuDelay):
		case <-ctx.Done():
			return ResponsePayload{Error: ctx.Err().Error()}
		}
	}

	moved, state, err := that.sessions.RunCPUTurn(ctx, payload.Session)
	if err != nil {
		return ResponsePayload{Error: err.Error()}
	}

	return ResponsePayload{Session: payload.Session, State: &state, Moved: moved}
}

func (that *Server) handleReset(ctx context.Context, message *Message) ResponsePayload {
	var payload SessionPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return ResponsePayload{Error: "invalid payload"}
	}

	state, err := that.sessions.ResetSession(ctx, payload.Session)
	if err != nil {
		return ResponsePayload{Error: err.Error()}
	}

	return ResponsePayload{Session: payload.Session, State: &state}
}

func (that *Server) handleState(ctx context.Context, message *Message) ResponsePayload {
	var payload SessionPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return ResponsePayload{Error: "invalid payload"}
	}

	state, err := that.sessions.GetSnapshot(ctx, payload.Session)
	if err != nil {
		return ResponsePayload{Error: err.Error()}
	}

	return ResponsePayload{Session: payload.Session, State: &state}
}

func (that *Server) handleEnd(ctx context.Context, message *Message) ResponsePayload {
	var payload SessionPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return ResponsePayload{Error: "invalid payload"}
	}

	if err := that.sessions.EndSession(ctx, payload.Session); err != nil {
		return ResponsePayload{Error: err.Error()}
	}

	return ResponsePayload{Session: payload.Session}
}
