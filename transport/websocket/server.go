package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jage9/dot-game-center/internal/engine"
	"github.com/jage9/dot-game-center/internal/usecase"
)

type uSession interface {
	StartSession(ctx context.Context, game string) (*usecase.Session, error)
	ApplyInput(ctx context.Context, sessionID string, tokens []engine.Token) (engine.Snapshot, error)
	RunCPUTurn(ctx context.Context, sessionID string) (bool, engine.Snapshot, error)
	ResetSession(ctx context.Context, sessionID string) (engine.Snapshot, error)
	GetSnapshot(ctx context.Context, sessionID string) (engine.Snapshot, error)
	EndSession(ctx context.Context, sessionID string) error
}

// Server bridges the presentation layer (rendering + input mapping, which
// live in a separate process) to the session driver. One message in, one
// message out; the engines themselves never touch the wire.
type Server struct {
	logger   *slog.Logger
	sessions uSession
	upgrader websocket.Upgrader

	// cpuDelay is the "thinking" pause applied before a CPU turn.
	cpuDelay time.Duration

	handlers map[string]func(ctx context.Context, message *Message) ResponsePayload
}

func New(logger *slog.Logger, sessions uSession, cpuDelay time.Duration) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		cpuDelay: cpuDelay,

		handlers: make(map[string]func(context.Context, *Message) ResponsePayload),
	}

	server.handlers["session:start"] = server.handleStart
	server.handlers["session:input"] = server.handleInput
	server.handlers["session:cpu"] = server.handleCPUTurn
	server.handlers["session:reset"] = server.handleReset
	server.handlers["session:state"] = server.handleState
	server.handlers["session:end"] = server.handleEnd

	return server
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveClient(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveClient(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveClient")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("client connected", "remote", conn.RemoteAddr().String())

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err := that.sendMessage(conn, message.Action, ResponsePayload{Error: "unknown action"}); err != nil {
				return err
			}

			continue
		}

		response := handler(ctx, &message)
		if err := that.sendMessage(conn, message.Action, response); err != nil {
			return err
		}
	}
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: raw,
	}

	if err = conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}
