package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jage9/dot-game-center/internal/apperror"
	"github.com/jage9/dot-game-center/internal/battleship"
	"github.com/jage9/dot-game-center/internal/connect4"
	"github.com/jage9/dot-game-center/internal/engine"
	"github.com/jage9/dot-game-center/internal/entity"
	"github.com/jage9/dot-game-center/internal/tictactoe"
)

type resultRepo interface {
	Record(ctx context.Context, result *entity.GameResult) error
	Tally(ctx context.Context, game string) (*entity.Tally, error)
}

// Session owns exactly one active engine for one presentation client.
type Session struct {
	ID     string
	Engine engine.Engine

	recorded bool
}

// SessionManager is the session driver: it forwards input-token batches to
// the active engine, runs CPU turns on request, and records finished games
// to the results ledger. Engines never self-schedule; CPU-turn timing is
// the transport's concern.
type SessionManager struct {
	logger  *slog.Logger
	results resultRepo

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager(logger *slog.Logger, results resultRepo) *SessionManager {
	return &SessionManager{
		logger:   logger.With("component", "sessions"),
		results:  results,
		sessions: make(map[string]*Session),
	}
}

// StartSession creates an engine for the named game and returns the new
// session.
func (that *SessionManager) StartSession(_ context.Context, game string) (*Session, error) {
	eng, err := newEngine(game)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:     uuid.NewString(),
		Engine: eng,
	}

	that.mu.Lock()
	that.sessions[session.ID] = session
	that.mu.Unlock()

	that.logger.Info("session started", "session", session.ID, "game", game)

	return session, nil
}

// ApplyInput forwards one token batch to the session's engine and returns
// the resulting snapshot.
func (that *SessionManager) ApplyInput(ctx context.Context, sessionID string, tokens []engine.Token) (engine.Snapshot, error) {
	session, err := that.getSession(sessionID)
	if err != nil {
		return engine.Snapshot{}, err
	}

	session.Engine.ApplyInput(tokens)
	that.recordIfFinished(ctx, session)

	return session.Engine.Snapshot(), nil
}

// RunCPUTurn runs at most one CPU move and reports whether one was made.
func (that *SessionManager) RunCPUTurn(ctx context.Context, sessionID string) (bool, engine.Snapshot, error) {
	session, err := that.getSession(sessionID)
	if err != nil {
		return false, engine.Snapshot{}, err
	}

	moved := session.Engine.RunCPUTurn()
	that.recordIfFinished(ctx, session)

	return moved, session.Engine.Snapshot(), nil
}

// ResetSession restarts the session's game from its initial state.
func (that *SessionManager) ResetSession(_ context.Context, sessionID string) (engine.Snapshot, error) {
	session, err := that.getSession(sessionID)
	if err != nil {
		return engine.Snapshot{}, err
	}

	session.Engine.Reset()
	session.recorded = false

	return session.Engine.Snapshot(), nil
}

// GetSnapshot returns the session's current state without mutating it.
func (that *SessionManager) GetSnapshot(_ context.Context, sessionID string) (engine.Snapshot, error) {
	session, err := that.getSession(sessionID)
	if err != nil {
		return engine.Snapshot{}, err
	}

	return session.Engine.Snapshot(), nil
}

// EndSession drops the session.
func (that *SessionManager) EndSession(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[sessionID]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, sessionID)
	}

	delete(that.sessions, sessionID)

	return nil
}

func (that *SessionManager) getSession(sessionID string) (*Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, ok := that.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, sessionID)
	}

	return session, nil
}

// recordIfFinished writes a finished game to the ledger exactly once per
// session run. A ledger failure is logged, never surfaced to play.
func (that *SessionManager) recordIfFinished(ctx context.Context, session *Session) {
	if session.recorded || !session.Engine.IsFinished() {
		return
	}

	session.recorded = true

	result := &entity.GameResult{
		Game:       session.Engine.Name(),
		Winner:     session.Engine.Winner(),
		FinishedAt: time.Now(),
	}

	if err := that.results.Record(ctx, result); err != nil {
		that.logger.Error("could not record result", "session", session.ID, "error", err)
	}
}

func newEngine(game string) (engine.Engine, error) {
	switch game {
	case "tictactoe":
		return tictactoe.NewGame(), nil
	case "connect4":
		return connect4.NewGame(), nil
	case "battleship":
		return battleship.NewGame(nil), nil
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownGame, game)
	}
}
