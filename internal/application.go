package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jage9/dot-game-center/internal/config"
	"github.com/jage9/dot-game-center/internal/repository"
	"github.com/jage9/dot-game-center/internal/repository/storage"
	"github.com/jage9/dot-game-center/internal/usecase"
	"github.com/jage9/dot-game-center/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	resultRepo := repository.NewResultRepository(redisStorage.Connection)
	sessionManager := usecase.NewSessionManager(logger, resultRepo)

	cpuDelay := time.Duration(conf.CPUThinkDelay) * time.Millisecond
	wsServer := websocket.New(logger, sessionManager, cpuDelay)

	log.Info("Starting WebSocket server", "port", conf.SocketPort)
	if err = wsServer.Start(ctx, conf.SocketPort); err != nil {
		return fmt.Errorf("websocket server error: %w", err)
	}

	return nil
}
