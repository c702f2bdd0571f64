package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/jage9/dot-game-center/internal/engine"
	"github.com/jage9/dot-game-center/internal/entity"
)

const (
	fieldPlayerWins = "player_wins"
	fieldCPUWins    = "cpu_wins"
	fieldDraws      = "draws"
)

type ResultRepository interface {
	Record(ctx context.Context, result *entity.GameResult) error
	Tally(ctx context.Context, game string) (*entity.Tally, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Record increments the per-game counter matching the result's winner.
func (that *dbResult) Record(ctx context.Context, result *entity.GameResult) error {
	field := fieldDraws
	switch result.Winner {
	case engine.WinnerPlayer:
		field = fieldPlayerWins
	case engine.WinnerCPU:
		field = fieldCPUWins
	}

	resultKey := "results:" + result.Game
	if err := that.client.HIncrBy(ctx, resultKey, field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// Tally returns the aggregate counts for one game, zeroes when nothing
// has been recorded yet.
func (that *dbResult) Tally(ctx context.Context, game string) (*entity.Tally, error) {
	resultKey := "results:" + game

	fields, err := that.client.HGetAll(ctx, resultKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	tally := &entity.Tally{Game: game}
	for field, raw := range fields {
		count, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse tally field %s: %w", field, parseErr)
		}

		switch field {
		case fieldPlayerWins:
			tally.PlayerWins = count
		case fieldCPUWins:
			tally.CPUWins = count
		case fieldDraws:
			tally.Draws = count
		}
	}

	return tally, nil
}
