package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jage9/dot-game-center/internal/engine"
	"github.com/jage9/dot-game-center/internal/entity"
	"github.com/jage9/dot-game-center/testing/suite"
)

func TestResultRepository_Record(t *testing.T) {
	ctx, st := suite.New(t)

	resultRepo := NewResultRepository(st.Storage)

	// Given: one finished game per outcome
	results := []*entity.GameResult{
		{Game: "tictactoe", Winner: engine.WinnerPlayer, FinishedAt: time.Now()},
		{Game: "tictactoe", Winner: engine.WinnerCPU, FinishedAt: time.Now()},
		{Game: "tictactoe", Winner: engine.WinnerCPU, FinishedAt: time.Now()},
		{Game: "tictactoe", Winner: engine.WinnerDraw, FinishedAt: time.Now()},
	}

	// When: every result is recorded
	for _, result := range results {
		require.NoError(t, resultRepo.Record(ctx, result))
	}

	// Then: the tally matches the recorded outcomes
	tally, err := resultRepo.Tally(ctx, "tictactoe")
	require.NoError(t, err)
	assert.Equal(t, int64(1), tally.PlayerWins)
	assert.Equal(t, int64(2), tally.CPUWins)
	assert.Equal(t, int64(1), tally.Draws)
	assert.Equal(t, int64(4), tally.Total())
}

func TestResultRepository_Tally(t *testing.T) {
	t.Run("Tally_Empty", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// When: tallying a game with no recorded results
		tally, err := resultRepo.Tally(ctx, "battleship")

		// Then: all counters are zero
		require.NoError(t, err)
		assert.Equal(t, "battleship", tally.Game)
		assert.Equal(t, int64(0), tally.Total())
	})

	t.Run("Tally_PerGameIsolation", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: results recorded for two different games
		require.NoError(t, resultRepo.Record(ctx, &entity.GameResult{
			Game: "connect4", Winner: engine.WinnerCPU, FinishedAt: time.Now(),
		}))
		require.NoError(t, resultRepo.Record(ctx, &entity.GameResult{
			Game: "battleship", Winner: engine.WinnerPlayer, FinishedAt: time.Now(),
		}))

		// When: tallying one of them
		tally, err := resultRepo.Tally(ctx, "connect4")

		// Then: only that game's results are counted
		require.NoError(t, err)
		assert.Equal(t, int64(1), tally.CPUWins)
		assert.Equal(t, int64(0), tally.PlayerWins)
	})
}
