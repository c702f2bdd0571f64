package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jage9/dot-game-center/internal/engine"
)

// placeAt navigates the cursor to (row, col) and confirms, the way the
// input layer would.
func placeAt(game *Game, row, col int) {
	curRow, curCol := game.Cursor()

	var tokens []engine.Token
	for i := 0; i < (row-curRow+boardSize)%boardSize; i++ {
		tokens = append(tokens, engine.TokenMoveDown)
	}
	for i := 0; i < (col-curCol+boardSize)%boardSize; i++ {
		tokens = append(tokens, engine.TokenMoveRight)
	}
	tokens = append(tokens, engine.TokenConfirm)

	game.ApplyInput(tokens)
}

func TestGame_ApplyInput_Navigation(t *testing.T) {
	t.Run("Cursor wraps around all four edges", func(t *testing.T) {
		// Given: a fresh game with the cursor at the origin
		game := NewGame()

		// When: moving left and up from (0, 0)
		game.ApplyInput([]engine.Token{engine.TokenMoveLeft, engine.TokenMoveUp})

		// Then: the cursor wraps to the opposite corner
		row, col := game.Cursor()
		assert.Equal(t, 2, row)
		assert.Equal(t, 2, col)

		// When: moving right and down from (2, 2)
		game.ApplyInput([]engine.Token{engine.TokenMoveRight, engine.TokenMoveDown})

		// Then: the cursor wraps back to the origin
		row, col = game.Cursor()
		assert.Equal(t, 0, row)
		assert.Equal(t, 0, col)
	})
}

func TestGame_ApplyInput_Placement(t *testing.T) {
	t.Run("Confirm places the player's mark", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame()

		// When: confirming at (1, 1)
		placeAt(game, 1, 1)

		// Then: the cell holds the player's mark
		assert.Equal(t, PlayerMark, game.Cell(1, 1))
	})

	t.Run("Confirm on an occupied cell is a silent no-op", func(t *testing.T) {
		// Given: a game where the player placed at (0, 0) and the CPU responded
		game := NewGame()
		placeAt(game, 0, 0)
		require.True(t, game.RunCPUTurn())

		// When: confirming at (0, 0) again
		placeAt(game, 0, 0)

		// Then: the cell is unchanged and it is still the player's turn
		assert.Equal(t, PlayerMark, game.Cell(0, 0))
		assert.False(t, game.RunCPUTurn())
	})

	t.Run("Input after the game is terminal changes nothing", func(t *testing.T) {
		// Given: a game the player has already won
		game := NewGame()
		game.board = [boardSize][boardSize]Cell{
			{PlayerMark, PlayerMark, PlayerMark},
			{CPUMark, CPUMark, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}
		game.updateWinner()
		require.Equal(t, engine.WinnerPlayer, game.Winner())

		// When: applying more input
		before := game.board
		game.ApplyInput([]engine.Token{engine.TokenMoveRight, engine.TokenConfirm})

		// Then: the board and winner are untouched
		assert.Equal(t, before, game.board)
		assert.Equal(t, engine.WinnerPlayer, game.Winner())
	})
}

func TestGame_RunCPUTurn(t *testing.T) {
	t.Run("Responds to a corner opening with the center", func(t *testing.T) {
		// Given: the player opened in the corner
		game := NewGame()
		placeAt(game, 0, 0)

		// When: the CPU takes its turn
		moved := game.RunCPUTurn()

		// Then: the CPU plays the center, the only move that does not lose
		require.True(t, moved)
		assert.Equal(t, CPUMark, game.Cell(1, 1))
	})

	t.Run("Takes an immediate winning line", func(t *testing.T) {
		// Given: the CPU has two in a row with the third cell open
		game := NewGame()
		game.board = [boardSize][boardSize]Cell{
			{CPUMark, CPUMark, EmptyCell},
			{PlayerMark, PlayerMark, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}
		game.turn = turnCPU

		// When: the CPU takes its turn
		require.True(t, game.RunCPUTurn())

		// Then: it completes its own line rather than blocking
		assert.Equal(t, CPUMark, game.Cell(0, 2))
		assert.Equal(t, engine.WinnerCPU, game.Winner())
	})

	t.Run("Blocks an imminent player win", func(t *testing.T) {
		// Given: the player threatens the top row
		game := NewGame()
		game.board = [boardSize][boardSize]Cell{
			{PlayerMark, PlayerMark, EmptyCell},
			{EmptyCell, CPUMark, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}
		game.turn = turnCPU

		// When: the CPU takes its turn
		require.True(t, game.RunCPUTurn())

		// Then: it blocks at (0, 2)
		assert.Equal(t, CPUMark, game.Cell(0, 2))
	})

	t.Run("Returns false before the player has moved", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame()

		// When: the CPU is asked to move out of turn
		moved := game.RunCPUTurn()

		// Then: nothing happens
		assert.False(t, moved)
		assert.Equal(t, [boardSize][boardSize]Cell{}, game.board)
	})

	t.Run("Second call without an intervening player move returns false", func(t *testing.T) {
		// Given: the player moved once and the CPU responded
		game := NewGame()
		placeAt(game, 0, 0)
		require.True(t, game.RunCPUTurn())

		// When: the CPU is asked to move again
		before := game.board
		moved := game.RunCPUTurn()

		// Then: nothing happens
		assert.False(t, moved)
		assert.Equal(t, before, game.board)
	})

	t.Run("Returns false once the game is terminal", func(t *testing.T) {
		// Given: a drawn game
		game := NewGame()
		game.board = [boardSize][boardSize]Cell{
			{PlayerMark, CPUMark, PlayerMark},
			{CPUMark, PlayerMark, CPUMark},
			{CPUMark, PlayerMark, CPUMark},
		}
		game.turn = turnCPU
		game.updateWinner()
		require.Equal(t, engine.WinnerDraw, game.Winner())

		// When: the CPU is asked to move
		moved := game.RunCPUTurn()

		// Then: it declines
		assert.False(t, moved)
	})
}

// TestGame_CPUNeverLoses plays every opening for the player, who then
// always takes the first empty cell; exhaustive minimax must never lose
// from any of these lines.
func TestGame_CPUNeverLoses(t *testing.T) {
	for opening := 0; opening < boardSize*boardSize; opening++ {
		game := NewGame()
		placeAt(game, opening/boardSize, opening%boardSize)

		for !game.IsFinished() {
			if !game.RunCPUTurn() {
				break
			}
			if game.IsFinished() {
				break
			}

			placed := false
			for r := 0; r < boardSize && !placed; r++ {
				for c := 0; c < boardSize && !placed; c++ {
					if game.Cell(r, c) == EmptyCell {
						placeAt(game, r, c)
						placed = true
					}
				}
			}
			if !placed {
				break
			}
		}

		require.True(t, game.IsFinished(), "opening %d: game did not finish", opening)
		assert.NotEqual(t, engine.WinnerPlayer, game.Winner(), "opening %d: CPU lost", opening)
	}
}

func TestGame_Reset(t *testing.T) {
	// Given: a game in progress
	game := NewGame()
	placeAt(game, 0, 0)
	require.True(t, game.RunCPUTurn())

	// When: resetting
	game.Reset()

	// Then: the board, cursor and winner are back to the initial state
	assert.Equal(t, [boardSize][boardSize]Cell{}, game.board)
	row, col := game.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	assert.False(t, game.IsFinished())
}

func TestGame_Snapshot(t *testing.T) {
	// Given: a game with one player mark
	game := NewGame()
	placeAt(game, 2, 1)

	// When: taking a snapshot
	snapshot := game.Snapshot()

	// Then: it mirrors the board and cursor
	assert.Equal(t, "tictactoe", snapshot.Game)
	assert.Equal(t, int(PlayerMark), snapshot.Board[2][1])
	assert.Equal(t, 2, snapshot.CursorRow)
	assert.Equal(t, 1, snapshot.CursorCol)
}
