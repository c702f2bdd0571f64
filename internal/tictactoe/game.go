package tictactoe

import (
	"github.com/jage9/dot-game-center/internal/engine"
)

const boardSize = 3

type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerMark
	CPUMark
)

const (
	turnPlayer = "player"
	turnCPU    = "cpu"
)

// lines is every winnable run: 3 rows, 3 columns, 2 diagonals.
var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Game is the tic-tac-toe engine: 3x3 board, cursor-driven placement and
// an exhaustive minimax CPU.
type Game struct {
	board  [boardSize][boardSize]Cell
	selRow int
	selCol int
	turn   string
	winner string
}

func NewGame() *Game {
	game := &Game{}
	game.Reset()

	return game
}

func (that *Game) Name() string { return "tictactoe" }

func (that *Game) Reset() {
	that.board = [boardSize][boardSize]Cell{}
	that.selRow = 0
	that.selCol = 0
	that.turn = turnPlayer
	that.winner = ""
}

// ApplyInput moves the cursor with wraparound and places the player's mark
// on confirm. Confirming an occupied cell is a silent no-op.
func (that *Game) ApplyInput(tokens []engine.Token) {
	if that.winner != "" {
		return
	}

	for _, token := range tokens {
		switch token {
		case engine.TokenMoveLeft:
			that.selCol = (that.selCol - 1 + boardSize) % boardSize
		case engine.TokenMoveRight:
			that.selCol = (that.selCol + 1) % boardSize
		case engine.TokenMoveUp:
			that.selRow = (that.selRow - 1 + boardSize) % boardSize
		case engine.TokenMoveDown:
			that.selRow = (that.selRow + 1) % boardSize
		case engine.TokenConfirm:
			that.placePlayer()
		}
	}
}

func (that *Game) placePlayer() {
	if that.turn != turnPlayer {
		return
	}

	if that.board[that.selRow][that.selCol] != EmptyCell {
		return
	}

	that.board[that.selRow][that.selCol] = PlayerMark
	that.updateWinner()

	if that.winner == "" {
		that.turn = turnCPU
	}
}

// RunCPUTurn plays the minimax-optimal cell for the CPU. It reports false
// without touching state when the game is terminal or the player has not
// moved yet.
func (that *Game) RunCPUTurn() bool {
	if that.winner != "" || that.turn != turnCPU {
		return false
	}

	row, col, ok := that.bestMove()
	if ok {
		that.board[row][col] = CPUMark
	}

	that.updateWinner()

	if that.winner == "" {
		that.turn = turnPlayer
	}

	return true
}

func (that *Game) IsFinished() bool {
	return that.winner != ""
}

func (that *Game) Winner() string {
	return that.winner
}

func (that *Game) LastMessage() string {
	switch that.winner {
	case engine.WinnerPlayer:
		return "YOU WIN"
	case engine.WinnerCPU:
		return "YOU LOSE"
	case engine.WinnerDraw:
		return "DRAW"
	default:
		return ""
	}
}

func (that *Game) LastMessageBraille() string {
	return engine.BrailleForm(that.LastMessage())
}

func (that *Game) Cell(row, col int) Cell {
	return that.board[row][col]
}

func (that *Game) Cursor() (int, int) {
	return that.selRow, that.selCol
}

func (that *Game) Snapshot() engine.Snapshot {
	board := make([][]int, boardSize)
	for r := range board {
		board[r] = make([]int, boardSize)
		for c := range board[r] {
			board[r][c] = int(that.board[r][c])
		}
	}

	return engine.Snapshot{
		Game:           that.Name(),
		Winner:         that.winner,
		Message:        that.LastMessage(),
		MessageBraille: that.LastMessageBraille(),
		CursorRow:      that.selRow,
		CursorCol:      that.selCol,
		Board:          board,
	}
}

func (that *Game) updateWinner() {
	switch that.lineWinner() {
	case PlayerMark:
		that.winner = engine.WinnerPlayer
	case CPUMark:
		that.winner = engine.WinnerCPU
	default:
		if that.boardFull() {
			that.winner = engine.WinnerDraw
		}
	}
}

func (that *Game) lineWinner() Cell {
	for _, line := range lines {
		a := that.board[line[0][0]][line[0][1]]
		b := that.board[line[1][0]][line[1][1]]
		c := that.board[line[2][0]][line[2][1]]

		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that *Game) boardFull() bool {
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if that.board[r][c] == EmptyCell {
				return false
			}
		}
	}

	return true
}
