package connect4

import (
	"github.com/jage9/dot-game-center/internal/engine"
)

const (
	defaultRows = 6
	defaultCols = 7
	winRun      = 4
)

type Cell uint8

const (
	EmptyCell Cell = iota
	HumanToken
	CPUToken
)

const (
	turnHuman = "human"
	turnCPU   = "cpu"
)

// Game is the connect-four engine: gravity-drop grid with a depth-limited
// alpha-beta CPU.
type Game struct {
	rows   int
	cols   int
	board  [][]Cell
	selCol int
	turn   string
	winner string
}

func NewGame() *Game {
	game := &Game{
		rows: defaultRows,
		cols: defaultCols,
	}
	game.Reset()

	return game
}

func (that *Game) Name() string { return "connect4" }

func (that *Game) Reset() {
	that.board = make([][]Cell, that.rows)
	for r := range that.board {
		that.board[r] = make([]Cell, that.cols)
	}

	that.selCol = that.cols / 2
	that.turn = turnHuman
	that.winner = ""
}

// ApplyInput moves the selected column with wraparound and drops a human
// token on confirm. Dropping into a full column is a no-op and the CPU
// does not get a turn.
func (that *Game) ApplyInput(tokens []engine.Token) {
	if that.winner != "" {
		return
	}

	for _, token := range tokens {
		switch token {
		case engine.TokenMoveLeft:
			that.selCol = (that.selCol - 1 + that.cols) % that.cols
		case engine.TokenMoveRight:
			that.selCol = (that.selCol + 1) % that.cols
		case engine.TokenConfirm:
			that.dropHuman()
		}
	}
}

func (that *Game) dropHuman() {
	if that.turn != turnHuman {
		return
	}

	if !that.drop(that.selCol, HumanToken) {
		return
	}

	that.updateWinner()

	if that.winner == "" {
		that.turn = turnCPU
	}
}

// RunCPUTurn plays one alpha-beta searched CPU drop. It reports false
// without touching state when the game is terminal or the human has not
// dropped yet.
func (that *Game) RunCPUTurn() bool {
	if that.winner != "" || that.turn != turnCPU {
		return false
	}

	that.cpuMove()

	if that.winner == "" {
		that.turn = turnHuman
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

func (that *Game) SelectedColumn() int {
	return that.selCol
}

func (that *Game) Snapshot() engine.Snapshot {
	board := make([][]int, that.rows)
	for r := range board {
		board[r] = make([]int, that.cols)
		for c := range board[r] {
			board[r][c] = int(that.board[r][c])
		}
	}

	return engine.Snapshot{
		Game:           that.Name(),
		Winner:         that.winner,
		Message:        that.LastMessage(),
		MessageBraille: that.LastMessageBraille(),
		CursorCol:      that.selCol,
		Board:          board,
	}
}

// drop settles a token into the lowest empty row of col. It reports false
// when the column is full.
func (that *Game) drop(col int, token Cell) bool {
	for r := that.rows - 1; r >= 0; r-- {
		if that.board[r][col] == EmptyCell {
			that.board[r][col] = token
			return true
		}
	}

	return false
}

// undoDrop removes the topmost token of col, restoring the pre-drop state.
func (that *Game) undoDrop(col int) {
	for r := 0; r < that.rows; r++ {
		if that.board[r][col] != EmptyCell {
			that.board[r][col] = EmptyCell
			return
		}
	}
}

func (that *Game) updateWinner() {
	switch that.runWinner() {
	case HumanToken:
		that.winner = engine.WinnerPlayer
	case CPUToken:
		that.winner = engine.WinnerCPU
	default:
		if that.boardFull() {
			that.winner = engine.WinnerDraw
		}
	}
}

func (that *Game) runWinner() Cell {
	for r := 0; r < that.rows; r++ {
		for c := 0; c < that.cols; c++ {
			token := that.board[r][c]
			if token == EmptyCell {
				continue
			}

			if that.checkRun(r, c, 1, 0, token) ||
				that.checkRun(r, c, 0, 1, token) ||
				that.checkRun(r, c, 1, 1, token) ||
				that.checkRun(r, c, 1, -1, token) {
				return token
			}
		}
	}

	return EmptyCell
}

func (that *Game) checkRun(row, col, dr, dc int, token Cell) bool {
	for i := 0; i < winRun; i++ {
		r := row + dr*i
		c := col + dc*i

		if r < 0 || r >= that.rows || c < 0 || c >= that.cols {
			return false
		}

		if that.board[r][c] != token {
			return false
		}
	}

	return true
}

// boardFull only needs the top row: gravity guarantees a column is full
// exactly when its top cell is occupied.
func (that *Game) boardFull() bool {
	for c := 0; c < that.cols; c++ {
		if that.board[0][c] == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Game) canDrop(col int) bool {
	return that.board[0][col] == EmptyCell
}

// validMoves returns droppable columns ordered from the center out, which
// is both the move preference and the pruning order.
func (that *Game) validMoves() []int {
	center := that.cols / 2

	order := make([]int, 0, that.cols)
	order = append(order, center)
	for i := 1; i < that.cols; i++ {
		if center-i >= 0 {
			order = append(order, center-i)
		}
		if center+i < that.cols {
			order = append(order, center+i)
		}
	}

	moves := make([]int, 0, len(order))
	for _, col := range order {
		if that.canDrop(col) {
			moves = append(moves, col)
		}
	}

	return moves
}

func (that *Game) countEmpty() int {
	count := 0
	for r := 0; r < that.rows; r++ {
		for c := 0; c < that.cols; c++ {
			if that.board[r][c] == EmptyCell {
				count++
			}
		}
	}

	return count
}
