package connect4

import (
	"math"

	"github.com/jage9/dot-game-center/internal/engine"
)

const (
	winScore = 1_000_000

	windowFourScore  = 100_000
	cpuThreeScore    = 120
	cpuTwoScore      = 15
	humanThreeScore  = 140
	humanTwoScore    = 10
	centerTokenScore = 6

	lateGameEmpties = 20
	lateGameDepth   = 6
	earlyGameDepth  = 5
)

// cpuMove drops the CPU token in the best column found by alpha-beta
// search. The first column reaching the maximum score under center-out
// iteration wins, so play is deterministic.
func (that *Game) cpuMove() {
	valid := that.validMoves()
	if len(valid) == 0 {
		that.winner = engine.WinnerDraw
		return
	}

	// Deeper search late-game when branching is smaller.
	depth := earlyGameDepth
	if that.countEmpty() <= lateGameEmpties {
		depth = lateGameDepth
	}

	bestCol := valid[0]
	bestScore := math.MinInt
	alpha := math.MinInt
	beta := math.MaxInt

	for _, col := range valid {
		that.drop(col, CPUToken)
		score := that.minimax(depth-1, false, alpha, beta)
		that.undoDrop(col)

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if beta <= alpha {
			break
		}
	}

	that.drop(bestCol, CPUToken)
	that.updateWinner()
}

// minimax is depth-limited alpha-beta. Terminal leaves are offset by the
// remaining depth so the CPU prefers faster wins and slower losses.
func (that *Game) minimax(depth int, maximizing bool, alpha, beta int) int {
	switch that.runWinner() {
	case CPUToken:
		return winScore + depth
	case HumanToken:
		return -winScore - depth
	}

	if that.boardFull() {
		return 0
	}

	if depth <= 0 {
		return that.evaluatePosition()
	}

	valid := that.validMoves()

	if maximizing {
		value := math.MinInt
		for _, col := range valid {
			that.drop(col, CPUToken)
			if score := that.minimax(depth-1, false, alpha, beta); score > value {
				value = score
			}
			that.undoDrop(col)

			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				break
			}
		}

		return value
	}

	value := math.MaxInt
	for _, col := range valid {
		that.drop(col, HumanToken)
		if score := that.minimax(depth-1, true, alpha, beta); score < value {
			value = score
		}
		that.undoDrop(col)

		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}

	return value
}

// evaluatePosition scores a non-terminal leaf from the CPU's perspective
// by summing every 4-cell window plus a center-column bonus.
func (that *Game) evaluatePosition() int {
	score := 0

	// Center control is typically strongest in connect four.
	center := that.cols / 2
	for r := 0; r < that.rows; r++ {
		if that.board[r][center] == CPUToken {
			score += centerTokenScore
		}
	}

	var window [winRun]Cell

	for r := 0; r < that.rows; r++ {
		for c := 0; c+winRun <= that.cols; c++ {
			for i := 0; i < winRun; i++ {
				window[i] = that.board[r][c+i]
			}
			score += scoreWindow(window)
		}
	}

	for c := 0; c < that.cols; c++ {
		for r := 0; r+winRun <= that.rows; r++ {
			for i := 0; i < winRun; i++ {
				window[i] = that.board[r+i][c]
			}
			score += scoreWindow(window)
		}
	}

	for r := 0; r+winRun <= that.rows; r++ {
		for c := 0; c+winRun <= that.cols; c++ {
			for i := 0; i < winRun; i++ {
				window[i] = that.board[r+i][c+i]
			}
			score += scoreWindow(window)
		}
	}

	for r := winRun - 1; r < that.rows; r++ {
		for c := 0; c+winRun <= that.cols; c++ {
			for i := 0; i < winRun; i++ {
				window[i] = that.board[r-i][c+i]
			}
			score += scoreWindow(window)
		}
	}

	return score
}

// scoreWindow weights blocking human threats (-140) above building CPU
// ones (+120); the asymmetry is intentional and observable in play.
func scoreWindow(window [winRun]Cell) int {
	cpu, human, empty := 0, 0, 0
	for _, cell := range window {
		switch cell {
		case CPUToken:
			cpu++
		case HumanToken:
			human++
		default:
			empty++
		}
	}

	switch {
	case cpu == 4:
		return windowFourScore
	case cpu == 3 && empty == 1:
		return cpuThreeScore
	case cpu == 2 && empty == 2:
		return cpuTwoScore
	case human == 4:
		return -windowFourScore
	case human == 3 && empty == 1:
		return -humanThreeScore
	case human == 2 && empty == 2:
		return -humanTwoScore
	default:
		return 0
	}
}
