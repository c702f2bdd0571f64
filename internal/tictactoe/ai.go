package tictactoe

// bestMove searches every empty cell to full depth and returns the highest
// scoring one. Ties resolve to the first candidate in row-major order, so
// CPU play is fully deterministic.
func (that *Game) bestMove() (int, int, bool) {
	bestScore := -2
	bestRow, bestCol := 0, 0
	found := false

	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if that.board[r][c] != EmptyCell {
				continue
			}

			that.board[r][c] = CPUMark
			score := that.minimax(false)
			that.board[r][c] = EmptyCell

			if score > bestScore {
				bestScore = score
				bestRow, bestCol = r, c
				found = true
			}
		}
	}

	return bestRow, bestCol, found
}

// minimax scores a position +1 for a CPU win, -1 for a player win and 0
// for a draw. The CPU maximizes, the player minimizes.
func (that *Game) minimax(maximizing bool) int {
	switch that.lineWinner() {
	case CPUMark:
		return 1
	case PlayerMark:
		return -1
	}

	if that.boardFull() {
		return 0
	}

	if maximizing {
		best := -2
		for r := 0; r < boardSize; r++ {
			for c := 0; c < boardSize; c++ {
				if that.board[r][c] != EmptyCell {
					continue
				}

				that.board[r][c] = CPUMark
				if score := that.minimax(false); score > best {
					best = score
				}
				that.board[r][c] = EmptyCell
			}
		}

		return best
	}

	best := 2
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if that.board[r][c] != EmptyCell {
				continue
			}

			that.board[r][c] = PlayerMark
			if score := that.minimax(true); score < best {
				best = score
			}
			that.board[r][c] = EmptyCell
		}
	}

	return best
}
