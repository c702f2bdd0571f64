package entity

import "time"

// GameResult is one finished game, recorded to the results ledger.
type GameResult struct {
	Game       string    `json:"game"`
	Winner     string    `json:"winner"`
	FinishedAt time.Time `json:"finished_at"`
}

// Tally is the per-game aggregate of recorded results.
type Tally struct {
	Game       string `json:"game"`
	PlayerWins int64  `json:"player_wins"`
	CPUWins    int64  `json:"cpu_wins"`
	Draws      int64  `json:"draws"`
}

func (that *Tally) Total() int64 {
	return that.PlayerWins + that.CPUWins + that.Draws
}
