package engine

import "strings"

// BrailleForm converts a plain last-event message into its abbreviated
// braille-safe rendering (lowercase, e.g. "Y HIT A1" -> "y hit a1").
func BrailleForm(message string) string {
	return strings.ToLower(message)
}

// Token is one abstract input unit produced by the input-mapping layer.
// A single key batch may carry several tokens at once.
type Token string

const (
	TokenMoveUp            Token = "moveUp"
	TokenMoveDown          Token = "moveDown"
	TokenMoveLeft          Token = "moveLeft"
	TokenMoveRight         Token = "moveRight"
	TokenConfirm           Token = "confirm"
	TokenToggleOrientation Token = "toggleOrientation"
)

const (
	WinnerPlayer = "player"
	WinnerCPU    = "cpu"
	WinnerDraw   = "draw"
)

// Engine is the contract shared by the three game engines. Exactly one
// engine is active per session; the session driver forwards input batches
// and schedules CPU turns.
type Engine interface {
	Name() string

	// Reset reinitializes to the game's initial state.
	Reset()

	// ApplyInput applies one discrete turn's worth of input atomically.
	// Unrecognized or inapplicable tokens are ignored.
	ApplyInput(tokens []Token)

	// RunCPUTurn makes exactly one CPU move and reports whether a move
	// was made. It is a no-op returning false once the game is terminal
	// or while it is not the CPU's turn.
	RunCPUTurn() bool

	IsFinished() bool

	// Winner returns "" while the game is ongoing, otherwise one of
	// WinnerPlayer, WinnerCPU or WinnerDraw.
	Winner() string

	// LastMessage returns the human-readable last-event text.
	LastMessage() string

	// LastMessageBraille returns the abbreviated braille-safe form.
	LastMessageBraille() string

	Snapshot() Snapshot
}

// Snapshot is the read-only view handed to the presentation layer.
// Fields not used by a game are left at their zero value.
type Snapshot struct {
	Game           string `json:"game"`
	Winner         string `json:"winner,omitempty"`
	Message        string `json:"message,omitempty"`
	MessageBraille string `json:"message_braille,omitempty"`

	CursorRow int `json:"cursor_row"`
	CursorCol int `json:"cursor_col"`

	// Board holds marks for tic-tac-toe and tokens for connect four.
	Board [][]int `json:"board,omitempty"`

	// Battleship only.
	Phase       string  `json:"phase,omitempty"`
	Orientation string  `json:"orientation,omitempty"`
	ShipsLeft   int     `json:"ships_left,omitempty"`
	PlayerShips [][]int `json:"player_ships,omitempty"`
	PlayerShots [][]int `json:"player_shots,omitempty"`
	CPUShots    [][]int `json:"cpu_shots,omitempty"`
}
