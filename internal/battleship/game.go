package battleship

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jage9/dot-game-center/internal/engine"
)

const (
	PhasePlacement = "placement"
	PhaseAttack    = "attack"
)

const (
	turnPlayer = "player"
	turnCPU    = "cpu"
)

type coord struct {
	row int
	col int
}

// Game is the battleship engine: a placement/attack state machine over two
// hidden 10x10 grids with a hunt/target CPU. The CPU fleet layout and the
// hunt fallback draw from the injected random source, so seeded games are
// reproducible.
type Game struct {
	rng *rand.Rand

	playerShips shipGrid
	cpuShips    shipGrid
	playerShots shotGrid // player firing at the CPU fleet
	cpuShots    shotGrid // CPU firing at the player fleet

	placeIndex  int
	orientation Orientation
	selRow      int
	selCol      int
	phase       string
	turn        string
	winner      string
	message     string

	targetQueue []coord
	queued      map[coord]struct{}
	playerSunk  map[int]struct{}
	cpuSunk     map[int]struct{}
}

// NewGame creates a battleship engine. A nil rng falls back to a
// time-seeded source.
func NewGame(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // game randomness, not crypto
	}

	game := &Game{rng: rng}
	game.Reset()

	return game
}

func (that *Game) Name() string { return "battleship" }

// Reset clears both fleets and shot grids and places a fresh random CPU
// fleet.
func (that *Game) Reset() {
	that.playerShips = shipGrid{}
	that.cpuShips = shipGrid{}
	that.playerShots = shotGrid{}
	that.cpuShots = shotGrid{}

	that.placeIndex = 0
	that.orientation = Horizontal
	that.selRow = 0
	that.selCol = 0
	that.phase = PhasePlacement
	that.turn = turnPlayer
	that.winner = ""
	that.message = "PLACE " + shipNames[0]

	that.targetQueue = nil
	that.queued = make(map[coord]struct{})
	that.playerSunk = make(map[int]struct{})
	that.cpuSunk = make(map[int]struct{})

	that.placeCPUFleet()
}

// ApplyInput moves the cursor with wraparound, toggles orientation during
// placement, and on confirm either places the current ship or fires at the
// CPU grid depending on the phase.
func (that *Game) ApplyInput(tokens []engine.Token) {
	if that.winner != "" {
		return
	}

	for _, token := range tokens {
		switch token {
		case engine.TokenMoveLeft:
			that.selCol = (that.selCol - 1 + GridSize) % GridSize
		case engine.TokenMoveRight:
			that.selCol = (that.selCol + 1) % GridSize
		case engine.TokenMoveUp:
			that.selRow = (that.selRow - 1 + GridSize) % GridSize
		case engine.TokenMoveDown:
			that.selRow = (that.selRow + 1) % GridSize
		case engine.TokenToggleOrientation:
			if that.phase == PhasePlacement {
				if that.orientation == Horizontal {
					that.orientation = Vertical
				} else {
					that.orientation = Horizontal
				}
			}
		case engine.TokenConfirm:
			switch that.phase {
			case PhasePlacement:
				that.placeShip()
			case PhaseAttack:
				that.fire()
			}
		}
	}
}

// placeShip attempts to place the next queued ship at the cursor. An
// illegal position reports INVALID PLACEMENT and leaves the queue
// position unchanged.
func (that *Game) placeShip() {
	length := shipLengths[that.placeIndex]

	if !that.playerShips.canPlace(that.selRow, that.selCol, length, that.orientation) {
		that.message = "INVALID PLACEMENT"
		return
	}

	endRow, endCol := that.selRow, that.selCol
	if that.orientation == Horizontal {
		endCol += length - 1
	} else {
		endRow += length - 1
	}

	that.playerShips.place(that.selRow, that.selCol, length, that.orientation, that.placeIndex+1)
	that.message = fmt.Sprintf("Placed %s from %s to %s",
		strings.ToLower(shipNames[that.placeIndex]),
		squareName(that.selRow, that.selCol),
		squareName(endRow, endCol))

	that.placeIndex++
	if that.placeIndex >= len(shipLengths) {
		that.phase = PhaseAttack
	}
}

// fire resolves the player's shot at the cursor. Repeat fire on the same
// cell reports ALREADY FIRED and changes nothing.
func (that *Game) fire() {
	if that.playerShots[that.selRow][that.selCol] != ShotNone {
		that.message = "ALREADY FIRED"
		return
	}

	if that.turn != turnPlayer {
		return
	}

	shipID := that.cpuShips[that.selRow][that.selCol]
	square := squareName(that.selRow, that.selCol)

	var parts []string
	if shipID > 0 {
		that.playerShots[that.selRow][that.selCol] = ShotHit
		parts = append(parts, "Y HIT "+square)

		if _, sunk := that.playerSunk[shipID]; !sunk && isShipSunk(&that.cpuShips, &that.playerShots, shipID) {
			that.playerSunk[shipID] = struct{}{}
			parts = append(parts, "Y SUNK "+shipNames[shipID-1])
		}
	} else {
		that.playerShots[that.selRow][that.selCol] = ShotMiss
		parts = append(parts, "Y MISS "+square)
	}

	if allSunk(&that.cpuShips, &that.playerShots) {
		that.winner = engine.WinnerPlayer
		parts = append(parts, "YOU WIN")
		that.message = strings.Join(parts, " ")

		return
	}

	that.message = strings.Join(parts, " ")
	that.turn = turnCPU
}

// RunCPUTurn fires one CPU shot at the player's fleet. It reports false
// without touching state when the game is terminal, still in placement,
// or the player has not fired yet.
func (that *Game) RunCPUTurn() bool {
	if that.winner != "" || that.phase != PhaseAttack || that.turn != turnCPU {
		return false
	}

	shot := that.pickTarget()
	shipID := that.playerShips[shot.row][shot.col]
	square := squareName(shot.row, shot.col)

	var parts []string
	if shipID > 0 {
		that.cpuShots[shot.row][shot.col] = ShotHit
		parts = append(parts, "I HIT "+square)

		that.extendTargets(shot)

		if _, sunk := that.cpuSunk[shipID]; !sunk && isShipSunk(&that.playerShips, &that.cpuShots, shipID) {
			that.cpuSunk[shipID] = struct{}{}
			parts = append(parts, "I SUNK "+shipNames[shipID-1])

			// Back to pure hunt mode rather than chasing stale leads.
			that.clearTargets()
		}
	} else {
		that.cpuShots[shot.row][shot.col] = ShotMiss
		parts = append(parts, "I MISS "+square)
	}

	if allSunk(&that.playerShips, &that.cpuShots) {
		that.winner = engine.WinnerCPU
		parts = append(parts, "YOU LOSE")
	} else {
		that.turn = turnPlayer
	}

	that.message = strings.Join(parts, " ")

	return true
}

func (that *Game) IsFinished() bool {
	return that.winner != ""
}

func (that *Game) Winner() string {
	return that.winner
}

func (that *Game) LastMessage() string {
	return that.message
}

func (that *Game) LastMessageBraille() string {
	return engine.BrailleForm(that.message)
}

func (that *Game) Phase() string {
	return that.phase
}

func (that *Game) CurrentOrientation() Orientation {
	return that.orientation
}

func (that *Game) Cursor() (int, int) {
	return that.selRow, that.selCol
}

// ShipNameAt returns the name of the player's ship occupying the given
// coordinate, if any.
func (that *Game) ShipNameAt(row, col int) (string, bool) {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return "", false
	}

	shipID := that.playerShips[row][col]
	if shipID <= 0 {
		return "", false
	}

	return shipNames[shipID-1], true
}

// PlayerShotAt classifies the player's shot at a CPU-grid cell.
func (that *Game) PlayerShotAt(row, col int) Shot {
	return that.playerShots[row][col]
}

// CPUShotAt classifies the CPU's shot at a player-grid cell.
func (that *Game) CPUShotAt(row, col int) Shot {
	return that.cpuShots[row][col]
}

func (that *Game) Snapshot() engine.Snapshot {
	return engine.Snapshot{
		Game:           that.Name(),
		Winner:         that.winner,
		Message:        that.message,
		MessageBraille: that.LastMessageBraille(),
		CursorRow:      that.selRow,
		CursorCol:      that.selCol,
		Phase:          that.phase,
		Orientation:    string(that.orientation),
		ShipsLeft:      len(shipLengths) - that.placeIndex,
		PlayerShips:    gridInts(&that.playerShips),
		PlayerShots:    shotInts(&that.playerShots),
		CPUShots:       shotInts(&that.cpuShots),
	}
}

// placeCPUFleet places each CPU ship by independent uniform-random trials,
// retrying until legal.
func (that *Game) placeCPUFleet() {
	for idx, length := range shipLengths {
		for {
			orientation := Horizontal
			if that.rng.Intn(2) == 1 {
				orientation = Vertical
			}

			row := that.rng.Intn(GridSize)
			col := that.rng.Intn(GridSize)

			if that.cpuShips.canPlace(row, col, length, orientation) {
				that.cpuShips.place(row, col, length, orientation, idx+1)
				break
			}
		}
	}
}

func gridInts(grid *shipGrid) [][]int {
	out := make([][]int, GridSize)
	for r := range out {
		out[r] = make([]int, GridSize)
		for c := range out[r] {
			out[r][c] = grid[r][c]
		}
	}

	return out
}

func shotInts(grid *shotGrid) [][]int {
	out := make([][]int, GridSize)
	for r := range out {
		out[r] = make([]int, GridSize)
		for c := range out[r] {
			out[r][c] = int(grid[r][c])
		}
	}

	return out
}
