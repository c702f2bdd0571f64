package battleship

import "fmt"

const GridSize = 10

var (
	shipLengths = [...]int{5, 4, 3, 3, 2}
	shipNames   = [...]string{"CARRIER", "BATTLESHIP", "CRUISER", "SUB", "DESTROYER"}
)

type Orientation string

const (
	Horizontal Orientation = "H"
	Vertical   Orientation = "V"
)

type Shot uint8

const (
	ShotNone Shot = iota
	ShotMiss
	ShotHit
)

// shipGrid stores a ship id (1..5) per occupied cell, 0 for water.
type shipGrid [GridSize][GridSize]int

type shotGrid [GridSize][GridSize]Shot

// canPlace reports whether a ship of the given length fits fully in
// bounds on empty water starting at (row, col).
func (that *shipGrid) canPlace(row, col, length int, orientation Orientation) bool {
	if orientation == Horizontal {
		if col+length > GridSize {
			return false
		}
		for i := 0; i < length; i++ {
			if that[row][col+i] != 0 {
				return false
			}
		}

		return true
	}

	if row+length > GridSize {
		return false
	}
	for i := 0; i < length; i++ {
		if that[row+i][col] != 0 {
			return false
		}
	}

	return true
}

func (that *shipGrid) place(row, col, length int, orientation Orientation, shipID int) {
	for i := 0; i < length; i++ {
		if orientation == Horizontal {
			that[row][col+i] = shipID
		} else {
			that[row+i][col] = shipID
		}
	}
}

// isShipSunk reports whether every cell of shipID has been hit.
func isShipSunk(ships *shipGrid, shots *shotGrid, shipID int) bool {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if ships[r][c] == shipID && shots[r][c] != ShotHit {
				return false
			}
		}
	}

	return true
}

// allSunk reports whether every ship cell on the grid has been hit.
func allSunk(ships *shipGrid, shots *shotGrid) bool {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if ships[r][c] != 0 && shots[r][c] != ShotHit {
				return false
			}
		}
	}

	return true
}

// squareName renders a coordinate as a board label like A1..J0 (column 10
// rendered as 0, matching the 20-cell status line).
func squareName(row, col int) string {
	colLabel := byte('1' + col)
	if col == GridSize-1 {
		colLabel = '0'
	}

	return fmt.Sprintf("%c%c", 'A'+row, colLabel)
}
