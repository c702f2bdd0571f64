package battleship

// Hunt/target CPU. While the target queue holds candidates the CPU probes
// them in FIFO order; otherwise it hunts on checkerboard parity, which is
// sound because every ship spans at least two cells.

var orthogonal = [4]coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// pickTarget pops the next actionable queued cell, lazily discarding any
// that were fired at since being enqueued. With an empty queue it falls
// back to a random parity cell, then to any unfired cell.
func (that *Game) pickTarget() coord {
	for len(that.targetQueue) > 0 {
		cell := that.targetQueue[0]
		that.targetQueue = that.targetQueue[1:]
		delete(that.queued, cell)

		if that.cpuShots[cell.row][cell.col] == ShotNone {
			return cell
		}
	}

	var parity, open []coord
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if that.cpuShots[r][c] != ShotNone {
				continue
			}

			cell := coord{r, c}
			open = append(open, cell)
			if (r+c)%2 == 0 {
				parity = append(parity, cell)
			}
		}
	}

	if len(parity) > 0 {
		return parity[that.rng.Intn(len(parity))]
	}

	return open[that.rng.Intn(len(open))]
}

// extendTargets refines the queue after a hit. Once the connected run of
// hits shows the ship's axis, only the two cells past the run's endpoints
// are worth probing; an isolated hit enqueues its orthogonal neighbors.
func (that *Game) extendTargets(hit coord) {
	cluster := that.hitCluster(hit)

	if len(cluster) >= 2 {
		if row, ok := sameRow(cluster); ok {
			// The axis is known: stale undirected candidates are dropped
			// in favor of the two cells past the run's endpoints.
			minCol, maxCol := colSpan(cluster)
			that.clearTargets()
			that.enqueueTarget(coord{row, minCol - 1})
			that.enqueueTarget(coord{row, maxCol + 1})

			return
		}

		if col, ok := sameCol(cluster); ok {
			minRow, maxRow := rowSpan(cluster)
			that.clearTargets()
			that.enqueueTarget(coord{minRow - 1, col})
			that.enqueueTarget(coord{maxRow + 1, col})

			return
		}
	}

	for _, d := range orthogonal {
		that.enqueueTarget(coord{hit.row + d.row, hit.col + d.col})
	}
}

// enqueueTarget appends a candidate unless it is out of bounds, already
// fired at, or already queued.
func (that *Game) enqueueTarget(cell coord) {
	if cell.row < 0 || cell.row >= GridSize || cell.col < 0 || cell.col >= GridSize {
		return
	}

	if that.cpuShots[cell.row][cell.col] != ShotNone {
		return
	}

	if _, ok := that.queued[cell]; ok {
		return
	}

	that.targetQueue = append(that.targetQueue, cell)
	that.queued[cell] = struct{}{}
}

func (that *Game) clearTargets() {
	that.targetQueue = nil
	that.queued = make(map[coord]struct{})
}

// hitCluster flood-fills the maximal orthogonally-connected set of hit
// cells containing start.
func (that *Game) hitCluster(start coord) []coord {
	seen := map[coord]struct{}{start: {}}
	cluster := []coord{start}

	for i := 0; i < len(cluster); i++ {
		for _, d := range orthogonal {
			next := coord{cluster[i].row + d.row, cluster[i].col + d.col}

			if next.row < 0 || next.row >= GridSize || next.col < 0 || next.col >= GridSize {
				continue
			}
			if that.cpuShots[next.row][next.col] != ShotHit {
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}

			seen[next] = struct{}{}
			cluster = append(cluster, next)
		}
	}

	return cluster
}

func sameRow(cells []coord) (int, bool) {
	for _, cell := range cells[1:] {
		if cell.row != cells[0].row {
			return 0, false
		}
	}

	return cells[0].row, true
}

func sameCol(cells []coord) (int, bool) {
	for _, cell := range cells[1:] {
		if cell.col != cells[0].col {
			return 0, false
		}
	}

	return cells[0].col, true
}

func colSpan(cells []coord) (int, int) {
	minCol, maxCol := cells[0].col, cells[0].col
	for _, cell := range cells[1:] {
		if cell.col < minCol {
			minCol = cell.col
		}
		if cell.col > maxCol {
			maxCol = cell.col
		}
	}

	return minCol, maxCol
}

func rowSpan(cells []coord) (int, int) {
	minRow, maxRow := cells[0].row, cells[0].row
	for _, cell := range cells[1:] {
		if cell.row < minRow {
			minRow = cell.row
		}
		if cell.row > maxRow {
			maxRow = cell.row
		}
	}

	return minRow, maxRow
}
