package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_ExtendTargets(t *testing.T) {
	t.Run("Isolated hit enqueues its orthogonal neighbors", func(t *testing.T) {
		// Given: a single hit in open water
		game := newTestGame(1)
		game.cpuShots[5][5] = ShotHit

		// When: extending targets from the hit
		game.extendTargets(coord{5, 5})

		// Then: exactly the four neighbors are queued
		assert.Equal(t, []coord{{6, 5}, {4, 5}, {5, 6}, {5, 4}}, game.targetQueue)
	})

	t.Run("Corner hit only enqueues in-bounds neighbors", func(t *testing.T) {
		// Given: a hit in the corner
		game := newTestGame(1)
		game.cpuShots[0][0] = ShotHit

		// When: extending targets from the hit
		game.extendTargets(coord{0, 0})

		// Then: the two cells outside the grid are skipped
		assert.Equal(t, []coord{{1, 0}, {0, 1}}, game.targetQueue)
	})

	t.Run("Second colinear hit narrows the queue to the run's endpoints", func(t *testing.T) {
		// Given: a first hit with its neighbors queued
		game := newTestGame(1)
		game.cpuShots[5][5] = ShotHit
		game.extendTargets(coord{5, 5})

		// When: an adjacent hit lands on the same row
		game.cpuShots[5][6] = ShotHit
		game.extendTargets(coord{5, 6})

		// Then: only the two cells past the run remain queued
		assert.Equal(t, []coord{{5, 4}, {5, 7}}, game.targetQueue)
	})

	t.Run("Vertical runs extend along the column", func(t *testing.T) {
		// Given: two stacked hits
		game := newTestGame(1)
		game.cpuShots[4][5] = ShotHit
		game.extendTargets(coord{4, 5})
		game.cpuShots[5][5] = ShotHit

		// When: extending targets from the second hit
		game.extendTargets(coord{5, 5})

		// Then: the queue holds the cells above and below the run
		assert.Equal(t, []coord{{3, 5}, {6, 5}}, game.targetQueue)
	})

	t.Run("Already-fired endpoints are not enqueued", func(t *testing.T) {
		// Given: a row run whose left extension was already a miss
		game := newTestGame(1)
		game.cpuShots[5][4] = ShotMiss
		game.cpuShots[5][5] = ShotHit
		game.cpuShots[5][6] = ShotHit

		// When: extending targets from the latest hit
		game.extendTargets(coord{5, 6})

		// Then: only the open endpoint is queued
		assert.Equal(t, []coord{{5, 7}}, game.targetQueue)
	})

	t.Run("Duplicate candidates are queued once", func(t *testing.T) {
		// Given: an isolated hit already extended
		game := newTestGame(1)
		game.cpuShots[5][5] = ShotHit
		game.extendTargets(coord{5, 5})

		// When: extending from the same hit again
		game.extendTargets(coord{5, 5})

		// Then: the queue still holds four candidates
		assert.Len(t, game.targetQueue, 4)
	})
}

func TestGame_PickTarget(t *testing.T) {
	t.Run("Queued candidates are taken in FIFO order", func(t *testing.T) {
		// Given: two queued candidates
		game := newTestGame(1)
		game.enqueueTarget(coord{2, 2})
		game.enqueueTarget(coord{3, 3})

		// When: picking twice
		first := game.pickTarget()
		second := game.pickTarget()

		// Then: they come back in insertion order
		assert.Equal(t, coord{2, 2}, first)
		assert.Equal(t, coord{3, 3}, second)
	})

	t.Run("Candidates fired at since being queued are discarded", func(t *testing.T) {
		// Given: a queued candidate that was fired at afterwards
		game := newTestGame(1)
		game.enqueueTarget(coord{2, 2})
		game.enqueueTarget(coord{3, 3})
		game.cpuShots[2][2] = ShotMiss

		// When: picking the next target
		target := game.pickTarget()

		// Then: the stale candidate is skipped
		assert.Equal(t, coord{3, 3}, target)
	})

	t.Run("Empty queue hunts on checkerboard parity", func(t *testing.T) {
		// Given: every cell fired at except one of each parity
		game := newTestGame(1)
		for r := 0; r < GridSize; r++ {
			for c := 0; c < GridSize; c++ {
				game.cpuShots[r][c] = ShotMiss
			}
		}
		game.cpuShots[0][0] = ShotNone // even parity
		game.cpuShots[0][1] = ShotNone // odd parity

		// When: picking with an empty queue
		target := game.pickTarget()

		// Then: the parity cell is chosen
		assert.Equal(t, coord{0, 0}, target)
	})

	t.Run("Exhausted parity falls back to any unfired cell", func(t *testing.T) {
		// Given: only a single odd-parity cell left unfired
		game := newTestGame(1)
		for r := 0; r < GridSize; r++ {
			for c := 0; c < GridSize; c++ {
				game.cpuShots[r][c] = ShotMiss
			}
		}
		game.cpuShots[0][1] = ShotNone

		// When: picking with an empty queue
		target := game.pickTarget()

		// Then: the remaining cell is chosen
		assert.Equal(t, coord{0, 1}, target)
	})
}
