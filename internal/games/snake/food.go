package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// randomCell picks a uniformly random step-aligned cell on the board.
func randomCell(r Rules, rng *rand.Rand) core.Cell {
	n := r.CellsPerAxis()
	return core.Cell{
		X: r.Min + rng.Intn(n)*r.Step,
		Y: r.Min + rng.Intn(n)*r.Step,
	}
}

// spawnFood places food. Without StrictFood the cell may overlap the snake.
// With StrictFood the cell is drawn uniformly from the free cells, which is
// the distribution of re-rolling until disjoint; a full board falls back to
// an unrestricted roll.
func spawnFood(r Rules, rng *rand.Rand, body []core.Cell) core.Cell {
	if !r.StrictFood {
		return randomCell(r, rng)
	}

	occupied := make(map[core.Cell]bool, len(body))
	for _, c := range body {
		occupied[c] = true
	}

	n := r.CellsPerAxis()
	free := make([]core.Cell, 0, max(n*n-len(occupied), 0))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := core.Cell{X: r.Min + x*r.Step, Y: r.Min + y*r.Step}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return randomCell(r, rng)
	}
	return free[rng.Intn(len(free))]
}
