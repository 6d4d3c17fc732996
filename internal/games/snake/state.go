package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the complete game state between two ticks. It is treated as
// immutable: Advance returns a new State and never modifies its input.
type State struct {
	Tick      uint64
	Snake     []core.Cell    // tail first, head last; never empty
	Food      core.Cell      // single food cell
	Direction core.Direction // heading applied on the last tick
	Pending   core.Direction // heading that the next tick will apply
	Speed     time.Duration  // current tick interval
}

// Head returns the head cell.
func (s State) Head() core.Cell {
	return s.Snake[len(s.Snake)-1]
}

// Score is the snake length.
func (s State) Score() int {
	return len(s.Snake)
}

// Clone returns a deep copy with room for one extra segment.
func (s State) Clone() State {
	out := s
	out.Snake = make([]core.Cell, len(s.Snake), len(s.Snake)+1)
	copy(out.Snake, s.Snake)
	return out
}

// InitialState builds the configured starting state. Food placement draws
// from rng.
func InitialState(r Rules, rng *rand.Rand) State {
	s := State{
		Snake:     append([]core.Cell(nil), r.InitialSnake...),
		Direction: r.InitialDirection,
		Pending:   r.InitialDirection,
		Speed:     r.InitialSpeed,
	}
	s.Food = spawnFood(r, rng, s.Snake)
	return s
}
