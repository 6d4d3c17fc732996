package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// EndReason explains why a game ended.
type EndReason string

const (
	ReasonNone          EndReason = ""
	ReasonSelfCollision EndReason = "self_collision"
	ReasonOutOfBounds   EndReason = "out_of_bounds"
)

// Outcome describes what happened during one tick.
type Outcome struct {
	Ate    bool
	Over   bool
	Reason EndReason
}

// Advance computes the state after one tick. The phases run in a fixed
// order, each reading the result of the previous one:
//
//  1. movement: the pending heading becomes current, the head moves one step
//     and the tail cell is vacated
//  2. border: the head wraps to the opposite edge, or the game ends
//  3. collision: the head hitting any other body cell ends the game
//  4. feeding: the head on the food keeps the vacated tail (length +1),
//     respawns the food and shortens the tick interval
//
// When Outcome.Over is set the returned state is the final board, before
// any reset. Advance has no side effects besides drawing from rng.
func Advance(s State, r Rules, rng *rand.Rand) (State, Outcome) {
	next := s.Clone()
	next.Tick++

	vacated := move(&next, r)

	if !applyBorder(&next, r) {
		return next, Outcome{Over: true, Reason: ReasonOutOfBounds}
	}

	body := next.Snake[:len(next.Snake)-1]
	if r.collider().Collides(body, next.Head()) {
		return next, Outcome{Over: true, Reason: ReasonSelfCollision}
	}

	ate := feed(&next, r, rng, vacated)
	return next, Outcome{Ate: ate}
}

// move slides the snake one step and returns the vacated tail cell.
func move(s *State, r Rules) core.Cell {
	if s.Pending.Valid() {
		s.Direction = s.Pending
	}
	s.Pending = s.Direction

	dx, dy := s.Direction.Delta()
	head := s.Head().Add(dx*r.Step, dy*r.Step)

	vacated := s.Snake[0]
	s.Snake = append(s.Snake[1:], head)
	return vacated
}

// applyBorder handles a head outside the board. It returns false when the
// border policy ends the game.
func applyBorder(s *State, r Rules) bool {
	head := s.Head()
	if r.Contains(head) {
		return true
	}
	if r.Border == config.BorderTerminate {
		return false
	}
	s.Snake[len(s.Snake)-1] = wrap(head, r)
	return true
}

// wrap maps a cell back onto the board modulo the axis span, aligned to
// the step grid.
func wrap(c core.Cell, r Rules) core.Cell {
	span := r.Span()
	snap := func(v int) int {
		off := core.Mod(v-r.Min, span)
		return r.Min + off/r.Step*r.Step
	}
	return core.Cell{X: snap(c.X), Y: snap(c.Y)}
}

// feed applies the feeding policy and reports whether food was eaten.
func feed(s *State, r Rules, rng *rand.Rand, vacated core.Cell) bool {
	if s.Head() != s.Food {
		return false
	}

	// Growth: the tail that movement vacated stays in place.
	s.Snake = append([]core.Cell{vacated}, s.Snake...)
	s.Food = spawnFood(r, rng, s.Snake)
	if s.Speed > r.MinSpeed {
		s.Speed = max(s.Speed-r.SpeedIncrement, r.MinSpeed)
	}
	return true
}
