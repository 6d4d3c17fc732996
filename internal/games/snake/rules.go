// Package snake implements the snake game-state engine: a pure per-tick
// transition (Advance), a mutex-guarded Engine that owns the state and
// interprets input, and a Runner that drives the engine from a timer.
package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// setColliderThreshold is the board size (in cells) above which the engine
// switches from the linear scan to the set-based collider.
const setColliderThreshold = 4096

// Rules are the validated, immutable parameters of a session.
type Rules struct {
	Min, Max, Step int

	Border     config.BorderMode
	StrictFood bool

	InitialSnake     []core.Cell // tail first, head last
	InitialDirection core.Direction
	InitialSpeed     time.Duration
	MinSpeed         time.Duration
	SpeedIncrement   time.Duration

	Collider Collider
}

// NewRules validates cfg and derives the rules from it.
func NewRules(cfg config.SnakeConfig) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, err
	}
	dir, err := cfg.InitialDirection()
	if err != nil {
		return Rules{}, fmt.Errorf("snake: %w", err)
	}

	r := Rules{
		Min:              cfg.Grid.Min,
		Max:              cfg.Grid.Max,
		Step:             cfg.Grid.Step,
		Border:           cfg.Rules.Border,
		StrictFood:       cfg.Rules.StrictFood,
		InitialSnake:     cfg.InitialSnake(),
		InitialDirection: dir,
		InitialSpeed:     cfg.InitialSpeed(),
		MinSpeed:         cfg.MinSpeed(),
		SpeedIncrement:   cfg.SpeedIncrement(),
		Collider:         ScanCollider{},
	}
	if n := cfg.CellsPerAxis(); n*n > setColliderThreshold {
		r.Collider = SetCollider{}
	}
	return r, nil
}

// Span is the wrap-around period of one axis.
func (r Rules) Span() int {
	return r.Max - r.Min + r.Step
}

// CellsPerAxis returns the number of positions along one axis.
func (r Rules) CellsPerAxis() int {
	return (r.Max-r.Min)/r.Step + 1
}

// Contains reports whether c is inside the board bounds.
func (r Rules) Contains(c core.Cell) bool {
	return c.X >= r.Min && c.X <= r.Max && c.Y >= r.Min && c.Y <= r.Max
}

// OnGrid reports whether c is inside the bounds and aligned to the step.
func (r Rules) OnGrid(c core.Cell) bool {
	return r.Contains(c) && (c.X-r.Min)%r.Step == 0 && (c.Y-r.Min)%r.Step == 0
}

func (r Rules) collider() Collider {
	if r.Collider == nil {
		return ScanCollider{}
	}
	return r.Collider
}
