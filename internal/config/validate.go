package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks startup preconditions. The engine relies on them and never
// re-checks them per tick.
func (c SnakeConfig) Validate() error {
	g := c.Grid
	if g.Step <= 0 {
		return fmt.Errorf("%w: grid.step must be positive, got %d", ErrInvalid, g.Step)
	}
	if g.Max <= g.Min {
		return fmt.Errorf("%w: grid.max (%d) must be greater than grid.min (%d)", ErrInvalid, g.Max, g.Min)
	}
	if g.Min%g.Step != 0 {
		return fmt.Errorf("%w: grid.min (%d) is not a multiple of grid.step (%d)", ErrInvalid, g.Min, g.Step)
	}
	if (g.Max-g.Min)%g.Step != 0 {
		return fmt.Errorf("%w: grid span %d..%d is not divisible by step %d", ErrInvalid, g.Min, g.Max, g.Step)
	}

	s := c.Snake
	if len(s.InitialPosition) == 0 {
		return fmt.Errorf("%w: snake.initial_position must contain at least one cell", ErrInvalid)
	}
	for i, p := range s.InitialPosition {
		if !c.onGrid(p[0]) || !c.onGrid(p[1]) {
			return fmt.Errorf("%w: snake.initial_position[%d] = %v is off the grid", ErrInvalid, i, p)
		}
	}
	if _, err := c.InitialDirection(); err != nil {
		return fmt.Errorf("%w: snake.initial_direction: %v", ErrInvalid, err)
	}
	if s.MinSpeedMs <= 0 {
		return fmt.Errorf("%w: snake.min_speed_ms must be positive, got %d", ErrInvalid, s.MinSpeedMs)
	}
	if s.InitialSpeedMs < s.MinSpeedMs {
		return fmt.Errorf("%w: snake.initial_speed_ms (%d) is below min_speed_ms (%d)", ErrInvalid, s.InitialSpeedMs, s.MinSpeedMs)
	}
	if s.SpeedIncrementMs < 0 {
		return fmt.Errorf("%w: snake.speed_increment_ms must not be negative, got %d", ErrInvalid, s.SpeedIncrementMs)
	}
	if s.DotSize < 0 || c.Food.Size < 0 {
		return fmt.Errorf("%w: render sizes must not be negative", ErrInvalid)
	}

	switch c.Rules.Border {
	case BorderWrap, BorderTerminate:
	default:
		return fmt.Errorf("%w: rules.border must be %q or %q, got %q", ErrInvalid, BorderWrap, BorderTerminate, c.Rules.Border)
	}

	if c.Input.SwipeThreshold < 0 {
		return fmt.Errorf("%w: input.swipe_threshold must not be negative", ErrInvalid)
	}
	return nil
}

// onGrid reports whether v is a step-aligned coordinate inside the bounds.
func (c SnakeConfig) onGrid(v int) bool {
	return v >= c.Grid.Min && v <= c.Grid.Max && (v-c.Grid.Min)%c.Grid.Step == 0
}
