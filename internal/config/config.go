// Package config provides YAML/TOML-based game configuration loading,
// validation and difficulty presets for the snake game.
package config

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid" toml:"grid"`
	Snake SnakeParams `yaml:"snake" toml:"snake"`
	Food  FoodConfig  `yaml:"food" toml:"food"`
	Rules RulesConfig `yaml:"rules" toml:"rules"`
	Input InputConfig `yaml:"input" toml:"input"`
}

// GridConfig defines the board. Both axes share the same bounds.
// Cells are multiples of Step inside [Min, Max].
type GridConfig struct {
	Min  int `yaml:"min" toml:"min"`
	Max  int `yaml:"max" toml:"max"`
	Step int `yaml:"step" toml:"step"`
}

// SnakeParams defines the starting snake and its speed curve.
type SnakeParams struct {
	InitialPosition  [][2]int `yaml:"initial_position" toml:"initial_position"` // tail first, head last
	InitialDirection string   `yaml:"initial_direction" toml:"initial_direction"`
	InitialSpeedMs   int      `yaml:"initial_speed_ms" toml:"initial_speed_ms"`
	MinSpeedMs       int      `yaml:"min_speed_ms" toml:"min_speed_ms"`
	SpeedIncrementMs int      `yaml:"speed_increment_ms" toml:"speed_increment_ms"`
	DotSize          int      `yaml:"dot_size" toml:"dot_size"`
	Color            string   `yaml:"color" toml:"color"`
}

// FoodConfig defines how food is drawn.
type FoodConfig struct {
	Size  int    `yaml:"size" toml:"size"`
	Color string `yaml:"color" toml:"color"`
}

// BorderMode selects what happens when the head leaves the board.
type BorderMode string

const (
	BorderWrap      BorderMode = "wrap"      // reappear on the opposite edge
	BorderTerminate BorderMode = "terminate" // game over
)

// RulesConfig holds the rule switches.
type RulesConfig struct {
	Border     BorderMode `yaml:"border" toml:"border"`
	StrictFood bool       `yaml:"strict_food" toml:"strict_food"` // never spawn food on the snake
}

// InputConfig holds input interpretation settings.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold" toml:"swipe_threshold"` // minimum drag length in screen cells
}

// InitialSnake returns the configured starting body, tail first.
func (c SnakeConfig) InitialSnake() []core.Cell {
	cells := make([]core.Cell, len(c.Snake.InitialPosition))
	for i, p := range c.Snake.InitialPosition {
		cells[i] = core.Cell{X: p[0], Y: p[1]}
	}
	return cells
}

// InitialDirection returns the parsed starting direction.
func (c SnakeConfig) InitialDirection() (core.Direction, error) {
	return core.ParseDirection(c.Snake.InitialDirection)
}

// InitialSpeed returns the starting tick interval.
func (c SnakeConfig) InitialSpeed() time.Duration {
	return time.Duration(c.Snake.InitialSpeedMs) * time.Millisecond
}

// MinSpeed returns the shortest allowed tick interval.
func (c SnakeConfig) MinSpeed() time.Duration {
	return time.Duration(c.Snake.MinSpeedMs) * time.Millisecond
}

// SpeedIncrement returns how much the tick interval shrinks per food.
func (c SnakeConfig) SpeedIncrement() time.Duration {
	return time.Duration(c.Snake.SpeedIncrementMs) * time.Millisecond
}

// CellsPerAxis returns the number of grid positions along one axis.
func (c SnakeConfig) CellsPerAxis() int {
	if c.Grid.Step <= 0 {
		return 0
	}
	return (c.Grid.Max-c.Grid.Min)/c.Grid.Step + 1
}
