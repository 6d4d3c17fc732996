package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file
// cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Min:  0,
			Max:  96,
			Step: 4,
		},
		Snake: SnakeParams{
			InitialPosition:  [][2]int{{0, 0}, {4, 0}},
			InitialDirection: "RIGHT",
			InitialSpeedMs:   200,
			MinSpeedMs:       60,
			SpeedIncrementMs: 10,
			DotSize:          2,
			Color:            "2",
		},
		Food: FoodConfig{
			Size:  2,
			Color: "1",
		},
		Rules: RulesConfig{
			Border:     BorderWrap,
			StrictFood: false,
		},
		Input: InputConfig{
			SwipeThreshold: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
