package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant IDs.
const (
	VariantClassic = "snake"
	VariantWalls   = "snake_walls"
	VariantStrict  = "snake_strict"
)

func init() {
	registry.Register(registry.Variant{
		ID:          VariantClassic,
		Title:       "Snake",
		Description: "Edges wrap around; food may land anywhere.",
		Configure: func(cfg *config.SnakeConfig) {
			cfg.Rules.Border = config.BorderWrap
		},
	})
	registry.Register(registry.Variant{
		ID:          VariantWalls,
		Title:       "Snake (Walls)",
		Description: "Leaving the board ends the game.",
		Configure: func(cfg *config.SnakeConfig) {
			cfg.Rules.Border = config.BorderTerminate
		},
	})
	registry.Register(registry.Variant{
		ID:          VariantStrict,
		Title:       "Snake (Strict Food)",
		Description: "Edges wrap; food never spawns on the snake.",
		Configure: func(cfg *config.SnakeConfig) {
			cfg.Rules.Border = config.BorderWrap
			cfg.Rules.StrictFood = true
		},
	})
}
