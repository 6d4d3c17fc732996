package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. The empty string means "keep the
// configured values".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyDifficultyPreset adjusts the speed curve for a preset.
// Easy starts slower, hard starts faster with a lower floor, and fixed keeps
// the starting speed for the whole session.
func ApplyDifficultyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	s := &cfg.Snake
	switch preset {
	case DifficultyEasy:
		s.InitialSpeedMs = s.InitialSpeedMs * 3 / 2
		s.SpeedIncrementMs = max(s.SpeedIncrementMs/2, 1)
	case DifficultyHard:
		s.InitialSpeedMs = max(s.InitialSpeedMs*2/3, s.MinSpeedMs)
		s.MinSpeedMs = max(s.MinSpeedMs*2/3, 1)
		s.SpeedIncrementMs *= 2
	case DifficultyFixed:
		s.SpeedIncrementMs = 0
	}
}
