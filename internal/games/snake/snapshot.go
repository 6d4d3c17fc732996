package snake

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBadSnapshot is wrapped by every snapshot validation failure.
var ErrBadSnapshot = errors.New("snake: invalid snapshot")

// Snapshot captures the game state for rendering, determinism testing and
// replay. It serializes to YAML without loss.
type Snapshot struct {
	Tick      uint64         `yaml:"tick"`
	Snake     []core.Cell    `yaml:"snake"` // tail first, head last
	Food      core.Cell      `yaml:"food"`
	Direction core.Direction `yaml:"direction"`
	Pending   core.Direction `yaml:"pending"`
	SpeedMs   int64          `yaml:"speed_ms"`
}

// Head returns the head cell, or the zero cell for an empty snapshot.
func (s Snapshot) Head() core.Cell {
	if len(s.Snake) == 0 {
		return core.Cell{}
	}
	return s.Snake[len(s.Snake)-1]
}

// Score is the snake length.
func (s Snapshot) Score() int {
	return len(s.Snake)
}

// Speed returns the tick interval.
func (s Snapshot) Speed() time.Duration {
	return time.Duration(s.SpeedMs) * time.Millisecond
}

func snapshotOf(s State) Snapshot {
	return Snapshot{
		Tick:      s.Tick,
		Snake:     append([]core.Cell(nil), s.Snake...),
		Food:      s.Food,
		Direction: s.Direction,
		Pending:   s.Pending,
		SpeedMs:   s.Speed.Milliseconds(),
	}
}

// stateOf converts a snapshot back into a State after checking it against
// the rules.
func stateOf(snap Snapshot, r Rules) (State, error) {
	if len(snap.Snake) == 0 {
		return State{}, fmt.Errorf("%w: empty snake", ErrBadSnapshot)
	}
	for i, c := range snap.Snake {
		if !r.OnGrid(c) {
			return State{}, fmt.Errorf("%w: snake[%d] %v is off the grid", ErrBadSnapshot, i, c)
		}
	}
	if !r.OnGrid(snap.Food) {
		return State{}, fmt.Errorf("%w: food %v is off the grid", ErrBadSnapshot, snap.Food)
	}
	if !snap.Direction.Valid() {
		return State{}, fmt.Errorf("%w: direction %v", ErrBadSnapshot, snap.Direction)
	}
	pending := snap.Pending
	if !pending.Valid() {
		pending = snap.Direction
	}
	if snap.SpeedMs <= 0 {
		return State{}, fmt.Errorf("%w: speed_ms must be positive, got %d", ErrBadSnapshot, snap.SpeedMs)
	}

	return State{
		Tick:      snap.Tick,
		Snake:     append([]core.Cell(nil), snap.Snake...),
		Food:      snap.Food,
		Direction: snap.Direction,
		Pending:   pending,
		Speed:     snap.Speed(),
	}, nil
}

// EncodeSnapshot writes s as YAML.
func EncodeSnapshot(w io.Writer, s Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("snake: encode snapshot: %w", err)
	}
	return enc.Close()
}

// DecodeSnapshot reads a YAML snapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return s, fmt.Errorf("snake: decode snapshot: %w", err)
	}
	return s, nil
}
