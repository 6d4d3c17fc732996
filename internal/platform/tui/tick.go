// Package tui provides the Bubble Tea front end for the snake engine.
// The engine ticks on its own goroutine; frames reach the program as
// messages and input flows back through the engine's Steer methods.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// FrameMsg carries the state after a tick.
type FrameMsg struct {
	Snapshot snake.Snapshot
}

// GameOverMsg carries a game-over report. The engine is paused until the
// model acknowledges it.
type GameOverMsg struct {
	Over snake.GameOver
}

// programPresenter forwards runner output into a Bubble Tea program.
type programPresenter struct {
	ctx  context.Context
	send func(tea.Msg)
	ack  <-chan struct{}
}

func (p *programPresenter) Frame(s snake.Snapshot) {
	p.send(FrameMsg{Snapshot: s})
}

// GameOver blocks until the player confirms or the program shuts down.
func (p *programPresenter) GameOver(over snake.GameOver) {
	p.send(GameOverMsg{Over: over})
	select {
	case <-p.ack:
	case <-p.ctx.Done():
	}
}
