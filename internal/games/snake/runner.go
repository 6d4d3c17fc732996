package snake

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Presenter consumes the engine output.
type Presenter interface {
	// Frame receives the state after every tick, and once before the first.
	Frame(Snapshot)
	// GameOver receives the final report before the state resets. The runner
	// waits for it to return, so a presenter may block for acknowledgment.
	GameOver(GameOver)
}

// Runner drives an Engine from a timer whose interval follows the current
// speed.
type Runner struct {
	engine *Engine
	logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(e *Engine, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{engine: e, logger: logger}
}

// Run ticks the engine until ctx is cancelled and returns ctx.Err().
// No tick starts after cancellation is observed, and none runs after Run
// returns.
func (r *Runner) Run(ctx context.Context, p Presenter) error {
	p.Frame(r.engine.Snapshot())

	speed := r.engine.Speed()
	timer := time.NewTimer(speed)
	defer timer.Stop()

	r.logger.Debug("runner started", "speed", speed)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		res := r.engine.tick(func(over GameOver) {
			r.logger.Info("game over", "score", over.Score, "reason", over.Reason, "tick", over.Final.Tick)
			p.GameOver(over)
		})
		p.Frame(res.Snapshot)

		if res.Ate {
			r.logger.Debug("food eaten", "score", res.Snapshot.Score(), "speed", res.Snapshot.Speed())
		}

		next := r.engine.Speed()
		if next != speed {
			r.logger.Debug("speed changed", "from", speed, "to", next)
			speed = next
		}
		timer.Reset(speed)
	}
}
