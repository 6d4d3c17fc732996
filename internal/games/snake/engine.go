package snake

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// GameOver is the report delivered when a game ends.
type GameOver struct {
	Score  int       // snake length at the moment of loss
	Reason EndReason // what ended the game
	Final  Snapshot  // board as it was when the game ended
}

// Result is returned by Engine.Tick.
type Result struct {
	Snapshot Snapshot  // state after the tick (after the reset on game over)
	Ate      bool      // food was eaten on this tick
	GameOver *GameOver // set when the tick ended a game
}

// Engine owns the game state. All methods are safe for concurrent use:
// input may arrive from one goroutine while another drives Tick.
type Engine struct {
	tickMu sync.Mutex // serializes Tick, including the game-over handler
	mu     sync.Mutex // guards everything below

	rules          Rules
	rng            *rand.Rand
	state          State
	swipeThreshold int
	onGameOver     func(GameOver)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the food RNG for reproducible games.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses rng for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithCollider replaces the self-collision strategy.
func WithCollider(c Collider) Option {
	return func(e *Engine) {
		e.rules.Collider = c
	}
}

// WithGameOverHandler registers fn to receive game-over reports from Tick.
// fn runs synchronously after the losing tick and before the reset, without
// the state lock held, so it may block and input keeps being accepted.
func WithGameOverHandler(fn func(GameOver)) Option {
	return func(e *Engine) {
		e.onGameOver = fn
	}
}

// New validates cfg and creates an engine in its initial state.
func New(cfg config.SnakeConfig, opts ...Option) (*Engine, error) {
	rules, err := NewRules(cfg)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		rules:          rules,
		swipeThreshold: cfg.Input.SwipeThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.state = InitialState(e.rules, e.rng)
	return e, nil
}

// Rules returns the session rules.
func (e *Engine) Rules() Rules {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rules
}

// Speed returns the current tick interval.
func (e *Engine) Speed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Speed
}

// Score returns the current snake length.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Score()
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshotOf(e.state)
}

// Reset reinitializes snake, food, direction and speed.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = InitialState(e.rules, e.rng)
}

// Restore replaces the state with a snapshot. The RNG is not part of the
// snapshot; seed the engine to reproduce food placement.
func (e *Engine) Restore(snap Snapshot) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := stateOf(snap, e.rules)
	if err != nil {
		return err
	}
	e.state = s
	return nil
}

// Tick advances the game by one step. On game over the registered handler
// receives the report, then the state is reset and play continues.
func (e *Engine) Tick() Result {
	return e.tick(e.onGameOver)
}

func (e *Engine) tick(report func(GameOver)) Result {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	e.mu.Lock()
	next, out := Advance(e.state, e.rules, e.rng)
	e.state = next
	if !out.Over {
		snap := snapshotOf(next)
		e.mu.Unlock()
		return Result{Snapshot: snap, Ate: out.Ate}
	}

	over := GameOver{
		Score:  next.Score(),
		Reason: out.Reason,
		Final:  snapshotOf(next),
	}
	e.mu.Unlock()

	if report != nil {
		report(over)
	}

	e.mu.Lock()
	e.state = InitialState(e.rules, e.rng)
	snap := snapshotOf(e.state)
	e.mu.Unlock()

	return Result{Snapshot: snap, GameOver: &over}
}
