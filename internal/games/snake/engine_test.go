package snake

import (
	"bytes"
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// testConfig is a 10x10 board in percent-space: cells 0, 10, ..., 90.
func testConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid = config.GridConfig{Min: 0, Max: 90, Step: 10}
	cfg.Snake.InitialPosition = [][2]int{{0, 50}, {10, 50}, {20, 50}}
	cfg.Snake.InitialDirection = "RIGHT"
	cfg.Snake.InitialSpeedMs = 200
	cfg.Snake.MinSpeedMs = 50
	cfg.Snake.SpeedIncrementMs = 10
	return cfg
}

func newTestEngine(t *testing.T, cfg config.SnakeConfig, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithSeed(42)}, opts...)
	e, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

// place overwrites the board: body is tail first, food is put out of the way
// unless given.
func place(t *testing.T, e *Engine, body []core.Cell, dir core.Direction, food core.Cell, speedMs int64) {
	t.Helper()
	err := e.Restore(Snapshot{
		Snake:     body,
		Food:      food,
		Direction: dir,
		Pending:   dir,
		SpeedMs:   speedMs,
	})
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
}

func cells(pairs ...[2]int) []core.Cell {
	out := make([]core.Cell, len(pairs))
	for i, p := range pairs {
		out[i] = core.Cell{X: p[0], Y: p[1]}
	}
	return out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.Max = 95 // 95 is not reachable in steps of 10

	if _, err := New(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New() should fail fast on a malformed grid, got %v", err)
	}
}

func TestInitialState(t *testing.T) {
	e := newTestEngine(t, testConfig())
	snap := e.Snapshot()

	if !reflect.DeepEqual(snap.Snake, cells([2]int{0, 50}, [2]int{10, 50}, [2]int{20, 50})) {
		t.Errorf("initial snake = %v", snap.Snake)
	}
	if snap.Direction != core.DirRight || snap.Pending != core.DirRight {
		t.Errorf("initial direction = %v/%v, expected RIGHT", snap.Direction, snap.Pending)
	}
	if snap.Speed() != 200*time.Millisecond {
		t.Errorf("initial speed = %v", snap.Speed())
	}
	if !e.Rules().OnGrid(snap.Food) {
		t.Errorf("initial food %v is off the grid", snap.Food)
	}
	if snap.Score() != 3 || e.Score() != 3 {
		t.Errorf("score should equal snake length 3, got %d", snap.Score())
	}
}

func TestMovementKeepsLength(t *testing.T) {
	e := newTestEngine(t, testConfig())
	place(t, e, cells([2]int{0, 50}, [2]int{10, 50}, [2]int{20, 50}), core.DirRight, core.Cell{X: 90, Y: 90}, 200)

	res := e.Tick()

	want := cells([2]int{10, 50}, [2]int{20, 50}, [2]int{30, 50})
	if !reflect.DeepEqual(res.Snapshot.Snake, want) {
		t.Errorf("after tick snake = %v, expected %v", res.Snapshot.Snake, want)
	}
	if res.Ate || res.GameOver != nil {
		t.Errorf("plain move should not eat or end: %+v", res)
	}
	if res.Snapshot.Tick != 1 {
		t.Errorf("tick = %d, expected 1", res.Snapshot.Tick)
	}
}

func TestSingleCellSnakeMoves(t *testing.T) {
	e := newTestEngine(t, testConfig())
	place(t, e, cells([2]int{40, 40}), core.DirDown, core.Cell{X: 90, Y: 90}, 200)

	res := e.Tick()
	if !reflect.DeepEqual(res.Snapshot.Snake, cells([2]int{40, 50})) {
		t.Errorf("single cell snake = %v, expected [(40,50)]", res.Snapshot.Snake)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	e := newTestEngine(t, testConfig())
	place(t, e, cells([2]int{0, 50}, [2]int{10, 50}, [2]int{20, 50}), core.DirRight, core.Cell{X: 90, Y: 90}, 200)

	if e.Steer(core.DirLeft) {
		t.Error("reversing RIGHT -> LEFT should be rejected")
	}
	if got := e.Snapshot().Pending; got != core.DirRight {
		t.Errorf("pending = %v after rejected reversal, expected RIGHT", got)
	}

	if !e.Steer(core.DirUp) {
		t.Error("turning UP should be accepted")
	}
	// LEFT is still the reverse of the applied heading (RIGHT)
	if e.Steer(core.DirLeft) {
		t.Error("LEFT should be rejected until a tick applies UP")
	}

	e.Tick()
	if got := e.Snapshot().Direction; got != core.DirUp {
		t.Errorf("direction after tick = %v, expected UP", got)
	}
	if e.Steer(core.DirDown) {
		t.Error("reversing UP -> DOWN should be rejected")
	}
}

func TestReversalRejectedForEveryDirection(t *testing.T) {
	for _, current := range core.Directions {
		e := newTestEngine(t, testConfig())
		place(t, e, cells([2]int{40, 40}, [2]int{50, 50}), current, core.Cell{X: 90, Y: 90}, 200)

		if e.Steer(current.Opposite()) {
			t.Errorf("%v: reverse %v should be rejected", current, current.Opposite())
		}
		if got := e.Snapshot().Pending; got != current {
			t.Errorf("%v: pending changed to %v", current, got)
		}
	}
}

func TestLastInputWinsWithinTick(t *testing.T) {
	e := newTestEngine(t, testConfig())
	place(t, e, cells([2]int{30, 50}, [2]int{40, 50}), core.DirRight, core.Cell{X: 90, Y: 90}, 200)

	e.Steer(core.DirUp)
	e.Steer(core.DirDown)

	res := e.Tick()
	if res.Snapshot.Direction != core.DirDown {
		t.Errorf("direction = %v, expected the last valid input DOWN", res.Snapshot.Direction)
	}
	if res.Snapshot.Head() != (core.Cell{X: 40, Y: 60}) {
		t.Errorf("head = %v, expected (40,60)", res.Snapshot.Head())
	}
}

func TestRepeatedInputIsIdempotent(t *testing.T) {
	once := newTestEngine(t, testConfig())
	many := newTestEngine(t, testConfig())
	for _, e := range []*Engine{once, many} {
		place(t, e, cells([2]int{30, 50}, [2]int{40, 50}), core.DirRight, core.Cell{X: 90, Y: 90}, 200)
	}

	once.Steer(core.DirUp)
	for range 5 {
		many.Steer(core.DirUp)
	}

	a, b := once.Tick(), many.Tick()
	if !reflect.DeepEqual(a.Snapshot, b.Snapshot) {
		t.Errorf("repeated identical input changed the result:\n%+v\n%+v", a.Snapshot, b.Snapshot)
	}
}

func TestKeyCodes(t *testing.T) {
	e := newTestEngine(t, testConfig())
	place(t, e, cells([2]int{30, 50}, [2]int{40, 50}), core.DirRight, core.Cell{X: 90, Y: 90}, 200)

	if e.Key(65) {
		t.Error("unknown key code should be ignored")
	}
	if got := e.Snapshot().Pending; got != core.DirRight {
		t.Errorf("unknown key changed pending to %v", got)
	}
	if e.Key(core.KeyLeft) {
		t.Error("left arrow reverses RIGHT and should be rejected")
	}
	if !e.Key(core.KeyDown) {
		t.Error("down arrow should be accepted")
	}

	for code, want := range map[int]core.Direction{
		core.KeyUp:    core.DirUp,
		core.KeyDown:  core.DirDown,
		core.KeyLeft:  core.DirLeft,
		core.KeyRight: core.DirRight,
	} {
		got, ok := DirectionForKey(code)
		if !ok || got != want {
			t.Errorf("DirectionForKey(%d) = %v, %v; expected %v", code, got, ok, want)
		}
	}
}

func TestDirectionForSwipe(t *testing.T) {
	origin := core.Point{X: 10, Y: 10}
	tests := []struct {
		name      string
		end       core.Point
		threshold int
		want      core.Direction
		ok        bool
	}{
		{"right", core.Point{X: 20, Y: 12}, 2, core.DirRight, true},
		{"left", core.Point{X: 2, Y: 9}, 2, core.DirLeft, true},
		{"down (screen y grows downward)", core.Point{X: 11, Y: 18}, 2, core.DirDown, true},
		{"up", core.Point{X: 9, Y: 3}, 2, core.DirUp, true},
		{"too short", core.Point{X: 11, Y: 10}, 2, core.DirNone, false},
		{"no movement", origin, 0, core.DirNone, false},
		{"diagonal tie goes vertical", core.Point{X: 15, Y: 15}, 2, core.DirDown, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DirectionForSwipe(origin, tc.end, tc.threshold)
			if got != tc.want || ok != tc.ok {
				t.Errorf("DirectionForSwipe() = %v, %v; expected %v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestSwipeSteers(t *testing.T) {
	cfg := testConfig()
	cfg.Input.SwipeThreshold = 3
	e := newTestEngine(t, cfg)
	place(t, e, cells([2]int{30, 50}, [2]int{40, 50}), core.DirRight, core.Cell{X: 90, Y: 90}, 200)

	if e.Swipe(core.Point{X: 5, Y: 5}, core.Point{X: 5, Y: 7}) {
		t.Error("swipe below threshold should be ignored")
	}
	if e.Swipe(core.Point{X: 20, Y: 5}, core.Point{X: 5, Y: 5}) {
		t.Error("swipe left reverses RIGHT and should be rejected")
	}
	if !e.Swipe(core.Point{X: 5, Y: 20}, core.Point{X: 6, Y: 2}) {
		t.Error("swipe up should be accepted")
	}
	if got := e.Snapshot().Pending; got != core.DirUp {
		t.Errorf("pending = %v, expected UP", got)
	}
}

func TestBorderWrapBothAxes(t *testing.T) {
	tests := []struct {
		name string
		body []core.Cell
		dir  core.Direction
		head core.Cell
	}{
		{"right edge", cells([2]int{80, 50}, [2]int{90, 50}), core.DirRight, core.Cell{X: 0, Y: 50}},
		{"left edge", cells([2]int{10, 50}, [2]int{0, 50}), core.DirLeft, core.Cell{X: 90, Y: 50}},
		{"bottom edge", cells([2]int{50, 80}, [2]int{50, 90}), core.DirDown, core.Cell{X: 50, Y: 0}},
		{"top edge", cells([2]int{50, 10}, [2]int{50, 0}), core.DirUp, core.Cell{X: 50, Y: 90}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, testConfig())
			place(t, e, tc.body, tc.dir, core.Cell{X: 20, Y: 20}, 200)

			res := e.Tick()
			if res.GameOver != nil {
				t.Fatalf("wrap mode should not end the game: %+v", res.GameOver)
			}
			if res.Snapshot.Head() != tc.head {
				t.Errorf("head = %v, expected %v", res.Snapshot.Head(), tc.head)
			}
		})
	}
}

func TestWrapSnapsToGrid(t *testing.T) {
	r, err := NewRules(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		in, want core.Cell
	}{
		{core.Cell{X: 100, Y: 50}, core.Cell{X: 0, Y: 50}},
		{core.Cell{X: 50, Y: 100}, core.Cell{X: 50, Y: 0}},
		{core.Cell{X: -10, Y: 50}, core.Cell{X: 90, Y: 50}},
		{core.Cell{X: 50, Y: -10}, core.Cell{X: 50, Y: 90}},
		{core.Cell{X: 105, Y: 0}, core.Cell{X: 0, Y: 0}},
	}
	for _, tc := range tests {
		if got := wrap(tc.in, r); got != tc.want {
			t.Errorf("wrap(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestBorderTerminate(t *testing.T) {
	cfg := testConfig()
	cfg.Rules.Border = config.BorderTerminate

	for _, tc := range []struct {
		name string
		body []core.Cell
		dir  core.Direction
	}{
		{"x axis", cells([2]int{80, 50}, [2]int{90, 50}), core.DirRight},
		{"y axis", cells([2]int{50, 10}, [2]int{50, 0}), core.DirUp},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, cfg)
			place(t, e, tc.body, tc.dir, core.Cell{X: 20, Y: 20}, 200)

			res := e.Tick()
			if res.GameOver == nil {
				t.Fatal("leaving the board should end the game in terminate mode")
			}
			if res.GameOver.Reason != ReasonOutOfBounds {
				t.Errorf("reason = %q, expected out_of_bounds", res.GameOver.Reason)
			}
			if res.GameOver.Score != 2 {
				t.Errorf("score = %d, expected 2", res.GameOver.Score)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	// Head at (0,10) turning up onto (0,0), which stays occupied after the
	// tail (90,0) slides off: [(0,0),(10,0),(10,10),(0,10),(0,0)].
	body := cells([2]int{90, 0}, [2]int{0, 0}, [2]int{10, 0}, [2]int{10, 10}, [2]int{0, 10})

	e := newTestEngine(t, testConfig())
	place(t, e, body, core.DirLeft, core.Cell{X: 50, Y: 50}, 200)
	if !e.Steer(core.DirUp) {
		t.Fatal("UP should be accepted")
	}

	res := e.Tick()
	if res.GameOver == nil {
		t.Fatal("head revisiting (0,0) should end the game")
	}
	if res.GameOver.Reason != ReasonSelfCollision {
		t.Errorf("reason = %q, expected self_collision", res.GameOver.Reason)
	}
	want := cells([2]int{0, 0}, [2]int{10, 0}, [2]int{10, 10}, [2]int{0, 10}, [2]int{0, 0})
	if !reflect.DeepEqual(res.GameOver.Final.Snake, want) {
		t.Errorf("final snake = %v, expected %v", res.GameOver.Final.Snake, want)
	}
	if res.GameOver.Score != 5 {
		t.Errorf("score = %d, expected 5", res.GameOver.Score)
	}
}

func TestMovingIntoVacatedTailIsSafe(t *testing.T) {
	// A 4-cell loop: the head moves into the cell the tail leaves this tick.
	body := cells([2]int{10, 10}, [2]int{20, 10}, [2]int{20, 20}, [2]int{10, 20})

	e := newTestEngine(t, testConfig())
	place(t, e, body, core.DirLeft, core.Cell{X: 80, Y: 80}, 200)
	e.Steer(core.DirUp)

	res := e.Tick()
	if res.GameOver != nil {
		t.Fatalf("chasing the tail should not collide: %+v", res.GameOver)
	}
}

func TestFeeding(t *testing.T) {
	cfg := testConfig()
	cfg.Rules.StrictFood = true
	e := newTestEngine(t, cfg)

	food := core.Cell{X: 50, Y: 50}
	place(t, e, cells([2]int{30, 50}, [2]int{40, 50}), core.DirRight, food, 200)

	res := e.Tick()
	snap := res.Snapshot

	if !res.Ate {
		t.Fatal("head reaching the food should eat it")
	}
	if snap.Head() != food {
		t.Errorf("head = %v, expected %v", snap.Head(), food)
	}
	if want := cells([2]int{30, 50}, [2]int{40, 50}, [2]int{50, 50}); !reflect.DeepEqual(snap.Snake, want) {
		t.Errorf("snake = %v, expected tail kept: %v", snap.Snake, want)
	}
	if snap.Food == food {
		t.Error("food should respawn somewhere else")
	}
	if !e.Rules().OnGrid(snap.Food) {
		t.Errorf("respawned food %v is off the grid", snap.Food)
	}
	if snap.Speed() != 190*time.Millisecond {
		t.Errorf("speed = %v, expected 190ms", snap.Speed())
	}
}

func TestSpeedFloor(t *testing.T) {
	tests := []struct {
		name       string
		speedMs    int64
		expectedMs int64
	}{
		{"regular decrement", 120, 110},
		{"clamped to minimum", 55, 50},
		{"already at minimum", 50, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, testConfig())
			place(t, e, cells([2]int{30, 50}, [2]int{40, 50}), core.DirRight, core.Cell{X: 50, Y: 50}, tc.speedMs)

			res := e.Tick()
			if !res.Ate {
				t.Fatal("expected a feed")
			}
			if got := res.Snapshot.SpeedMs; got != tc.expectedMs {
				t.Errorf("speed = %dms, expected %dms", got, tc.expectedMs)
			}
		})
	}
}

func TestLengthInvariantOverManyTicks(t *testing.T) {
	e := newTestEngine(t, testConfig(), WithSeed(7))
	rng := rand.New(rand.NewSource(3))

	for range 2000 {
		before := e.Snapshot()
		e.Steer(core.Directions[rng.Intn(len(core.Directions))])
		res := e.Tick()

		if res.GameOver != nil {
			continue
		}
		want := len(before.Snake)
		if res.Ate {
			want++
		}
		if got := len(res.Snapshot.Snake); got != want {
			t.Fatalf("tick %d: length %d, expected %d (ate=%v)", res.Snapshot.Tick, got, want, res.Ate)
		}
		if res.Snapshot.SpeedMs > before.SpeedMs {
			t.Fatalf("tick %d: speed increased from %d to %d", res.Snapshot.Tick, before.SpeedMs, res.Snapshot.SpeedMs)
		}
	}
}

func TestResetAfterGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Rules.Border = config.BorderTerminate

	var reported []GameOver
	var e *Engine
	e = newTestEngine(t, cfg, WithGameOverHandler(func(over GameOver) {
		// The report arrives before the reset: the engine still shows the final board.
		if got := e.Snapshot(); !reflect.DeepEqual(got, over.Final) {
			t.Errorf("handler saw %+v, expected final board %+v", got, over.Final)
		}
		reported = append(reported, over)
	}))
	place(t, e, cells([2]int{70, 90}, [2]int{80, 90}, [2]int{90, 90}), core.DirRight, core.Cell{X: 10, Y: 10}, 120)

	res := e.Tick()
	if res.GameOver == nil || len(reported) != 1 {
		t.Fatalf("expected one game-over report, got %d", len(reported))
	}
	if reported[0].Score != 3 {
		t.Errorf("reported score = %d, expected 3", reported[0].Score)
	}

	snap := res.Snapshot
	rules := e.Rules()
	if !reflect.DeepEqual(snap.Snake, rules.InitialSnake) {
		t.Errorf("snake after reset = %v, expected %v", snap.Snake, rules.InitialSnake)
	}
	if snap.Direction != rules.InitialDirection || snap.Pending != rules.InitialDirection {
		t.Errorf("direction after reset = %v/%v", snap.Direction, snap.Pending)
	}
	if snap.Speed() != rules.InitialSpeed {
		t.Errorf("speed after reset = %v, expected %v", snap.Speed(), rules.InitialSpeed)
	}
	if snap.Tick != 0 {
		t.Errorf("tick after reset = %d, expected 0", snap.Tick)
	}

	// Play resumes without a manual restart.
	next := e.Tick()
	if next.Snapshot.Tick != 1 || next.GameOver != nil {
		t.Errorf("engine should keep ticking after reset, got %+v", next)
	}
}

func TestResetFoodMatchesFreshEngine(t *testing.T) {
	cfg := testConfig()
	a := newTestEngine(t, cfg, WithSeed(11))
	b := newTestEngine(t, cfg, WithSeed(11))

	a.Reset()
	b.Reset()
	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Errorf("same seed should reset to the same state:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
}

func TestDeterminism(t *testing.T) {
	script := map[int]core.Direction{5: core.DirDown, 9: core.DirLeft, 14: core.DirUp, 30: core.DirRight}

	run := func() []Snapshot {
		e := newTestEngine(t, testConfig(), WithSeed(12345))
		var out []Snapshot
		for i := range 100 {
			if d, ok := script[i]; ok {
				e.Steer(d)
			}
			out = append(out, e.Tick().Snapshot)
		}
		return out
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("identical seeds and inputs should produce identical trajectories")
	}
}

func TestSnapshotRoundTripResumesIdentically(t *testing.T) {
	e := newTestEngine(t, testConfig(), WithSeed(7))
	for i := range 25 {
		if i == 4 {
			e.Steer(core.DirDown)
		}
		e.Tick()
	}
	original := e.Snapshot()

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, original); err != nil {
		t.Fatalf("EncodeSnapshot() failed: %v", err)
	}
	decoded, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot() failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Fatalf("decoded snapshot differs:\n%+v\n%+v", decoded, original)
	}

	inputs := map[int]core.Direction{3: core.DirLeft, 8: core.DirUp, 20: core.DirRight}
	resume := func(snap Snapshot) []Snapshot {
		r := newTestEngine(t, testConfig(), WithSeed(99))
		if err := r.Restore(snap); err != nil {
			t.Fatalf("Restore() failed: %v", err)
		}
		var out []Snapshot
		for i := range 60 {
			if d, ok := inputs[i]; ok {
				r.Steer(d)
			}
			out = append(out, r.Tick().Snapshot)
		}
		return out
	}

	if a, b := resume(original), resume(decoded); !reflect.DeepEqual(a, b) {
		t.Error("resuming from a decoded snapshot should reproduce the trajectory")
	}
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	e := newTestEngine(t, testConfig())
	good := e.Snapshot()

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"empty snake", func(s *Snapshot) { s.Snake = nil }},
		{"off-grid cell", func(s *Snapshot) { s.Snake = cells([2]int{5, 5}) }},
		{"out of bounds cell", func(s *Snapshot) { s.Snake = cells([2]int{100, 0}) }},
		{"off-grid food", func(s *Snapshot) { s.Food = core.Cell{X: 3, Y: 0} }},
		{"no direction", func(s *Snapshot) { s.Direction = core.DirNone }},
		{"zero speed", func(s *Snapshot) { s.SpeedMs = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := good
			snap.Snake = append([]core.Cell(nil), good.Snake...)
			tc.mutate(&snap)
			if err := e.Restore(snap); !errors.Is(err, ErrBadSnapshot) {
				t.Errorf("Restore() error = %v, expected ErrBadSnapshot", err)
			}
		})
	}

	if !reflect.DeepEqual(e.Snapshot(), good) {
		t.Error("a rejected Restore must leave the state untouched")
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	r, err := NewRules(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	s := State{
		Snake:     cells([2]int{30, 50}, [2]int{40, 50}),
		Food:      core.Cell{X: 50, Y: 50},
		Direction: core.DirRight,
		Pending:   core.DirRight,
		Speed:     200 * time.Millisecond,
	}
	before := s.Clone()

	next, out := Advance(s, r, rand.New(rand.NewSource(1)))
	if !out.Ate {
		t.Fatal("expected a feed")
	}
	if !reflect.DeepEqual(s, before) {
		t.Errorf("Advance modified its input: %+v", s)
	}
	if len(next.Snake) != 3 {
		t.Errorf("next length = %d, expected 3", len(next.Snake))
	}
}
