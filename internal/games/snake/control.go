package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// DirectionForKey maps an arrow key code to a heading.
// Unknown codes return false.
func DirectionForKey(code int) (core.Direction, bool) {
	switch code {
	case core.KeyUp:
		return core.DirUp, true
	case core.KeyDown:
		return core.DirDown, true
	case core.KeyLeft:
		return core.DirLeft, true
	case core.KeyRight:
		return core.DirRight, true
	}
	return core.DirNone, false
}

// DirectionForSwipe maps a drag from start to end to a heading along the
// dominant axis. Drags shorter than threshold (in either axis) are ignored.
// Screen Y grows downward, so a drag toward the bottom means DirDown.
func DirectionForSwipe(start, end core.Point, threshold int) (core.Direction, bool) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	adx, ady := core.Abs(dx), core.Abs(dy)

	if adx == 0 && ady == 0 {
		return core.DirNone, false
	}
	if max(adx, ady) < threshold {
		return core.DirNone, false
	}

	if adx > ady {
		if dx > 0 {
			return core.DirRight, true
		}
		return core.DirLeft, true
	}
	if dy > 0 {
		return core.DirDown, true
	}
	return core.DirUp, true
}

// Steer sets the heading for the next tick. A reversal of the heading
// applied on the last tick is rejected. Several calls between two ticks
// collapse to the last accepted one.
func (e *Engine) Steer(d core.Direction) bool {
	if !d.Valid() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if d == e.state.Direction.Opposite() {
		return false
	}
	e.state.Pending = d
	return true
}

// Key steers from an arrow key code. Unknown codes are ignored.
func (e *Engine) Key(code int) bool {
	d, ok := DirectionForKey(code)
	if !ok {
		return false
	}
	return e.Steer(d)
}

// Swipe steers from a drag gesture between two screen points.
func (e *Engine) Swipe(start, end core.Point) bool {
	d, ok := DirectionForSwipe(start, end, e.swipeThreshold)
	if !ok {
		return false
	}
	return e.Steer(d)
}
