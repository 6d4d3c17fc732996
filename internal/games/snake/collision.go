package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Collider decides whether head overlaps any cell of body.
// body excludes the head itself.
type Collider interface {
	Collides(body []core.Cell, head core.Cell) bool
}

// ScanCollider compares the head against every body cell.
type ScanCollider struct{}

// Collides implements Collider.
func (ScanCollider) Collides(body []core.Cell, head core.Cell) bool {
	for _, c := range body {
		if c == head {
			return true
		}
	}
	return false
}

// SetCollider indexes the body in a set before the lookup. It is used for
// large boards where long snakes make repeated scans expensive.
type SetCollider struct{}

// Collides implements Collider.
func (SetCollider) Collides(body []core.Cell, head core.Cell) bool {
	occupied := make(map[core.Cell]struct{}, len(body))
	for _, c := range body {
		occupied[c] = struct{}{}
	}
	_, hit := occupied[head]
	return hit
}
