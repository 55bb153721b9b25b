package overlay

import (
	"sync"

	"lume/internal/geometry"
)

// anchor tracks the two inputs an owned top-level overlay needs to compute
// its absolute screen origin: the host window position and the overlay's
// host-local origin. The two update independently and asynchronously, so both
// are retained across calls rather than recomputed from a single event.
type anchor struct {
	mu        sync.Mutex
	parentPos geometry.Point
	origin    geometry.Point
}

// setParent records a new host position and returns the resulting absolute
// origin.
func (a *anchor) setParent(pos geometry.Point) geometry.Point {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.parentPos = pos
	return a.origin.Add(a.parentPos)
}

// setOrigin records a new host-local origin and returns the resulting
// absolute origin.
func (a *anchor) setOrigin(pos geometry.Point) geometry.Point {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.origin = pos
	return a.origin.Add(a.parentPos)
}
