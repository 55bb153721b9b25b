package overlay

import (
	"testing"

	"lume/internal/geometry"
)

// embeddedRecorder mirrors the embedded-subview coordinate handling: origins
// are host-local and parent moves are ignored.
type embeddedRecorder struct {
	origin geometry.Point
	size   geometry.Size
}

func (r *embeddedRecorder) SetParentPosition(pos geometry.Point) {}
func (r *embeddedRecorder) SetOrigin(pos geometry.Point)         { r.origin = pos }
func (r *embeddedRecorder) SetSize(size geometry.Size)           { r.size = size }

// ownedRecorder mirrors the owned-top-level handling: the applied origin is
// screen-space, recomputed from the retained anchor on either input.
type ownedRecorder struct {
	anchor  anchor
	applied geometry.Point
	size    geometry.Size
}

func (r *ownedRecorder) SetParentPosition(pos geometry.Point) { r.applied = r.anchor.setParent(pos) }
func (r *ownedRecorder) SetOrigin(pos geometry.Point)         { r.applied = r.anchor.setOrigin(pos) }
func (r *ownedRecorder) SetSize(size geometry.Size)           { r.size = size }

// Both variants must converge to the same host-local geometry for the same
// event sequence; they differ only in which coordinate space they apply it in.
func TestVariantsConverge(t *testing.T) {
	band := geometry.DefaultBand()

	type event struct {
		move   *geometry.Point
		resize *geometry.Size
	}
	pt := func(x, y int32) *geometry.Point { return &geometry.Point{X: x, Y: y} }
	sz := func(w, h uint32) *geometry.Size { return &geometry.Size{Width: w, Height: h} }

	events := []event{
		{move: pt(100, 100)},
		{resize: sz(1000, 800)},
		{move: pt(150, 120)},
		{resize: sz(1280, 1024)},
		{resize: sz(1000, 800)},
		{move: pt(40, 700)},
	}

	embedded := &embeddedRecorder{}
	owned := &ownedRecorder{}

	var lastParent geometry.Point
	for _, ev := range events {
		switch {
		case ev.move != nil:
			lastParent = *ev.move
			embedded.SetParentPosition(*ev.move)
			owned.SetParentPosition(*ev.move)
		case ev.resize != nil:
			origin, size := band.Layout(*ev.resize)
			embedded.SetOrigin(origin)
			embedded.SetSize(size)
			owned.SetOrigin(origin)
			owned.SetSize(size)
		}
	}

	if embedded.size != owned.size {
		t.Errorf("sizes diverged: embedded %v, owned %v", embedded.size, owned.size)
	}

	// The owned variant's screen origin minus the final parent position must
	// equal the embedded variant's host-local origin.
	ownedLocal := geometry.Point{
		X: owned.applied.X - lastParent.X,
		Y: owned.applied.Y - lastParent.Y,
	}
	if ownedLocal != embedded.origin {
		t.Errorf("origins diverged: embedded %v, owned (host-local) %v", embedded.origin, ownedLocal)
	}
}

func TestOwnedRecorder_ScreenOrigin(t *testing.T) {
	r := &ownedRecorder{}

	r.SetParentPosition(geometry.Point{X: 100, Y: 100})
	r.SetOrigin(geometry.Point{X: 350, Y: 100})
	if r.applied != (geometry.Point{X: 450, Y: 200}) {
		t.Errorf("screen origin = %v; want (450, 200)", r.applied)
	}

	r.SetParentPosition(geometry.Point{X: 150, Y: 120})
	if r.applied != (geometry.Point{X: 500, Y: 220}) {
		t.Errorf("screen origin after move = %v; want (500, 220)", r.applied)
	}
}
