// Package track translates host window events into overlay geometry.
package track

import (
	"log/slog"

	"lume/internal/geometry"
)

// Handle is the subset of overlay operations the tracker drives.
type Handle interface {
	SetParentPosition(pos geometry.Point)
	SetOrigin(pos geometry.Point)
	SetSize(size geometry.Size)
}

// Resizer reconfigures the presentable surface; it is expected to ignore
// degenerate sizes on its own.
type Resizer interface {
	Resize(size geometry.Size)
}

// Tracker applies the band policy to host move/resize events and keeps the
// overlay handle and the GPU surface in sync. All calls are synchronous and
// either succeed or no-op safely, so no retry logic exists here.
type Tracker struct {
	band    geometry.Band
	handle  Handle
	surface Resizer
}

func New(band geometry.Band, handle Handle, surface Resizer) *Tracker {
	return &Tracker{
		band:    band,
		handle:  handle,
		surface: surface,
	}
}

// HostMoved forwards the new host position to the overlay handle.
func (t *Tracker) HostMoved(pos geometry.Point) {
	t.handle.SetParentPosition(pos)
}

// HostResized recomputes the overlay geometry and commits it to the handle
// and the surface. Applying the same host size twice commits the same
// geometry twice. A host size with a zero dimension (transient minimize) is
// skipped entirely; a degenerate geometry is never committed.
func (t *Tracker) HostResized(size geometry.Size) {
	if size.IsZero() {
		slog.Debug("Skipping degenerate host size",
			slog.Int("width", int(size.Width)),
			slog.Int("height", int(size.Height)),
		)
		return
	}

	origin, overlaySize := t.band.Layout(size)
	t.handle.SetOrigin(origin)
	t.handle.SetSize(overlaySize)
	t.surface.Resize(overlaySize)
}

// PlaceAt moves the overlay to an explicit host-local position, bypassing the
// band policy. Used by follow-cursor mode.
func (t *Tracker) PlaceAt(pos geometry.Point) {
	t.handle.SetOrigin(pos)
}
