// Package overlay creates and positions the borderless, click-through surface
// layered on top of the host window.
//
// There are two structurally different native mechanisms behind the same
// Handle interface, selected once at startup by build target:
//
//   - embedded subview (X11): the overlay is a child window of the host's
//     native window. Its coordinate space is host-local and it moves with the
//     host automatically, so SetParentPosition is a no-op.
//   - owned top-level (Windows): the overlay is an independent top-level
//     window owned by the host HWND. It lives in screen space, so the handle
//     retains the last parent position and last local origin and recomputes
//     the absolute origin whenever either changes.
//
// The overlay never receives input: both variants are marked click-through at
// the OS level. Once the native object is gone every operation is a silent
// no-op; the overlay must never crash independently of the host window.
package overlay

import (
	"github.com/cogentcore/webgpu/wgpu"

	"lume/internal/geometry"
)

// Placeholder geometry used at creation time; the first host resize event
// replaces it.
var (
	initialOrigin = geometry.Point{X: 30, Y: 30}
	initialSize   = geometry.Size{Width: 200, Height: 200}
)

// Handle is the platform-polymorphic overlay surface.
//
// All coordinates are physical pixels. SetOrigin takes a host-local position
// regardless of variant; the owned variant translates it to screen space
// internally.
type Handle interface {
	// SetParentPosition records a new host window position. Embedded
	// variants ignore it; owned variants re-anchor the overlay.
	SetParentPosition(pos geometry.Point)

	// SetOrigin places the overlay at a host-local position.
	SetOrigin(pos geometry.Point)

	// SetSize resizes the overlay surface.
	SetSize(size geometry.Size)

	// SurfaceDescriptor exposes the native surface as a creation target
	// for a GPU surface. The handle keeps ownership of the underlying
	// window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Close destroys the native surface. Further operations no-op.
	Close()
}
