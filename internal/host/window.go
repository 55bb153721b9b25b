// Package host wraps the primary application window. The overlay only ever
// observes it: position and size are read through events, never mutated.
//
// Sizes and positions are physical pixels. glfw delivers screen coordinates,
// which match physical pixels on the supported X11 and Win32 targets; mixed
// logical/physical delivery is not supported.
package host

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"lume/internal/geometry"
)

type Window struct {
	win *glfw.Window
}

// New initializes the toolkit and creates the host window. No client API is
// requested; all drawing happens on the overlay surface.
func New(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	return &Window{win: window}, nil
}

// Native exposes the underlying toolkit window for platform handle access.
func (w *Window) Native() *glfw.Window {
	return w.win
}

func (w *Window) Size() geometry.Size {
	width, height := w.win.GetSize()
	return geometry.Size{Width: uint32(width), Height: uint32(height)}
}

func (w *Window) Position() geometry.Point {
	x, y := w.win.GetPos()
	return geometry.Point{X: int32(x), Y: int32(y)}
}

// OnMoved registers the move handler. Callbacks arrive on the toolkit's
// callback thread.
func (w *Window) OnMoved(fn func(geometry.Point)) {
	w.win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		fn(geometry.Point{X: int32(x), Y: int32(y)})
	})
}

// OnResized registers the resize handler. Minimization delivers (0, 0).
func (w *Window) OnResized(fn func(geometry.Size)) {
	w.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(geometry.Size{Width: uint32(width), Height: uint32(height)})
	})
}

// OnCursor registers a handler for cursor movement in host-local coordinates.
func (w *Window) OnCursor(fn func(geometry.Point)) {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		fn(geometry.Point{X: int32(x), Y: int32(y)})
	})
}

// Run pumps host events until the window is closed.
func (w *Window) Run() {
	for !w.win.ShouldClose() {
		glfw.WaitEvents()
	}
}

func (w *Window) Terminate() {
	w.win.Destroy()
	glfw.Terminate()
}
