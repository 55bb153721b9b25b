// Command lume attaches a borderless, click-through GPU overlay to its host
// window and keeps it glued to a band near the top edge while the host moves
// and resizes.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/pkg/profile"

	"lume/internal/config"
	"lume/internal/geometry"
	"lume/internal/gpu"
	"lume/internal/host"
	"lume/internal/overlay"
	"lume/internal/render"
	"lume/internal/track"
)

func init() {
	// The host toolkit demands its event loop on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load()
	check(err, "load config")

	if cfg.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	win, err := host.New(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	check(err, "create host window")
	defer win.Terminate()

	handle, err := overlay.Attach(win.Native())
	check(err, "attach overlay")
	defer handle.Close()

	band := cfg.BandPolicy()
	_, initial := band.Layout(win.Size())

	clear := wgpu.Color{
		R: cfg.Render.ClearColor[0],
		G: cfg.Render.ClearColor[1],
		B: cfg.Render.ClearColor[2],
		A: cfg.Render.ClearColor[3],
	}

	surface := negotiateSurface(handle, initial, clear)
	defer surface.Release()

	tracker := track.New(band, handle, surface)

	win.OnMoved(tracker.HostMoved)
	win.OnResized(tracker.HostResized)
	if cfg.FollowCursor {
		win.OnCursor(tracker.PlaceAt)
	}

	// Commit the current host geometry before the first frame so the
	// overlay never flashes at its construction placement.
	tracker.HostMoved(win.Position())
	tracker.HostResized(win.Size())

	go render.Loop(surface, cfg.Interval())

	win.Run()
}

// negotiateSurface runs device negotiation on its own goroutine and blocks
// until it settles. Host events are not dispatched before this returns, so
// nothing ever observes a half-initialized surface.
func negotiateSurface(handle overlay.Handle, initial geometry.Size, clear wgpu.Color) *gpu.Surface {
	type result struct {
		surface *gpu.Surface
		err     error
	}

	done := make(chan result, 1)
	go func() {
		s, err := gpu.New(handle.SurfaceDescriptor(), initial, clear)
		done <- result{surface: s, err: err}
	}()

	res := <-done
	check(res.err, "negotiate gpu surface")
	return res.surface
}

func check(err error, action string) {
	if err != nil {
		slog.Error("Startup failed", slog.String("action", action), slog.Any("error", err))
		os.Exit(1)
	}
}
