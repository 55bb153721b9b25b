// Package render runs the free-running presentation loop.
package render

import (
	"log/slog"
	"time"
)

// DefaultInterval is the stock frame cadence.
const DefaultInterval = 15 * time.Millisecond

// Renderer presents one frame. Errors are recoverable frame skips.
type Renderer interface {
	Render() error
}

// Loop invokes the renderer at a fixed cadence until the process exits.
// There is no stop operation: overlay rendering lives exactly as long as the
// process. A failed frame is logged and skipped, never propagated; the
// surface heals itself on the next successful resize.
func Loop(r Renderer, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := r.Render(); err != nil {
			slog.Warn("Skipping frame", slog.Any("error", err))
		}
	}
}
