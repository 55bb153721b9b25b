package render

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type failingRenderer struct {
	calls atomic.Int64
}

func (f *failingRenderer) Render() error {
	f.calls.Add(1)
	return errors.New("surface lost")
}

// The loop must survive indefinite render failures; it keeps ticking until
// the process exits.
func TestLoop_SurvivesRenderFailures(t *testing.T) {
	r := &failingRenderer{}

	go Loop(r, time.Millisecond)

	deadline := time.After(time.Second)
	for r.calls.Load() < 10 {
		select {
		case <-deadline:
			t.Fatalf("loop stalled after %d failing frames", r.calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
}
