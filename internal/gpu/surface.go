// Package gpu owns the webgpu device, queue and presentable surface the
// overlay renders into.
package gpu

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"lume/internal/geometry"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// presentTarget is the part of *wgpu.Surface the Surface needs.
type presentTarget interface {
	Configure(*wgpu.Adapter, *wgpu.Device, *wgpu.SurfaceConfiguration)
	GetCurrentTexture() (*wgpu.Texture, error)
	Present()
	Release()
}

// Surface bundles the device, queue and surface configuration. One lock
// covers the resize path (host events) and the render path (render loop), so
// the two are never interleaved mid-operation; rapid resizes are simply
// last-write-wins.
type Surface struct {
	mu sync.Mutex

	device  *wgpu.Device
	queue   *wgpu.Queue
	adapter *wgpu.Adapter
	target  presentTarget

	config *wgpu.SurfaceConfiguration
	clear  wgpu.Color
}

// New negotiates an adapter compatible with the presentable target, acquires
// a device and queue, and configures the surface at the initial size using
// the target's preferred format. There is no degraded-rendering fallback:
// a failure here is fatal to the process at the call site.
func New(sd *wgpu.SurfaceDescriptor, initial geometry.Size, clear wgpu.Color) (*Surface, error) {
	if initial.IsZero() {
		return nil, fmt.Errorf("initial surface size %dx%d has a zero dimension", initial.Width, initial.Height)
	}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	target := instance.CreateSurface(sd)

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    target,
	})
	if err != nil {
		target.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		target.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}

	caps := target.GetCapabilities(adapter)
	if len(caps.Formats) == 0 {
		device.Release()
		adapter.Release()
		target.Release()
		return nil, fmt.Errorf("surface reports no compatible texture formats")
	}

	config := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       initial.Width,
		Height:      initial.Height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	target.Configure(adapter, device, config)

	slog.Info("Configured overlay surface",
		slog.Any("format", config.Format),
		slog.Int("width", int(initial.Width)),
		slog.Int("height", int(initial.Height)),
	)

	return &Surface{
		device:  device,
		queue:   device.GetQueue(),
		adapter: adapter,
		target:  target,
		config:  config,
		clear:   clear,
	}, nil
}

// Resize reconfigures the surface. A size with a zero dimension is ignored
// and the last valid configuration stays active; minimization delivers such
// transient sizes and must not break presentation.
func (s *Surface) Resize(size geometry.Size) {
	if size.IsZero() {
		slog.Debug("Ignoring degenerate surface size",
			slog.Int("width", int(size.Width)),
			slog.Int("height", int(size.Height)),
		)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.config.Width = size.Width
	s.config.Height = size.Height
	s.target.Configure(s.adapter, s.device, s.config)
}

// Size returns the currently configured surface size.
func (s *Surface) Size() geometry.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return geometry.Size{Width: s.config.Width, Height: s.config.Height}
}

// Render acquires the next frame, clears it and presents it. An error is
// recoverable: the frame is skipped and the surface heals on the next
// successful Resize.
func (s *Surface) Render() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame, err := s.target.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire frame: %w", err)
	}

	presented := false
	defer func() {
		// Presenting consumes the frame.
		if !presented {
			frame.Release()
		}
	}()

	view, err := frame.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create frame view: %w", err)
	}
	defer view.Release()

	enc, err := s.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "OverlayClear"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "OverlayClear",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: s.clear,
			},
		},
	})
	if err := pass.End(); err != nil {
		pass.Release()
		return fmt.Errorf("end render pass: %w", err)
	}
	pass.Release()

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "OverlayClear"})
	if err != nil {
		return fmt.Errorf("encode commands: %w", err)
	}
	defer buf.Release()

	s.queue.Submit(buf)
	s.target.Present()
	presented = true

	return nil
}

// Release frees the device, queue, adapter and surface.
func (s *Surface) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.device != nil {
		s.device.Release()
		s.device = nil
	}
	if s.adapter != nil {
		s.adapter.Release()
		s.adapter = nil
	}
	if s.target != nil {
		s.target.Release()
		s.target = nil
	}
}
