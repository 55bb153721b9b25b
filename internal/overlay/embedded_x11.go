//go:build linux

package overlay

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lume/internal/geometry"
)

// embeddedHandle is the embedded-subview variant: an X11 child window of the
// host's native window. Coordinates are host-local and the X server moves the
// child together with its parent, so no parent tracking is needed.
type embeddedHandle struct {
	mu      sync.Mutex
	xu      *xgbutil.XUtil
	win     xproto.Window
	display unsafe.Pointer
	closed  bool
}

// Attach creates the overlay as a child of the host's X window, marks it
// click-through via the Shape extension and maps it above the host content.
func Attach(host *glfw.Window) (Handle, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	conn := xu.Conn()
	if err := shape.Init(conn); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("init shape extension: %w", err)
	}

	parent := xproto.Window(host.GetX11Window())

	win, err := xproto.NewWindowId(conn)
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("allocate window id: %w", err)
	}

	err = xproto.CreateWindowChecked(
		conn,
		xu.Screen().RootDepth,
		win,
		parent,
		int16(initialOrigin.X), int16(initialOrigin.Y),
		uint16(initialSize.Width), uint16(initialSize.Height),
		0, // border_width
		xproto.WindowClassInputOutput,
		xu.Screen().RootVisual,
		xproto.CwBackPixel,
		[]uint32{0},
	).Check()
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("create child window: %w", err)
	}

	// Empty input shape: pointer and keyboard events fall through to the
	// host window underneath.
	shape.Rectangles(conn, shape.SoSet, shape.SkInput, xproto.ClipOrderingUnsorted, win, 0, 0, nil)

	xproto.MapWindow(conn, win)
	xproto.ConfigureWindow(conn, win,
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove},
	)

	return &embeddedHandle{
		xu:      xu,
		win:     win,
		display: unsafe.Pointer(glfw.GetX11Display()),
	}, nil
}

// SetParentPosition is a no-op: a child window moves with its parent.
func (h *embeddedHandle) SetParentPosition(pos geometry.Point) {}

func (h *embeddedHandle) SetOrigin(pos geometry.Point) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}

	xproto.ConfigureWindow(h.xu.Conn(), h.win,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(pos.X), uint32(pos.Y)},
	)
}

func (h *embeddedHandle) SetSize(size geometry.Size) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}

	w, ht := size.Width, size.Height
	if w < 1 {
		w = 1
	}
	if ht < 1 {
		ht = 1
	}
	xproto.ConfigureWindow(h.xu.Conn(), h.win,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{w, ht},
	)
}

func (h *embeddedHandle) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{
		XlibWindow: &wgpu.SurfaceDescriptorFromXlibWindow{
			Display: h.display,
			Window:  uint32(h.win),
		},
	}
}

func (h *embeddedHandle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true

	xproto.DestroyWindow(h.xu.Conn(), h.win)
	h.xu.Conn().Close()
}
