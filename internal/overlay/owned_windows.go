//go:build windows

package overlay

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/sys/windows"

	"lume/internal/geometry"
)

const (
	_WS_POPUP   = 0x80000000
	_WS_VISIBLE = 0x10000000

	_WS_EX_TRANSPARENT = 0x00000020
	_WS_EX_LAYERED     = 0x00080000
	_WS_EX_NOACTIVATE  = 0x08000000

	_LWA_ALPHA = 0x02

	_SWP_NOSIZE     = 0x0001
	_SWP_NOMOVE     = 0x0002
	_SWP_NOZORDER   = 0x0004
	_SWP_NOACTIVATE = 0x0010
)

var (
	user32   = windows.NewLazyDLL("user32.dll")
	kernel32 = windows.NewLazyDLL("kernel32.dll")

	procRegisterClassExW           = user32.NewProc("RegisterClassExW")
	procCreateWindowExW            = user32.NewProc("CreateWindowExW")
	procDestroyWindow              = user32.NewProc("DestroyWindow")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procDefWindowProcW             = user32.NewProc("DefWindowProcW")
	procGetModuleHandleW           = kernel32.NewProc("GetModuleHandleW")
)

type wndClassExW struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     uintptr
	HIcon         uintptr
	HCursor       uintptr
	HbrBackground uintptr
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       uintptr
}

var registerClassOnce sync.Once

// ownedHandle is the owned-top-level variant: an undecorated WS_POPUP window
// owned by the host HWND. Ownership keeps it above the host in z-order;
// WS_EX_TRANSPARENT and WS_EX_NOACTIVATE make it click-through and keep it
// out of the tab order. It lives in screen space, so the anchor retains the
// parent position and local origin between events.
type ownedHandle struct {
	anchor anchor

	mu        sync.Mutex
	hwnd      uintptr
	hinstance uintptr
	closed    bool
}

// Attach creates the overlay as a top-level window owned by the host window.
// Its configuration is fixed for the overlay lifetime: not always-on-top, no
// decorations, resized only programmatically, initially visible.
func Attach(host *glfw.Window) (Handle, error) {
	owner := uintptr(unsafe.Pointer(host.GetWin32Window()))
	hinstance, _, _ := procGetModuleHandleW.Call(0)

	className, err := windows.UTF16PtrFromString("LumeOverlay")
	if err != nil {
		return nil, fmt.Errorf("encode class name: %w", err)
	}

	registerClassOnce.Do(func() {
		var wc wndClassExW
		wc.CbSize = uint32(unsafe.Sizeof(wc))
		wc.LpfnWndProc = syscall.NewCallback(overlayWndProc)
		wc.HInstance = hinstance
		wc.LpszClassName = className
		procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	})

	hostX, hostY := host.GetPos()

	h := &ownedHandle{hinstance: hinstance}
	h.anchor.setParent(geometry.Point{X: int32(hostX), Y: int32(hostY)})
	abs := h.anchor.setOrigin(initialOrigin)

	hwnd, _, callErr := procCreateWindowExW.Call(
		_WS_EX_LAYERED|_WS_EX_TRANSPARENT|_WS_EX_NOACTIVATE,
		uintptr(unsafe.Pointer(className)),
		0, // no title
		_WS_POPUP|_WS_VISIBLE,
		uintptr(abs.X), uintptr(abs.Y),
		uintptr(initialSize.Width), uintptr(initialSize.Height),
		owner, 0, hinstance, 0,
	)
	if hwnd == 0 {
		return nil, fmt.Errorf("create overlay window: %w", callErr)
	}

	// A layered window only renders once its alpha is set.
	procSetLayeredWindowAttributes.Call(hwnd, 0, 255, _LWA_ALPHA)

	h.hwnd = hwnd
	return h, nil
}

func overlayWndProc(hwnd, msg, wparam, lparam uintptr) uintptr {
	ret, _, _ := procDefWindowProcW.Call(hwnd, msg, wparam, lparam)
	return ret
}

func (h *ownedHandle) SetParentPosition(pos geometry.Point) {
	h.moveTo(h.anchor.setParent(pos))
}

func (h *ownedHandle) SetOrigin(pos geometry.Point) {
	h.moveTo(h.anchor.setOrigin(pos))
}

func (h *ownedHandle) moveTo(abs geometry.Point) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || h.hwnd == 0 {
		return
	}

	procSetWindowPos.Call(h.hwnd, 0,
		uintptr(abs.X), uintptr(abs.Y), 0, 0,
		_SWP_NOSIZE|_SWP_NOZORDER|_SWP_NOACTIVATE,
	)
}

func (h *ownedHandle) SetSize(size geometry.Size) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || h.hwnd == 0 {
		return
	}

	procSetWindowPos.Call(h.hwnd, 0,
		0, 0, uintptr(size.Width), uintptr(size.Height),
		_SWP_NOMOVE|_SWP_NOZORDER|_SWP_NOACTIVATE,
	)
}

func (h *ownedHandle) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{
		WindowsHWND: &wgpu.SurfaceDescriptorFromWindowsHWND{
			Hwnd:      unsafe.Pointer(h.hwnd),
			Hinstance: unsafe.Pointer(h.hinstance),
		},
	}
}

func (h *ownedHandle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true

	procDestroyWindow.Call(h.hwnd)
	h.hwnd = 0
}
