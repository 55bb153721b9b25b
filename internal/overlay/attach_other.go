//go:build !linux && !windows

package overlay

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Attach is unavailable outside the X11 and Win32 targets.
func Attach(host *glfw.Window) (Handle, error) {
	return nil, fmt.Errorf("overlay attachment is not supported on this platform")
}
