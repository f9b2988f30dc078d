//go:build windows

package input

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Windows implementation of pointer injection via user32.

const (
	mouseEventFLeftDown  = 0x0002
	mouseEventFLeftUp    = 0x0004
	mouseEventFRightDown = 0x0008
	mouseEventFRightUp   = 0x0010
	mouseEventFWheel     = 0x0800

	smCxScreen = 0
	smCyScreen = 1
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSetCursorPos = user32.NewProc("SetCursorPos")
	procMouseEvent   = user32.NewProc("mouse_event")
	procGetMetrics   = user32.NewProc("GetSystemMetrics")
)

// OSInjector posts pointer events through the user32 mouse_event API.
type OSInjector struct{}

// NewInjector creates a pointer injector for Windows.
func NewInjector() (*OSInjector, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("load user32: %w", err)
	}
	return &OSInjector{}, nil
}

// MoveTo moves the pointer to an absolute screen position.
func (i *OSInjector) MoveTo(x, y float64) error {
	ret, _, err := procSetCursorPos.Call(uintptr(int32(x)), uintptr(int32(y)))
	if ret == 0 {
		return fmt.Errorf("SetCursorPos failed: %w", err)
	}
	return nil
}

// Click presses and releases the given button at the current position.
func (i *OSInjector) Click(button Button) error {
	var down, up uintptr
	switch button {
	case ButtonLeft:
		down, up = mouseEventFLeftDown, mouseEventFLeftUp
	case ButtonRight:
		down, up = mouseEventFRightDown, mouseEventFRightUp
	default:
		return fmt.Errorf("invalid button: %d", button)
	}

	procMouseEvent.Call(down, 0, 0, 0, 0)
	procMouseEvent.Call(up, 0, 0, 0, 0)
	return nil
}

// Scroll injects a vertical wheel event. Positive amounts scroll content up,
// matching the wheel convention on Windows.
func (i *OSInjector) Scroll(amount int) error {
	procMouseEvent.Call(mouseEventFWheel, 0, 0, uintptr(uint32(int32(amount))), 0)
	return nil
}

// ScreenSize returns the primary display size in pixels.
func ScreenSize() (width, height int, err error) {
	w, _, _ := procGetMetrics.Call(smCxScreen)
	h, _, _ := procGetMetrics.Call(smCyScreen)
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("GetSystemMetrics returned zero screen size")
	}
	return int(w), int(h), nil
}
