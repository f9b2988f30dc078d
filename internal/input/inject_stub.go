//go:build !darwin && !windows

package input

import (
	"fmt"
)

// Stub implementation for platforms without an injection backend.

// OSInjector is a stub pointer injector.
type OSInjector struct{}

// NewInjector creates a new stub injector.
func NewInjector() (*OSInjector, error) {
	return &OSInjector{}, nil
}

// MoveTo is unsupported on this platform.
func (i *OSInjector) MoveTo(x, y float64) error {
	return fmt.Errorf("pointer injection not supported on this platform")
}

// Click is unsupported on this platform.
func (i *OSInjector) Click(button Button) error {
	return fmt.Errorf("pointer injection not supported on this platform")
}

// Scroll is unsupported on this platform.
func (i *OSInjector) Scroll(amount int) error {
	return fmt.Errorf("pointer injection not supported on this platform")
}

// ScreenSize is unsupported on this platform; callers fall back to the
// configured screen dimensions.
func ScreenSize() (width, height int, err error) {
	return 0, 0, fmt.Errorf("screen size query not supported on this platform")
}
