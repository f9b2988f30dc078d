// Package input provides OS pointer injection for the virtual mouse.
package input

// Button identifies a mouse button for click injection.
type Button int

const (
	// ButtonLeft is the primary mouse button.
	ButtonLeft Button = 1
	// ButtonRight is the secondary mouse button.
	ButtonRight Button = 2
)

// Injector defines the interface for applying pointer actions to the OS.
// Implementations are platform-specific; a failed call must leave the OS
// pointer in a consistent state and is safe to retry on the next frame.
type Injector interface {
	// MoveTo moves the pointer to an absolute screen position in pixels.
	MoveTo(x, y float64) error

	// Click presses and releases the given button at the current position.
	Click(button Button) error

	// Scroll injects a vertical scroll; positive amounts scroll content up.
	Scroll(amount int) error
}
