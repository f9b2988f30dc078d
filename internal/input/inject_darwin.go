//go:build darwin

package input

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework ApplicationServices

#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <ApplicationServices/ApplicationServices.h>

// Check if we have accessibility permissions
bool hasAccessibilityPermissions() {
    return AXIsProcessTrusted();
}

void injectMoveTo(CGFloat x, CGFloat y) {
    CGPoint pos = CGPointMake(x, y);
    CGEventRef event = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved, pos, kCGMouseButtonLeft);
    CGEventPost(kCGSessionEventTap, event);
    CFRelease(event);
}

void injectClick(int button) {
    CGMouseButton cgButton;
    CGEventType downType;
    CGEventType upType;

    switch (button) {
        case 1:
            cgButton = kCGMouseButtonLeft;
            downType = kCGEventLeftMouseDown;
            upType = kCGEventLeftMouseUp;
            break;
        case 2:
            cgButton = kCGMouseButtonRight;
            downType = kCGEventRightMouseDown;
            upType = kCGEventRightMouseUp;
            break;
        default:
            return;
    }

    CGEventRef probe = CGEventCreate(NULL);
    CGPoint pos = CGEventGetLocation(probe);
    CFRelease(probe);

    CGEventRef down = CGEventCreateMouseEvent(NULL, downType, pos, cgButton);
    CGEventPost(kCGSessionEventTap, down);
    CFRelease(down);

    CGEventRef up = CGEventCreateMouseEvent(NULL, upType, pos, cgButton);
    CGEventPost(kCGSessionEventTap, up);
    CFRelease(up);
}

void injectScroll(int amount) {
    CGEventRef event = CGEventCreateScrollWheelEvent(NULL, kCGScrollEventUnitLine, 1, amount);
    CGEventPost(kCGSessionEventTap, event);
    CFRelease(event);
}

size_t mainDisplayWidth()  { return CGDisplayPixelsWide(CGMainDisplayID()); }
size_t mainDisplayHeight() { return CGDisplayPixelsHigh(CGMainDisplayID()); }
*/
import "C"
import (
	"fmt"
)

// macOS implementation of pointer injection using CoreGraphics.

// OSInjector posts CoreGraphics events into the session event tap.
type OSInjector struct{}

// NewInjector creates a pointer injector for macOS. It fails when the
// process lacks accessibility permissions, since posted events would be
// silently dropped.
func NewInjector() (*OSInjector, error) {
	if !bool(C.hasAccessibilityPermissions()) {
		return nil, fmt.Errorf("accessibility permissions not granted; enable them in System Settings > Privacy & Security")
	}
	return &OSInjector{}, nil
}

// MoveTo moves the pointer to an absolute screen position.
func (i *OSInjector) MoveTo(x, y float64) error {
	C.injectMoveTo(C.CGFloat(x), C.CGFloat(y))
	return nil
}

// Click presses and releases the given button at the current position.
func (i *OSInjector) Click(button Button) error {
	if button != ButtonLeft && button != ButtonRight {
		return fmt.Errorf("invalid button: %d", button)
	}
	C.injectClick(C.int(button))
	return nil
}

// Scroll injects a vertical line-based scroll wheel event.
func (i *OSInjector) Scroll(amount int) error {
	C.injectScroll(C.int(amount))
	return nil
}

// ScreenSize returns the main display size in pixels.
func ScreenSize() (width, height int, err error) {
	w := int(C.mainDisplayWidth())
	h := int(C.mainDisplayHeight())
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("could not query main display size")
	}
	return w, h, nil
}
