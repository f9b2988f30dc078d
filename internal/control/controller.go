// Package control turns per-frame hand landmarks into pointer actions.
//
// The controller is the decision core of the virtual mouse: it consumes one
// detected hand per frame and produces a smoothed cursor target, edge-triggered
// click events and a signed scroll amount. It owns all of its mutable state and
// is meant to be called from a single capture loop, once per frame.
package control

import (
	"errors"
	"fmt"
	"math"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

// ErrInvalidConfig is returned by New when the configuration would make the
// mapping math undefined (degenerate active region, non-positive thresholds).
var ErrInvalidConfig = errors.New("invalid controller config")

// ErrBadFrame is returned by Update when the landmark frame violates the
// detector contract. The controller never substitutes defaults for missing
// joints.
var ErrBadFrame = errors.New("malformed landmark frame")

// scrollHistoryCap bounds the rolling window of averaged fingertip heights.
const scrollHistoryCap = 5

// Mode labels the gesture the controller engaged on the most recent frame.
// It is observational only: nothing downstream branches on it beyond the
// overlay and the tray.
type Mode string

const (
	ModeIdle       Mode = "Idle"
	ModeMove       Mode = "Move"
	ModeScroll     Mode = "Scroll"
	ModeLeftClick  Mode = "Left Click"
	ModeRightClick Mode = "Right Click"
)

// Config holds the controller tuning, fixed for the controller's lifetime.
type Config struct {
	// CameraWidth and CameraHeight are the capture resolution in pixels.
	CameraWidth  int
	CameraHeight int

	// ScreenWidth and ScreenHeight are the target display size in pixels.
	ScreenWidth  int
	ScreenHeight int

	// Smoothing is the per-frame blend factor in (0,1). Lower values mean
	// more smoothing and more lag; higher values track the finger directly.
	Smoothing float64

	// Margin insets the active region from each camera edge, in pixels, so
	// a natural range of hand motion reaches the screen corners.
	Margin int

	// LeftPinchThreshold and RightPinchThreshold are the thumb-index and
	// thumb-middle distances, in normalized landmark units, below which the
	// corresponding click engages.
	LeftPinchThreshold  float64
	RightPinchThreshold float64

	// ScrollSensitivity scales vertical fingertip displacement into OS
	// scroll units.
	ScrollSensitivity float64

	// InvertScroll flips the scroll polarity to match injectors that treat
	// positive amounts as "content down".
	InvertScroll bool
}

// DefaultConfig returns the stock tuning for the given screen size.
func DefaultConfig(screenWidth, screenHeight int) Config {
	return Config{
		CameraWidth:         1280,
		CameraHeight:        720,
		ScreenWidth:         screenWidth,
		ScreenHeight:        screenHeight,
		Smoothing:           0.25,
		Margin:              120,
		LeftPinchThreshold:  0.035,
		RightPinchThreshold: 0.04,
		ScrollSensitivity:   35,
	}
}

// Validate checks the configuration invariants that the per-frame math
// depends on. A margin that collapses the active region would divide by zero
// during mapping, so it is rejected here, before any frame is processed.
func (c Config) Validate() error {
	if c.CameraWidth <= 0 || c.CameraHeight <= 0 {
		return fmt.Errorf("%w: camera size %dx%d", ErrInvalidConfig, c.CameraWidth, c.CameraHeight)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.Margin < 0 {
		return fmt.Errorf("%w: negative margin %d", ErrInvalidConfig, c.Margin)
	}
	minDim := c.CameraWidth
	if c.CameraHeight < minDim {
		minDim = c.CameraHeight
	}
	if 2*c.Margin >= minDim {
		return fmt.Errorf("%w: margin %d collapses the active region of a %dx%d frame",
			ErrInvalidConfig, c.Margin, c.CameraWidth, c.CameraHeight)
	}
	if c.Smoothing <= 0 || c.Smoothing >= 1 {
		return fmt.Errorf("%w: smoothing factor %f outside (0,1)", ErrInvalidConfig, c.Smoothing)
	}
	if c.LeftPinchThreshold <= 0 {
		return fmt.Errorf("%w: left pinch threshold %f", ErrInvalidConfig, c.LeftPinchThreshold)
	}
	if c.RightPinchThreshold <= 0 {
		return fmt.Errorf("%w: right pinch threshold %f", ErrInvalidConfig, c.RightPinchThreshold)
	}
	if c.ScrollSensitivity <= 0 {
		return fmt.Errorf("%w: scroll sensitivity %f", ErrInvalidConfig, c.ScrollSensitivity)
	}
	return nil
}

// Output is the per-frame decision handed to the input injector: an absolute
// cursor target in screen pixels, at most one click per button, and a signed
// scroll amount (0 means no scroll).
type Output struct {
	CursorX     float64 `json:"cursor_x"`
	CursorY     float64 `json:"cursor_y"`
	LeftClick   bool    `json:"left_click"`
	RightClick  bool    `json:"right_click"`
	ScrollDelta int     `json:"scroll_delta"`
}

// Controller interprets hand landmarks frame by frame.
type Controller struct {
	config Config

	// Smoothed cursor estimate in screen pixels. It survives frames with no
	// hand (Update is simply not called) frozen rather than reset.
	cursorX float64
	cursorY float64

	// Rolling window of averaged index/middle fingertip heights, cleared
	// whenever the scroll gesture condition is false.
	scrollHistory []float64

	// Edge-trigger latches so a held pinch fires a single click.
	leftLatched  bool
	rightLatched bool

	mode Mode
}

// New creates a Controller with the cursor parked at the screen center.
func New(config Config) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		config:        config,
		cursorX:       float64(config.ScreenWidth) / 2,
		cursorY:       float64(config.ScreenHeight) / 2,
		scrollHistory: make([]float64, 0, scrollHistoryCap),
		mode:          ModeIdle,
	}, nil
}

// Update consumes one landmark frame and advances the controller state.
//
// Order matters: the scroll gate is evaluated before the click triggers, so
// in a frame where several conditions hold at once the scroll branch labels
// the mode first and a click can still fire afterwards. This matches the
// long-standing behavior of the gesture vocabulary and is kept as-is.
func (c *Controller) Update(hand *detector.HandLandmarks) (Output, error) {
	if err := validateFrame(hand); err != nil {
		return Output{}, err
	}

	thumbTip := hand.Points[detector.ThumbTip]
	indexTip := hand.Points[detector.IndexTip]
	indexPIP := hand.Points[detector.IndexPIP]
	middleTip := hand.Points[detector.MiddleTip]
	middlePIP := hand.Points[detector.MiddlePIP]

	indexExtended := fingerExtended(indexTip, indexPIP)
	middleExtended := fingerExtended(middleTip, middlePIP)

	// Cursor movement is unconditional: it happens even while a click or
	// scroll gesture is being evaluated on the same frame.
	c.moveCursor(indexTip.X, indexTip.Y)

	leftDist := geom.Distance(thumbTip.X, thumbTip.Y, indexTip.X, indexTip.Y)
	rightDist := geom.Distance(thumbTip.X, thumbTip.Y, middleTip.X, middleTip.Y)

	out := Output{
		CursorX: c.cursorX,
		CursorY: c.cursorY,
	}

	// Scroll only when both fingers are up and the left pinch is open, so a
	// click attempt and a scroll can never be read from the same frame.
	if indexExtended && middleExtended && leftDist > c.config.LeftPinchThreshold {
		out.ScrollDelta = c.handleScroll(indexTip.Y, middleTip.Y)
		c.mode = ModeScroll
	} else {
		c.scrollHistory = c.scrollHistory[:0]
	}

	// Left click with thumb-index pinch, edge-triggered to avoid repeats.
	if leftDist < c.config.LeftPinchThreshold && !c.leftLatched {
		out.LeftClick = true
		c.leftLatched = true
		c.mode = ModeLeftClick
	} else if leftDist >= c.config.LeftPinchThreshold {
		c.leftLatched = false
	}

	// Right click with thumb-middle pinch.
	if rightDist < c.config.RightPinchThreshold && !c.rightLatched {
		out.RightClick = true
		c.rightLatched = true
		c.mode = ModeRightClick
	} else if rightDist >= c.config.RightPinchThreshold {
		c.rightLatched = false
	}

	// With no pinch engaged and no scroll pose held, the hand is just moving
	// the cursor.
	if leftDist >= c.config.LeftPinchThreshold &&
		rightDist >= c.config.RightPinchThreshold &&
		!(indexExtended && middleExtended) {
		c.mode = ModeMove
	}

	return out, nil
}

// Mode returns the gesture label from the most recent update.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Cursor returns the current smoothed cursor estimate in screen pixels.
func (c *Controller) Cursor() (x, y float64) {
	return c.cursorX, c.cursorY
}

// Config returns the tuning the controller was built with.
func (c *Controller) Config() Config {
	return c.config
}

// fingerExtended reports whether a fingertip sits above its PIP joint in
// image coordinates (smaller y is higher on the frame). This is a heuristic,
// not a bend-angle measurement, and it breaks when the hand is rotated; it is
// isolated here so a sturdier test can replace it without touching Update.
func fingerExtended(tip, pip detector.Point3D) bool {
	return tip.Y < pip.Y
}

// moveCursor maps a normalized fingertip position into screen pixels and
// blends it into the smoothed cursor estimate.
func (c *Controller) moveCursor(fingerX, fingerY float64) {
	camX := fingerX * float64(c.config.CameraWidth)
	camY := fingerY * float64(c.config.CameraHeight)

	// Keep movement inside the inset active region so the user's natural
	// range of motion reaches the screen corners.
	minX := float64(c.config.Margin)
	maxX := float64(c.config.CameraWidth - c.config.Margin)
	minY := float64(c.config.Margin)
	maxY := float64(c.config.CameraHeight - c.config.Margin)

	camX = geom.Clamp(camX, minX, maxX)
	camY = geom.Clamp(camY, minY, maxY)

	targetX := (camX - minX) / (maxX - minX) * float64(c.config.ScreenWidth)
	targetY := (camY - minY) / (maxY - minY) * float64(c.config.ScreenHeight)

	smoothX := geom.Lerp(c.cursorX, targetX, c.config.Smoothing)
	smoothY := geom.Lerp(c.cursorY, targetY, c.config.Smoothing)

	c.cursorX = geom.Clamp(smoothX, 0, float64(c.config.ScreenWidth))
	c.cursorY = geom.Clamp(smoothY, 0, float64(c.config.ScreenHeight))
}

// handleScroll appends the averaged fingertip height to the rolling window
// and derives a scroll amount from the two most recent samples. Upward finger
// motion (decreasing y) yields a positive amount unless InvertScroll is set.
func (c *Controller) handleScroll(indexY, middleY float64) int {
	avgY := (indexY + middleY) / 2

	if len(c.scrollHistory) >= scrollHistoryCap {
		copy(c.scrollHistory, c.scrollHistory[1:])
		c.scrollHistory = c.scrollHistory[:scrollHistoryCap-1]
	}
	c.scrollHistory = append(c.scrollHistory, avgY)

	if len(c.scrollHistory) < 2 {
		return 0
	}

	delta := c.scrollHistory[len(c.scrollHistory)-2] - c.scrollHistory[len(c.scrollHistory)-1]
	amount := int(delta * c.config.ScrollSensitivity * 100)

	// Tiny displacements are jitter, not intent.
	if amount >= -1 && amount <= 1 {
		return 0
	}
	if c.config.InvertScroll {
		amount = -amount
	}
	return amount
}

// validateFrame rejects landmark frames that break the detector contract:
// a nil hand, or non-finite coordinates on any of the joints the controller
// reads.
func validateFrame(hand *detector.HandLandmarks) error {
	if hand == nil {
		return fmt.Errorf("%w: nil hand", ErrBadFrame)
	}
	used := [...]int{
		detector.ThumbTip,
		detector.IndexTip,
		detector.IndexPIP,
		detector.MiddleTip,
		detector.MiddlePIP,
	}
	for _, i := range used {
		p := hand.Points[i]
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: landmark %d is not finite", ErrBadFrame, i)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
