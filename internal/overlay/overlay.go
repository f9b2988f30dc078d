// Package overlay draws the on-screen guide for the virtual mouse: the
// interaction zone, the hand skeleton, the gesture legend and the FPS/mode
// readout. It is pure presentation; nothing in the pipeline branches on it.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/detector"
)

var (
	zoneColor     = color.RGBA{R: 100, G: 255, B: 100}
	boneColor     = color.RGBA{R: 100, G: 220, B: 100}
	jointColor    = color.RGBA{R: 255}
	legendBg      = color.RGBA{R: 30, G: 30, B: 30}
	legendBorder  = color.RGBA{R: 180, G: 180, B: 180}
	legendTitle   = color.RGBA{R: 255, G: 255}
	legendText    = color.RGBA{R: 240, G: 240, B: 240}
	fpsColor      = color.RGBA{G: 255}
	modeTextColor = color.RGBA{R: 255, G: 255}
)

// handConnections lists the landmark index pairs that form the hand skeleton,
// following the MediaPipe hand connection set.
var handConnections = [][2]int{
	{detector.Wrist, detector.ThumbCMC},
	{detector.ThumbCMC, detector.ThumbMCP},
	{detector.ThumbMCP, detector.ThumbIP},
	{detector.ThumbIP, detector.ThumbTip},
	{detector.Wrist, detector.IndexMCP},
	{detector.IndexMCP, detector.IndexPIP},
	{detector.IndexPIP, detector.IndexDIP},
	{detector.IndexDIP, detector.IndexTip},
	{detector.IndexMCP, detector.MiddleMCP},
	{detector.MiddleMCP, detector.MiddlePIP},
	{detector.MiddlePIP, detector.MiddleDIP},
	{detector.MiddleDIP, detector.MiddleTip},
	{detector.MiddleMCP, detector.RingMCP},
	{detector.RingMCP, detector.RingPIP},
	{detector.RingPIP, detector.RingDIP},
	{detector.RingDIP, detector.RingTip},
	{detector.RingMCP, detector.PinkyMCP},
	{detector.Wrist, detector.PinkyMCP},
	{detector.PinkyMCP, detector.PinkyPIP},
	{detector.PinkyPIP, detector.PinkyDIP},
	{detector.PinkyDIP, detector.PinkyTip},
}

// legendLines is the fixed gesture vocabulary shown to the user.
var legendLines = []string{
	"Legend",
	"Index finger: Move cursor",
	"Thumb + Index pinch: Left click",
	"Thumb + Middle pinch: Right click",
	"Index + Middle move up/down: Scroll",
}

// DrawInteractionZone outlines the inset camera region that maps to the full
// screen.
func DrawInteractionZone(frame *gocv.Mat, margin int) {
	if frame == nil || frame.Empty() {
		return
	}
	rect := image.Rect(margin, margin, frame.Cols()-margin, frame.Rows()-margin)
	gocv.Rectangle(frame, rect, zoneColor, 2)
}

// DrawHand renders the landmark skeleton over the frame.
func DrawHand(frame *gocv.Mat, hand *detector.HandLandmarks) {
	if frame == nil || frame.Empty() || hand == nil {
		return
	}

	width := float64(frame.Cols())
	height := float64(frame.Rows())

	for _, conn := range handConnections {
		start := hand.Points[conn[0]]
		end := hand.Points[conn[1]]
		p1 := image.Pt(int(start.X*width), int(start.Y*height))
		p2 := image.Pt(int(end.X*width), int(end.Y*height))
		gocv.Line(frame, p1, p2, boneColor, 2)
	}

	for _, p := range hand.Points {
		center := image.Pt(int(p.X*width), int(p.Y*height))
		gocv.Circle(frame, center, 4, jointColor, -1)
	}
}

// DrawLegend paints the gesture cheat-sheet in the top-right corner.
func DrawLegend(frame *gocv.Mat) {
	if frame == nil || frame.Empty() {
		return
	}

	x2 := frame.Cols() - 20
	x1 := x2 - 560
	y1 := 20
	y2 := y1 + 30 + len(legendLines)*28

	gocv.Rectangle(frame, image.Rect(x1, y1, x2, y2), legendBg, -1)
	gocv.Rectangle(frame, image.Rect(x1, y1, x2, y2), legendBorder, 2)

	for i, text := range legendLines {
		clr := legendText
		scale := 0.55
		thickness := 1
		if i == 0 {
			clr = legendTitle
			scale = 0.7
			thickness = 2
		}
		org := image.Pt(x1+12, y1+30+i*28)
		gocv.PutText(frame, text, org, gocv.FontHersheySimplex, scale, clr, thickness)
	}
}

// DrawStatus paints the FPS counter and the current gesture mode in the
// top-left corner.
func DrawStatus(frame *gocv.Mat, fps float64, mode string) {
	if frame == nil || frame.Empty() {
		return
	}
	gocv.PutText(frame, fmt.Sprintf("FPS: %d", int(fps)), image.Pt(20, 40),
		gocv.FontHersheySimplex, 1, fpsColor, 2)
	gocv.PutText(frame, "Mode: "+mode, image.Pt(20, 80),
		gocv.FontHersheySimplex, 0.8, modeTextColor, 2)
}
