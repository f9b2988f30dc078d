package overlay

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/detector"
)

func nonZeroPixels(t *testing.T, frame *gocv.Mat) int {
	t.Helper()
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	return gocv.CountNonZero(gray)
}

func TestDrawInteractionZone(t *testing.T) {
	frame := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer frame.Close()

	DrawInteractionZone(&frame, 120)

	if nonZeroPixels(t, &frame) == 0 {
		t.Error("expected the zone rectangle to mark pixels")
	}
}

func TestDrawHand(t *testing.T) {
	frame := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer frame.Close()

	hand := detector.PointingHandLandmarks()
	DrawHand(&frame, &hand)

	if nonZeroPixels(t, &frame) == 0 {
		t.Error("expected the hand skeleton to mark pixels")
	}
}

func TestDrawLegendAndStatus(t *testing.T) {
	frame := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer frame.Close()

	DrawLegend(&frame)
	DrawStatus(&frame, 29.7, "Move")

	if nonZeroPixels(t, &frame) == 0 {
		t.Error("expected legend and status text to mark pixels")
	}
}

func TestDrawHelpers_TolerateNilFrame(t *testing.T) {
	// Must not panic.
	DrawInteractionZone(nil, 120)
	DrawLegend(nil)
	DrawStatus(nil, 0, "Idle")
	hand := detector.PointingHandLandmarks()
	DrawHand(nil, &hand)
}
