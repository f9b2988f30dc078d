package capture

import (
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"
)

func TestMotionDetector_FirstFrameIsBaseline(t *testing.T) {
	m := NewMotionDetector(1.0)
	defer m.Close()

	frame := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer frame.Close()

	detected, percent := m.Detect(&frame)
	if detected {
		t.Error("first frame must not report motion")
	}
	if percent != 0 {
		t.Errorf("first frame change percent = %f, want 0", percent)
	}
}

func TestMotionDetector_StaticScene(t *testing.T) {
	m := NewMotionDetector(1.0)
	defer m.Close()

	frame := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer frame.Close()

	m.Detect(&frame)
	detected, _ := m.Detect(&frame)
	if detected {
		t.Error("identical frames must not report motion")
	}
}

func TestMotionDetector_ChangedScene(t *testing.T) {
	m := NewMotionDetector(1.0)
	defer m.Close()

	dark := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer dark.Close()

	bright := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer bright.Close()
	gocv.Rectangle(&bright, image.Rect(0, 0, 160, 120), color.RGBA{R: 255, G: 255, B: 255}, -1)

	m.Detect(&dark)
	detected, percent := m.Detect(&bright)
	if !detected {
		t.Errorf("full-frame change must report motion (changed %f%%)", percent)
	}
}

func TestMotionDetector_Reset(t *testing.T) {
	m := NewMotionDetector(1.0)
	defer m.Close()

	dark := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer dark.Close()

	bright := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer bright.Close()
	gocv.Rectangle(&bright, image.Rect(0, 0, 160, 120), color.RGBA{R: 255, G: 255, B: 255}, -1)

	m.Detect(&dark)
	m.Reset()

	// After a reset the bright frame is a fresh baseline, not a change.
	detected, _ := m.Detect(&bright)
	if detected {
		t.Error("frame right after Reset must not report motion")
	}
}
