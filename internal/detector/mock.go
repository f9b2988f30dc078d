package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PointingHandLandmarks returns a preset hand with the index finger extended
// and the other fingers curled. This is the plain cursor-movement pose:
// no pinch is engaged and the index tip sits at (0.58, 0.35).
func PointingHandLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	// Thumb held away from the fingertips so neither pinch engages
	landmarks.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.76, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.72, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.67, Y: 0.66, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.70, Y: 0.60, Z: 0.0}

	// Index finger extended upward (tip above PIP)
	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger curled (tip below PIP)
	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: -0.02}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.60, Z: -0.05}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.66, Z: -0.04}
	landmarks.Points[MiddleTip] = Point3D{X: 0.48, Y: 0.70, Z: -0.02}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: 0.45, Y: 0.63, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: 0.43, Y: 0.68, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: 0.41, Y: 0.71, Z: -0.02}

	// Pinky finger curled
	landmarks.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.71, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.67, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.38, Y: 0.71, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: 0.36, Y: 0.73, Z: -0.02}

	return landmarks
}

// LeftPinchHandLandmarks returns a preset hand with the thumb tip touching the
// index tip (thumb-index distance ~0.022, inside the default 0.035 click
// threshold) while the middle finger stays clear of the thumb.
func LeftPinchHandLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.93,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.82, Z: 0.0}

	landmarks.Points[ThumbCMC] = Point3D{X: 0.54, Y: 0.76, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.56, Y: 0.68, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.56, Y: 0.58, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.55, Y: 0.50, Z: 0.0}

	// Index tip pinched against the thumb tip
	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.70, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.58, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.54, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.57, Y: 0.51, Z: 0.0}

	// Middle finger curled away from the thumb
	landmarks.Points[MiddleMCP] = Point3D{X: 0.49, Y: 0.67, Z: -0.02}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.46, Y: 0.60, Z: -0.05}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.45, Y: 0.64, Z: -0.04}
	landmarks.Points[MiddleTip] = Point3D{X: 0.44, Y: 0.68, Z: -0.02}

	landmarks.Points[RingMCP] = Point3D{X: 0.45, Y: 0.69, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: 0.43, Y: 0.63, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: 0.42, Y: 0.67, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: 0.41, Y: 0.70, Z: -0.02}

	landmarks.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.39, Y: 0.68, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.38, Y: 0.71, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: 0.37, Y: 0.73, Z: -0.02}

	return landmarks
}

// RightPinchHandLandmarks returns a preset hand with the thumb tip touching
// the middle tip (thumb-middle distance ~0.022, inside the default 0.04
// threshold) while the index finger stays extended and clear of the thumb.
func RightPinchHandLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.92,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.82, Z: 0.0}

	landmarks.Points[ThumbCMC] = Point3D{X: 0.54, Y: 0.76, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.54, Y: 0.60, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.52, Y: 0.52, Z: 0.0}

	// Index finger extended and away from the thumb
	landmarks.Points[IndexMCP] = Point3D{X: 0.58, Y: 0.68, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.60, Y: 0.55, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.61, Y: 0.47, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.62, Y: 0.40, Z: 0.0}

	// Middle tip pinched against the thumb tip
	landmarks.Points[MiddleMCP] = Point3D{X: 0.51, Y: 0.66, Z: -0.02}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.54, Y: 0.50, Z: -0.03}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.54, Y: 0.52, Z: -0.02}
	landmarks.Points[MiddleTip] = Point3D{X: 0.54, Y: 0.53, Z: -0.01}

	landmarks.Points[RingMCP] = Point3D{X: 0.46, Y: 0.68, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: 0.44, Y: 0.62, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: 0.43, Y: 0.66, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: 0.42, Y: 0.69, Z: -0.02}

	landmarks.Points[PinkyMCP] = Point3D{X: 0.41, Y: 0.71, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.67, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.39, Y: 0.70, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.72, Z: -0.02}

	return landmarks
}

// ScrollPoseLandmarks returns a preset hand with both index and middle fingers
// extended and the thumb held far from either tip, so the scroll gate opens.
// Both fingertips sit at the given tip y, making the averaged fingertip
// height equal to tipY exactly.
func ScrollPoseLandmarks(tipY float64) HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.94,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: tipY + 0.45, Z: 0.0}

	landmarks.Points[ThumbCMC] = Point3D{X: 0.58, Y: tipY + 0.40, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.65, Y: tipY + 0.37, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.71, Y: tipY + 0.33, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.75, Y: tipY + 0.30, Z: 0.0}

	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: tipY + 0.30, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.56, Y: tipY + 0.15, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.55, Y: tipY + 0.07, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.55, Y: tipY, Z: 0.0}

	landmarks.Points[MiddleMCP] = Point3D{X: 0.48, Y: tipY + 0.30, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.48, Y: tipY + 0.15, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.48, Y: tipY + 0.07, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: 0.48, Y: tipY, Z: 0.0}

	landmarks.Points[RingMCP] = Point3D{X: 0.43, Y: tipY + 0.31, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: 0.42, Y: tipY + 0.26, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: 0.41, Y: tipY + 0.30, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: 0.40, Y: tipY + 0.33, Z: -0.02}

	landmarks.Points[PinkyMCP] = Point3D{X: 0.38, Y: tipY + 0.33, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.37, Y: tipY + 0.29, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.36, Y: tipY + 0.32, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: 0.35, Y: tipY + 0.35, Z: -0.02}

	return landmarks
}
