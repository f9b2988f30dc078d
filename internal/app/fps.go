package app

import "time"

// FPSCounter tracks the frame rate as an exponentially weighted moving
// average so the on-screen readout stays steady between frames.
type FPSCounter struct {
	fps  float64
	last time.Time
}

// NewFPSCounter creates a counter with no samples yet.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{}
}

// Tick records a frame and returns the smoothed frame rate.
func (f *FPSCounter) Tick() float64 {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
		return f.fps
	}

	elapsed := now.Sub(f.last).Seconds()
	f.last = now
	if elapsed <= 0 {
		return f.fps
	}

	instant := 1.0 / elapsed
	if f.fps == 0 {
		f.fps = instant
	} else {
		f.fps = f.fps*0.85 + instant*0.15
	}
	return f.fps
}

// FPS returns the current smoothed frame rate.
func (f *FPSCounter) FPS() float64 {
	return f.fps
}
