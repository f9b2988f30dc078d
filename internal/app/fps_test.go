package app

import (
	"testing"
	"time"
)

func TestFPSCounter_FirstTickHasNoRate(t *testing.T) {
	c := NewFPSCounter()

	if fps := c.Tick(); fps != 0 {
		t.Errorf("expected 0 fps on first tick, got %v", fps)
	}
}

func TestFPSCounter_ConvergesTowardFrameRate(t *testing.T) {
	c := NewFPSCounter()

	// ~100 fps frame spacing.
	for i := 0; i < 30; i++ {
		c.Tick()
		time.Sleep(10 * time.Millisecond)
	}

	fps := c.FPS()
	if fps < 50 || fps > 150 {
		t.Errorf("expected fps near 100, got %v", fps)
	}
}

func TestFPSCounter_Smoothing(t *testing.T) {
	c := NewFPSCounter()

	c.Tick()
	time.Sleep(10 * time.Millisecond)
	c.Tick()
	before := c.FPS()

	// One long gap must not collapse the average to the instantaneous rate.
	time.Sleep(100 * time.Millisecond)
	c.Tick()
	after := c.FPS()

	if after >= before {
		t.Errorf("expected fps to drop after a slow frame: before=%v after=%v", before, after)
	}

	// Instantaneous rate for a 100ms gap is ~10 fps; the EWMA keeps most of
	// the previous estimate.
	if after < before*0.5 {
		t.Errorf("fps collapsed to the instantaneous rate: before=%v after=%v", before, after)
	}
}
