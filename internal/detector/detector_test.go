package detector

import (
	"errors"
	"math"
	"testing"
)

func tipDistance(h HandLandmarks, a, b int) float64 {
	dx := h.Points[a].X - h.Points[b].X
	dy := h.Points[a].Y - h.Points[b].Y
	return math.Sqrt(dx*dx + dy*dy)
}

func TestPointingHandLandmarks(t *testing.T) {
	hand := PointingHandLandmarks()

	if hand.Points[IndexTip].Y >= hand.Points[IndexPIP].Y {
		t.Error("expected index finger to be extended (tip above PIP)")
	}
	if hand.Points[MiddleTip].Y < hand.Points[MiddlePIP].Y {
		t.Error("expected middle finger to be curled (tip below PIP)")
	}

	if d := tipDistance(hand, ThumbTip, IndexTip); d < 0.05 {
		t.Errorf("thumb-index distance = %f, expected pinch to be open", d)
	}
	if d := tipDistance(hand, ThumbTip, MiddleTip); d < 0.05 {
		t.Errorf("thumb-middle distance = %f, expected pinch to be open", d)
	}
}

func TestLeftPinchHandLandmarks(t *testing.T) {
	hand := LeftPinchHandLandmarks()

	if d := tipDistance(hand, ThumbTip, IndexTip); d >= 0.035 {
		t.Errorf("thumb-index distance = %f, expected below the 0.035 click threshold", d)
	}
	if d := tipDistance(hand, ThumbTip, MiddleTip); d < 0.04 {
		t.Errorf("thumb-middle distance = %f, expected right pinch to stay open", d)
	}
}

func TestRightPinchHandLandmarks(t *testing.T) {
	hand := RightPinchHandLandmarks()

	if d := tipDistance(hand, ThumbTip, MiddleTip); d >= 0.04 {
		t.Errorf("thumb-middle distance = %f, expected below the 0.04 click threshold", d)
	}
	if d := tipDistance(hand, ThumbTip, IndexTip); d < 0.035 {
		t.Errorf("thumb-index distance = %f, expected left pinch to stay open", d)
	}
	if hand.Points[IndexTip].Y >= hand.Points[IndexPIP].Y {
		t.Error("expected index finger to stay extended during a right pinch")
	}
	if hand.Points[MiddleTip].Y < hand.Points[MiddlePIP].Y {
		t.Error("expected middle finger to read as curled so the scroll gate stays shut")
	}
}

func TestScrollPoseLandmarks(t *testing.T) {
	hand := ScrollPoseLandmarks(0.30)

	if hand.Points[IndexTip].Y >= hand.Points[IndexPIP].Y {
		t.Error("expected index finger extended in scroll pose")
	}
	if hand.Points[MiddleTip].Y >= hand.Points[MiddlePIP].Y {
		t.Error("expected middle finger extended in scroll pose")
	}
	if d := tipDistance(hand, ThumbTip, IndexTip); d < 0.035 {
		t.Errorf("thumb-index distance = %f, scroll pose must not engage the left pinch", d)
	}

	avg := (hand.Points[IndexTip].Y + hand.Points[MiddleTip].Y) / 2
	if math.Abs(avg-0.30) > 1e-9 {
		t.Errorf("averaged fingertip y = %f, want 0.30", avg)
	}
}

func TestMockDetector(t *testing.T) {
	t.Run("returns empty hands by default", func(t *testing.T) {
		mock := NewMockDetector()

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if hands != nil {
			t.Errorf("expected no hands, got %d", len(hands))
		}
	})

	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()
		mock.SetHands([]HandLandmarks{PointingHandLandmarks()})

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 1 {
			t.Fatalf("expected 1 hand, got %d", len(hands))
		}
		if hands[0].Handedness != "Right" {
			t.Errorf("handedness = %q, want %q", hands[0].Handedness, "Right")
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()
		wantErr := errors.New("camera unplugged")
		mock.SetError(wantErr)

		_, err := mock.Detect(nil)

		if !errors.Is(err, wantErr) {
			t.Errorf("error = %v, want %v", err, wantErr)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxHands != 1 {
		t.Errorf("MaxHands = %d, want 1", cfg.MaxHands)
	}
	if cfg.MinConfidence != 0.7 {
		t.Errorf("MinConfidence = %f, want 0.7", cfg.MinConfidence)
	}
	if cfg.MinTrackingConf != 0.7 {
		t.Errorf("MinTrackingConf = %f, want 0.7", cfg.MinTrackingConf)
	}
}
