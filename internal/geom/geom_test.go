package geom

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{"below range", -5, 0, 10, 0},
		{"above range", 15, 0, 10, 10},
		{"inside range", 5, 0, 10, 5},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
		{"negative range", -7, -10, -2, -7},
		{"degenerate range", 3, 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClamp_Idempotent(t *testing.T) {
	values := []float64{-100, -1, 0, 0.5, 1, 99, 1e9}
	for _, v := range values {
		once := Clamp(v, -1, 1)
		twice := Clamp(once, -1, 1)
		if once != twice {
			t.Errorf("Clamp not idempotent for %v: first %v, second %v", v, once, twice)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"at start", 0, 10, 0, 0},
		{"at end", 0, 10, 1, 10},
		{"midpoint", 0, 10, 0.5, 5},
		{"quarter blend", 100, 200, 0.25, 125},
		{"negative endpoints", -10, 10, 0.5, 0},
		{"same endpoints", 7, 7, 0.3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"same point", 1, 1, 1, 1, 0},
		{"unit x", 0, 0, 1, 0, 1},
		{"unit y", 0, 0, 0, 1, 1},
		{"3-4-5 triangle", 0, 0, 3, 4, 5},
		{"negative coords", -1, -1, 2, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.x1, tt.y1, tt.x2, tt.y2); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	ab := Distance(0.1, 0.2, 0.7, 0.9)
	ba := Distance(0.7, 0.9, 0.1, 0.2)
	if ab != ba {
		t.Errorf("Distance not symmetric: %v != %v", ab, ba)
	}
	if ab < 0 {
		t.Errorf("Distance negative: %v", ab)
	}
}
