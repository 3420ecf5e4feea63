package sky

import (
	gomath "math"
	"testing"
)

func TestLegacyAngleToRadians(t *testing.T) {
	tests := []struct {
		unit int
		want float64
	}{
		{0, 3 * gomath.Pi / 2}, // south
		{128, gomath.Pi},       // west
		{256, gomath.Pi / 2},   // north
		{384, 0},               // east
		{511, 3*gomath.Pi/2 + twoPi/uniqueAngles},
	}

	for _, tt := range tests {
		got := LegacyAngleToRadians(tt.unit)
		if gomath.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LegacyAngleToRadians(%d) = %v, want %v", tt.unit, got, tt.want)
		}
	}
}

func TestLegacyAngleRange(t *testing.T) {
	for u := 0; u < uniqueAngles; u++ {
		r := LegacyAngleToRadians(u)
		if r < 0 || r >= twoPi {
			t.Fatalf("unit %d gives %v outside [0, 2π)", u, r)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-gomath.Pi / 2, 3 * gomath.Pi / 2},
		{twoPi, 0},
		{5 * gomath.Pi, gomath.Pi},
		{-gomath.Pi, gomath.Pi},
	}
	for _, tt := range tests {
		got := normalizeAngle(tt.in)
		if gomath.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
