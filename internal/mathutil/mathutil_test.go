package mathutil

import (
	"math"
	"testing"
)

func TestFrac(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{2.25, 0.25},
		{-0.25, 0.75},
		{3, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Frac(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Frac(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDegreeConversion(t *testing.T) {
	if got := Deg2Rad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Deg2Rad(180) = %v", got)
	}
	if got := Rad2Deg(math.Pi / 3); math.Abs(got-60) > 1e-9 {
		t.Errorf("Rad2Deg(pi/3) = %v", got)
	}
}
