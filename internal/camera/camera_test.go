package camera

import (
	"math"
	"testing"
)

func TestAdvanceLeavesOriginal(t *testing.T) {
	c := New(2, 2, 1.5, DefaultFOV)
	next := c.Advance(0.25)
	if c.Angle != 1.5 {
		t.Errorf("original angle changed to %v", c.Angle)
	}
	if next.Angle != 1.75 || next.X != 2 || next.Y != 2 || next.FOV != DefaultFOV {
		t.Errorf("Advance = %+v", next)
	}
}

func TestRayAngleSpansFOV(t *testing.T) {
	c := New(0, 0, 1, math.Pi/2)
	if got := c.RayAngle(0, 100); math.Abs(got-(1-math.Pi/4)) > 1e-12 {
		t.Errorf("first column angle = %v", got)
	}
	if got := c.RayAngle(50, 100); math.Abs(got-1) > 1e-12 {
		t.Errorf("centre column angle = %v", got)
	}
	if got := c.RayAngle(100, 100); math.Abs(got-(1+math.Pi/4)) > 1e-12 {
		t.Errorf("end angle = %v", got)
	}
}

func TestSequence(t *testing.T) {
	seq := New(0, 0, 0, DefaultFOV).Sequence(4, 0.5)
	if len(seq) != 4 {
		t.Fatalf("len = %d", len(seq))
	}
	for i, c := range seq {
		if math.Abs(c.Angle-0.5*float64(i)) > 1e-12 {
			t.Errorf("frame %d angle = %v", i, c.Angle)
		}
	}
	if len(New(0, 0, 0, 1).Sequence(0, 1)) != 0 {
		t.Error("expected empty sequence")
	}
}
