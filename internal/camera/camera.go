// Package camera holds the viewer pose used to cast one frame.
package camera

import "math"

// DefaultFOV is a 60° horizontal field of view.
const DefaultFOV = math.Pi / 3

// Camera is an immutable viewer pose in map units; Angle and FOV are radians.
type Camera struct {
	X, Y  float64
	Angle float64
	FOV   float64
}

// New returns a camera at (x, y) looking along angle.
func New(x, y, angle, fov float64) Camera {
	return Camera{X: x, Y: y, Angle: angle, FOV: fov}
}

// Advance returns a copy turned by delta radians. The angle is not wrapped.
func (c Camera) Advance(delta float64) Camera {
	c.Angle += delta
	return c
}

// RayAngle returns the direction of screen column i out of columns.
func (c Camera) RayAngle(i, columns int) float64 {
	return c.Angle - c.FOV/2 + c.FOV*float64(i)/float64(columns)
}

// Sequence returns n poses starting at c, each turned delta from the previous one.
func (c Camera) Sequence(n int, delta float64) []Camera {
	out := make([]Camera, 0, max(n, 0))
	cur := c
	for i := 0; i < n; i++ {
		out = append(out, cur)
		cur = cur.Advance(delta)
	}
	return out
}
