// Package raycast marches rays from the camera through the tile map and
// projects the hits into wall column heights.
package raycast

import (
	"math"

	"tinyraycaster/internal/camera"
	"tinyraycaster/internal/mathutil"
	"tinyraycaster/internal/tilemap"
)

const (
	// DefaultStep is the marching increment in map units.
	DefaultStep = 0.01
	// DefaultMaxDistance is the ray range in map units.
	DefaultMaxDistance = 20.0
	// minPerpDistance keeps the projection finite when the camera touches a wall.
	minPerpDistance = 1e-6
)

// Hit is the outcome of one ray march.
type Hit struct {
	Found    bool    // false when nothing was struck within range
	Distance float64 // raw distance along the ray
	Material int     // material of the struck cell
	X, Y     float64 // world position of the sample that struck
	Outside  bool    // the ray left the map instead of striking a wall
	U        int     // texel column on the wall face, 0 without an atlas
}

// Visitor receives every open sample the ray passes through.
type Visitor func(x, y float64)

// Caster marches rays in fixed increments.
type Caster struct {
	Map         *tilemap.Map
	Step        float64
	MaxDistance float64
	TexelSize   int // atlas tile size for Hit.U; 0 leaves U at zero
}

// New returns a caster with the default step and range.
func New(m *tilemap.Map, texelSize int) *Caster {
	return &Caster{Map: m, Step: DefaultStep, MaxDistance: DefaultMaxDistance, TexelSize: texelSize}
}

// Cast marches one ray from (ox, oy) along angle. The sample at distance
// k*Step is tested for k = 0, 1, ... while it stays below MaxDistance.
func (c *Caster) Cast(ox, oy, angle float64, visit Visitor) Hit {
	step := c.Step
	if step <= 0 {
		step = DefaultStep
	}
	cos, sin := math.Cos(angle), math.Sin(angle)
	for k := 0; ; k++ {
		d := float64(k) * step
		if d >= c.MaxDistance {
			return Hit{}
		}
		x, y := ox+d*cos, oy+d*sin
		i, j := int(math.Floor(x)), int(math.Floor(y))
		if !c.Map.Contains(i, j) {
			// Leaving the grid counts as striking its boundary.
			return Hit{Found: true, Distance: d, Material: 0, X: x, Y: y, Outside: true, U: c.texelU(x, y)}
		}
		mat, _ := c.Map.MaterialAt(i, j)
		if mat != tilemap.Empty {
			return Hit{Found: true, Distance: d, Material: mat, X: x, Y: y, U: c.texelU(x, y)}
		}
		if visit != nil {
			visit(x, y)
		}
	}
}

// CastColumn casts the ray for screen column i of columns.
func (c *Caster) CastColumn(cam camera.Camera, i, columns int, visit Visitor) (Hit, float64) {
	angle := cam.RayAngle(i, columns)
	return c.Cast(cam.X, cam.Y, angle, visit), angle
}

func (c *Caster) texelU(x, y float64) int {
	if c.TexelSize <= 0 {
		return 0
	}
	return TexelU(x, y, c.TexelSize)
}

// TexelU picks the texture column for a hit at (x, y). The coordinate
// nearest a grid line identifies the face; the other one runs along it.
func TexelU(x, y float64, size int) int {
	dx := math.Abs(x - math.Round(x))
	dy := math.Abs(y - math.Round(y))
	along := x
	if dx < dy {
		along = y
	}
	u := int(mathutil.Frac(along) * float64(size))
	return min(max(u, 0), size-1)
}

// PerpDistance removes fisheye distortion by projecting onto the camera axis.
func PerpDistance(distance, rayAngle, camAngle float64) float64 {
	return distance * math.Cos(rayAngle-camAngle)
}

// ColumnHeight returns the projected wall height in pixels.
func ColumnHeight(screenHeight int, distance, rayAngle, camAngle float64) float64 {
	perp := PerpDistance(distance, rayAngle, camAngle)
	if perp < minPerpDistance {
		perp = minPerpDistance
	}
	return float64(screenHeight) / perp
}
