// Package palette generates the flat wall colours used when no texture atlas is loaded.
package palette

import (
	"fmt"
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"tinyraycaster/internal/raster"
)

// goldenAngle spreads successive hues evenly around the colour wheel.
const goldenAngle = 137.50776405003785

// Table maps material ids to colours.
type Table []raster.Pixel

// Generate returns n distinct opaque colours. The same seed always yields the same table.
func Generate(n int, seed int64) Table {
	rng := rand.New(rand.NewSource(seed))
	start := rng.Float64() * 360
	t := make(Table, n)
	for i := range t {
		h := math.Mod(start+float64(i)*goldenAngle, 360)
		s := 0.55 + rng.Float64()*0.35
		v := 0.65 + rng.Float64()*0.3
		t[i] = fromColorful(colorful.Hsv(h, s, v))
	}
	return t
}

// At returns the colour of material id, wrapping ids beyond the table.
func (t Table) At(id int) raster.Pixel {
	if len(t) == 0 || id < 0 {
		return raster.RGB(255, 255, 255)
	}
	return t[id%len(t)]
}

// ParseHex converts "#rrggbb" into an opaque pixel.
func ParseHex(s string) (raster.Pixel, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("palette: parse colour %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// Hex formats p as "#rrggbb".
func Hex(p raster.Pixel) string {
	r, g, b, _ := p.Unpack()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

func fromColorful(c colorful.Color) raster.Pixel {
	r, g, b := c.Clamped().RGB255()
	return raster.RGB(r, g, b)
}
