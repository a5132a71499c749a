package raster

import (
	"fmt"
	"image/color"
)

// Pixel is a packed RGBA colour: red in the lowest byte, alpha in the highest.
type Pixel uint32

// Pack builds a Pixel from its four channels.
func Pack(r, g, b, a uint8) Pixel {
	return Pixel(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGB packs an opaque colour.
func RGB(r, g, b uint8) Pixel {
	return Pack(r, g, b, 255)
}

// Unpack splits p into its channels.
func (p Pixel) Unpack() (r, g, b, a uint8) {
	return uint8(p), uint8(p >> 8), uint8(p >> 16), uint8(p >> 24)
}

// NRGBA converts p to a standard library colour.
func (p Pixel) NRGBA() color.NRGBA {
	r, g, b, a := p.Unpack()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func (p Pixel) String() string {
	r, g, b, a := p.Unpack()
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r, g, b, a)
}
