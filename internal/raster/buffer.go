package raster

import (
	"errors"
	"fmt"
	"image"
)

// ErrOutOfBounds is returned by strict accessors for coordinates outside the buffer.
var ErrOutOfBounds = errors.New("raster: out of bounds")

// Buffer is the rendering target: Width*Height packed pixels in row-major order.
type Buffer struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewBuffer allocates a buffer with every pixel set to fill.
func NewBuffer(w, h int, fill Pixel) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	pix := make([]Pixel, w*h)
	for i := range pix {
		pix[i] = fill
	}
	return &Buffer{Width: w, Height: h, Pix: pix}
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Set writes one pixel, failing with ErrOutOfBounds outside the buffer.
func (b *Buffer) Set(x, y int, c Pixel) error {
	if !b.inside(x, y) {
		return fmt.Errorf("raster: set (%d, %d) in %dx%d: %w", x, y, b.Width, b.Height, ErrOutOfBounds)
	}
	b.Pix[y*b.Width+x] = c
	return nil
}

// SetClipped writes one pixel and silently drops writes outside the buffer.
func (b *Buffer) SetClipped(x, y int, c Pixel) {
	if b.inside(x, y) {
		b.Pix[y*b.Width+x] = c
	}
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) (Pixel, error) {
	if !b.inside(x, y) {
		return 0, fmt.Errorf("raster: read (%d, %d) in %dx%d: %w", x, y, b.Width, b.Height, ErrOutOfBounds)
	}
	return b.Pix[y*b.Width+x], nil
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Pixel) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// FillRect draws a w×h rectangle with its top-left corner at (x, y).
// Only the intersection with the buffer is written.
func (b *Buffer) FillRect(x, y, w, h int, c Pixel) {
	x0, x1 := clip(x, w, b.Width)
	y0, y1 := clip(y, h, b.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		row := b.Pix[py*b.Width+x0 : py*b.Width+x1]
		for i := range row {
			row[i] = c
		}
	}
}

// clip intersects [p, p+n) with [0, limit) without overflowing p+n.
func clip(p, n, limit int) (lo, hi int) {
	if n <= 0 || p >= limit {
		return 0, 0
	}
	if p < 0 {
		return 0, min(p+n, limit)
	}
	return p, p + min(n, limit-p)
}

// Pixels exposes the row-major pixel slice for encoders.
func (b *Buffer) Pixels() []Pixel {
	return b.Pix
}

// NRGBA copies the buffer into a standard library image.
func (b *Buffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, p := range b.Pix {
		r, g, bl, a := p.Unpack()
		j := i * 4
		img.Pix[j] = r
		img.Pix[j+1] = g
		img.Pix[j+2] = bl
		img.Pix[j+3] = a
	}
	return img
}

// FromNRGBA copies an image into a new buffer.
func FromNRGBA(img *image.NRGBA) *Buffer {
	r := img.Bounds()
	buf := NewBuffer(r.Dx(), r.Dy(), 0)
	for y := 0; y < buf.Height; y++ {
		off := img.PixOffset(r.Min.X, r.Min.Y+y)
		for x := 0; x < buf.Width; x++ {
			i := off + x*4
			buf.Pix[y*buf.Width+x] = Pack(img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3])
		}
	}
	return buf
}
