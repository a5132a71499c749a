package texture

import (
	"errors"
	"fmt"
	"image"

	"tinyraycaster/internal/raster"
)

var (
	// ErrDecode is returned when the atlas image cannot be decoded.
	ErrDecode = errors.New("texture: decode error")
	// ErrUnsupportedFormat is returned for images without four channels.
	ErrUnsupportedFormat = errors.New("texture: unsupported format")
	// ErrMalformedDimensions is returned when the image is not a strip of square tiles.
	ErrMalformedDimensions = errors.New("texture: malformed dimensions")
	// ErrMaterialOutOfRange is returned for a material id with no texture.
	ErrMaterialOutOfRange = errors.New("texture: material out of range")
)

// Atlas is a horizontal strip of Count square textures, each Size pixels wide.
type Atlas struct {
	size  int
	count int
	img   *image.NRGBA
}

// FromImage builds an atlas from a decoded RGBA image.
func FromImage(src image.Image, size int) (*Atlas, error) {
	if !fourChannel(src) {
		return nil, fmt.Errorf("texture: %T is not a 4-channel image: %w", src, ErrUnsupportedFormat)
	}
	b := src.Bounds()
	if size <= 0 || b.Dx() < size || b.Dx()%size != 0 || b.Dy() < size {
		return nil, fmt.Errorf("texture: %dx%d image with tile size %d: %w", b.Dx(), b.Dy(), size, ErrMalformedDimensions)
	}
	return &Atlas{
		size:  size,
		count: b.Dx() / size,
		img:   toNRGBA(src),
	}, nil
}

// fourChannel accepts the image types the decoders produce for sources with
// an alpha channel. PNG and BMP decode 3-channel data to *image.RGBA.
func fourChannel(src image.Image) bool {
	switch src.(type) {
	case *image.NRGBA, *image.NRGBA64:
		return true
	}
	return false
}

// Size returns the side length of one texture.
func (a *Atlas) Size() int { return a.size }

// Count returns the number of textures in the atlas.
func (a *Atlas) Count() int { return a.count }

// TexelAt returns the pixel at local (u, v) of texture material.
// Callers keep u and v within [0, Size).
func (a *Atlas) TexelAt(material, u, v int) (raster.Pixel, error) {
	if material < 0 || material >= a.count {
		return 0, fmt.Errorf("texture: material %d of %d: %w", material, a.count, ErrMaterialOutOfRange)
	}
	i := a.img.PixOffset(material*a.size+u, v)
	p := a.img.Pix
	return raster.Pack(p[i], p[i+1], p[i+2], p[i+3]), nil
}

// Column scales texture column u of material to height pixels.
func (a *Atlas) Column(material, u, height int) ([]raster.Pixel, error) {
	if material < 0 || material >= a.count {
		return nil, fmt.Errorf("texture: material %d of %d: %w", material, a.count, ErrMaterialOutOfRange)
	}
	col := make([]raster.Pixel, height)
	for y := range col {
		col[y], _ = a.TexelAt(material, u, y*a.size/height)
	}
	return col, nil
}

// Representative is the colour used for a material on the minimap: its first texel.
func (a *Atlas) Representative(material int) (raster.Pixel, error) {
	return a.TexelAt(material, 0, 0)
}

// Average returns the mean opaque colour of one texture.
func (a *Atlas) Average(material int) (raster.Pixel, error) {
	if material < 0 || material >= a.count {
		return 0, fmt.Errorf("texture: material %d of %d: %w", material, a.count, ErrMaterialOutOfRange)
	}
	var sumR, sumG, sumB float64
	stride := a.img.Stride
	for y := 0; y < a.size; y++ {
		off := y*stride + material*a.size*4
		for x := 0; x < a.size; x++ {
			i := off + x*4
			sumR += float64(a.img.Pix[i])
			sumG += float64(a.img.Pix[i+1])
			sumB += float64(a.img.Pix[i+2])
		}
	}
	n := float64(a.size * a.size)
	return raster.RGB(uint8(sumR/n+0.5), uint8(sumG/n+0.5), uint8(sumB/n+0.5)), nil
}
