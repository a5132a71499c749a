package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// tgaDepthOffset is the header byte holding bits per pixel.
const tgaDepthOffset = 16

// Load reads an atlas image (PNG, TGA, BMP or JPEG) from disk.
func Load(path string, size int) (*Atlas, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	a, err := decodeBytes(raw, size)
	if err != nil {
		return nil, fmt.Errorf("texture: load %s: %w", path, err)
	}
	return a, nil
}

// Decode reads an atlas image from r.
func Decode(r io.Reader, size int) (*Atlas, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("texture: read: %w", err)
	}
	return decodeBytes(raw, size)
}

func decodeBytes(raw []byte, size int) (*Atlas, error) {
	format := sniff(raw)
	if format == "tga" && raw[tgaDepthOffset] != 32 {
		return nil, fmt.Errorf("texture: %d-bit tga atlas: %w", raw[tgaDepthOffset], ErrUnsupportedFormat)
	}
	img, err := decodeImage(raw, format)
	if err != nil {
		return nil, fmt.Errorf("texture: %v: %w", err, ErrDecode)
	}
	a, err := FromImage(img, size)
	if err != nil {
		return nil, fmt.Errorf("texture: %s atlas: %w", format, err)
	}
	return a, nil
}

// sniff names the image format from its leading magic bytes. TGA has no
// magic, so anything long enough to hold a TGA header is treated as one.
func sniff(raw []byte) string {
	switch {
	case bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case bytes.HasPrefix(raw, []byte("\xff\xd8")):
		return "jpeg"
	case bytes.HasPrefix(raw, []byte("BM")):
		return "bmp"
	case len(raw) > tgaDepthOffset:
		return "tga"
	}
	return ""
}

// decodeImage calls the decoder for format directly. The tga package
// registers itself for every stream, so image.Decode cannot be used.
func decodeImage(raw []byte, format string) (image.Image, error) {
	r := bytes.NewReader(raw)
	switch format {
	case "png":
		return png.Decode(r)
	case "jpeg":
		return jpeg.Decode(r)
	case "bmp":
		return bmp.Decode(r)
	case "tga":
		return tga.Decode(r)
	}
	return nil, errors.New("unknown image format")
}

// toNRGBA converts any image to an NRGBA image anchored at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
