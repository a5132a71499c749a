package postprocess

import (
	"image"

	"golang.org/x/image/draw"

	"tinyraycaster/internal/raster"
)

// Upscale enlarges a finished frame by an integer factor with
// nearest-neighbour sampling so texels stay crisp.
func Upscale(buf *raster.Buffer, factor int) *raster.Buffer {
	if factor <= 1 {
		return buf
	}
	src := buf.NRGBA()
	dst := image.NewNRGBA(image.Rect(0, 0, buf.Width*factor, buf.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return raster.FromNRGBA(dst)
}
