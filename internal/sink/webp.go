package sink

import (
	"io"

	"github.com/HugoSmits86/nativewebp"

	"tinyraycaster/internal/raster"
)

// EncodeWebP writes buf as a lossless WebP image.
func EncodeWebP(w io.Writer, buf *raster.Buffer) error {
	return nativewebp.Encode(w, buf.NRGBA(), nil)
}
