package sink

import (
	"bufio"
	"fmt"
	"io"

	"tinyraycaster/internal/raster"
)

// EncodePPM writes buf as a binary P6 image; alpha is dropped.
func EncodePPM(w io.Writer, buf *raster.Buffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", buf.Width, buf.Height); err != nil {
		return err
	}
	row := make([]byte, buf.Width*3)
	for y := 0; y < buf.Height; y++ {
		for x, p := range buf.Pix[y*buf.Width : (y+1)*buf.Width] {
			r, g, b, _ := p.Unpack()
			row[x*3] = r
			row[x*3+1] = g
			row[x*3+2] = b
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
