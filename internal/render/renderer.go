// Package render composes one frame: minimap, camera marker and the
// perspective-projected wall columns.
package render

import (
	"fmt"
	"math"

	"tinyraycaster/internal/camera"
	"tinyraycaster/internal/palette"
	"tinyraycaster/internal/raster"
	"tinyraycaster/internal/raycast"
	"tinyraycaster/internal/texture"
	"tinyraycaster/internal/tilemap"
)

// maxColumnHeight bounds projected heights so pixel maths stays in int range.
const maxColumnHeight = 1 << 24

// Renderer draws frames of one map. It is safe for concurrent use;
// every call to Frame allocates its own buffer.
type Renderer struct {
	m      *tilemap.Map
	atlas  *texture.Atlas
	colors palette.Table
	opts   Options
	caster *raycast.Caster
}

// New checks that every material of m can be drawn and prepares a renderer.
// atlas may be nil; walls then use colors, generated when empty.
func New(m *tilemap.Map, atlas *texture.Atlas, colors palette.Table, opts Options) (*Renderer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	hi := max(m.MaxMaterial(), 0)
	texelSize := 0
	if atlas != nil {
		if hi >= atlas.Count() {
			return nil, fmt.Errorf("render: map uses material %d, atlas has %d textures: %w",
				hi, atlas.Count(), texture.ErrMaterialOutOfRange)
		}
		texelSize = atlas.Size()
	} else if len(colors) == 0 {
		colors = palette.Generate(hi+1, 0)
	}

	c := raycast.New(m, texelSize)
	c.Step = opts.Step
	c.MaxDistance = opts.MaxDistance

	return &Renderer{m: m, atlas: atlas, colors: colors, opts: opts, caster: c}, nil
}

// Options returns the options the renderer was built with.
func (r *Renderer) Options() Options { return r.opts }

// viewport returns the left edge and width of the 3-D view.
func (r *Renderer) viewport() (x, columns int) {
	if r.opts.Layout == LayoutFull {
		return 0, r.opts.Width
	}
	half := r.opts.Width / 2
	return half, half
}

// cellSize returns the minimap size of one map cell in pixels.
func (r *Renderer) cellSize() (w, h int) {
	return (r.opts.Width / 2) / r.m.Width(), r.opts.Height / r.m.Height()
}

// Frame renders the view from cam into a new buffer.
func (r *Renderer) Frame(cam camera.Camera) (*raster.Buffer, error) {
	buf := raster.NewBuffer(r.opts.Width, r.opts.Height, 0)
	if r.opts.Gradient {
		paintGradient(buf)
	} else {
		buf.Fill(r.opts.Background)
	}

	split := r.opts.Layout == LayoutSplit
	if split {
		if err := r.drawMinimap(buf); err != nil {
			return nil, err
		}
		r.drawMarker(buf, cam)
	}

	var visit raycast.Visitor
	if split && r.opts.ShowTrace {
		cw, ch := r.cellSize()
		visit = func(x, y float64) {
			buf.SetClipped(int(x*float64(cw)), int(y*float64(ch)), r.opts.TraceColor)
		}
	}

	viewX, columns := r.viewport()
	for i := 0; i < columns; i++ {
		hit, angle := r.caster.CastColumn(cam, i, columns, visit)
		if !hit.Found {
			continue
		}
		h := raycast.ColumnHeight(r.opts.Height, hit.Distance, angle, cam.Angle)
		if err := r.drawColumn(buf, viewX+i, int(math.Min(h, maxColumnHeight)), hit); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func (r *Renderer) drawMinimap(buf *raster.Buffer) error {
	cw, ch := r.cellSize()
	for j := 0; j < r.m.Height(); j++ {
		for i := 0; i < r.m.Width(); i++ {
			mat, err := r.m.MaterialAt(i, j)
			if err != nil {
				return err
			}
			if mat == tilemap.Empty {
				continue
			}
			c, err := r.materialColor(mat)
			if err != nil {
				return err
			}
			buf.FillRect(i*cw, j*ch, cw, ch, c)
		}
	}
	return nil
}

func (r *Renderer) drawMarker(buf *raster.Buffer, cam camera.Camera) {
	cw, ch := r.cellSize()
	s := r.opts.MarkerSize
	x := int(cam.X*float64(cw)) - s/2
	y := int(cam.Y*float64(ch)) - s/2
	buf.FillRect(x, y, s, s, r.opts.MarkerColor)
}

// drawColumn paints a one-pixel-wide strip of height h centred vertically.
// Only rows inside the buffer are sampled.
func (r *Renderer) drawColumn(buf *raster.Buffer, x, h int, hit raycast.Hit) error {
	if h <= 0 {
		return nil
	}
	top := r.opts.Height/2 - h/2
	y0, y1 := max(top, 0), min(top+h, r.opts.Height)

	if r.atlas == nil {
		c, err := r.materialColor(hit.Material)
		if err != nil {
			return err
		}
		buf.FillRect(x, y0, 1, y1-y0, c)
		return nil
	}

	if top >= 0 && top+h <= r.opts.Height {
		col, err := r.atlas.Column(hit.Material, hit.U, h)
		if err != nil {
			return err
		}
		for j, c := range col {
			buf.SetClipped(x, top+j, c)
		}
		return nil
	}

	// Taller than the frame: sample only the visible rows.
	size := r.atlas.Size()
	for y := y0; y < y1; y++ {
		v := (y - top) * size / h
		c, err := r.atlas.TexelAt(hit.Material, hit.U, v)
		if err != nil {
			return err
		}
		buf.SetClipped(x, y, c)
	}
	return nil
}

func (r *Renderer) materialColor(mat int) (raster.Pixel, error) {
	if r.atlas != nil {
		return r.atlas.Representative(mat)
	}
	return r.colors.At(mat), nil
}

// paintGradient fills red along the vertical and green along the horizontal.
func paintGradient(buf *raster.Buffer) {
	for j := 0; j < buf.Height; j++ {
		red := uint8(255 * j / buf.Height)
		for i := 0; i < buf.Width; i++ {
			buf.Pix[j*buf.Width+i] = raster.RGB(red, uint8(255*i/buf.Width), 0)
		}
	}
}
