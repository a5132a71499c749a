package render

import (
	"fmt"
	"strings"

	"tinyraycaster/internal/raster"
	"tinyraycaster/internal/raycast"
)

// Layout selects where the 3-D view goes in the frame.
type Layout int

const (
	// LayoutSplit puts the minimap in the left half and the 3-D view in the right half.
	LayoutSplit Layout = iota
	// LayoutFull gives the whole frame to the 3-D view.
	LayoutFull
)

func (l Layout) String() string {
	switch l {
	case LayoutSplit:
		return "split"
	case LayoutFull:
		return "full"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout accepts "split" or "full".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "split":
		return LayoutSplit, nil
	case "full":
		return LayoutFull, nil
	}
	return 0, fmt.Errorf("render: unknown layout %q", s)
}

// Options controls frame geometry and colours.
type Options struct {
	Width  int
	Height int
	Layout Layout

	Step        float64 // ray marching increment
	MaxDistance float64 // ray range

	Background  raster.Pixel
	Gradient    bool // paint the red/green gradient instead of Background
	ShowTrace   bool // paint marched samples on the minimap
	TraceColor  raster.Pixel
	MarkerColor raster.Pixel
	MarkerSize  int
}

// DefaultOptions returns the 1024×512 split-screen setup.
func DefaultOptions() Options {
	return Options{
		Width:       1024,
		Height:      512,
		Layout:      LayoutSplit,
		Step:        raycast.DefaultStep,
		MaxDistance: raycast.DefaultMaxDistance,
		Background:  raster.RGB(255, 255, 255),
		ShowTrace:   true,
		TraceColor:  raster.RGB(160, 160, 160),
		MarkerColor: raster.RGB(255, 255, 255),
		MarkerSize:  5,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("render: invalid frame size %dx%d", o.Width, o.Height)
	}
	if o.Layout == LayoutSplit && o.Width < 2 {
		return fmt.Errorf("render: split layout needs width >= 2, got %d", o.Width)
	}
	if o.Step <= 0 || o.MaxDistance <= 0 {
		return fmt.Errorf("render: step %v and range %v must be positive", o.Step, o.MaxDistance)
	}
	return nil
}
