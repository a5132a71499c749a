// Package sink persists finished frames.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tinyraycaster/internal/postprocess"
	"tinyraycaster/internal/raster"
)

// Sink stores one frame under a name. Implementations must accept
// concurrent calls with distinct names.
type Sink interface {
	Write(name string, buf *raster.Buffer) (string, error)
}

// Format identifies an output encoding.
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatWebP Format = "webp"
)

// ParseFormat accepts "ppm" or "webp".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPPM, nil
	case FormatPPM, FormatWebP:
		return f, nil
	}
	return "", fmt.Errorf("sink: unknown format %q", s)
}

// Dir writes frames as files in a directory.
type Dir struct {
	Path   string
	Format Format
	Scale  int // integer upscale factor; 0 or 1 keeps the frame size
}

// New returns a directory sink, creating the directory if needed.
func New(dir string, format Format, scale int) (*Dir, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("sink: create %s: %w", dir, err)
	}
	return &Dir{Path: dir, Format: format, Scale: scale}, nil
}

// Write encodes buf to <dir>/<name>.<format> and returns the file path.
func (d *Dir) Write(name string, buf *raster.Buffer) (string, error) {
	buf = postprocess.Upscale(buf, d.Scale)
	path := filepath.Join(d.Path, name+"."+string(d.Format))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("sink: create %s: %w", path, err)
	}
	defer f.Close()

	switch d.Format {
	case FormatWebP:
		err = EncodeWebP(f, buf)
	default:
		err = EncodePPM(f, buf)
	}
	if err != nil {
		return "", fmt.Errorf("sink: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("sink: close %s: %w", path, err)
	}
	return path, nil
}

// FrameName returns the zero-padded name of frame i of total.
// A single-frame run keeps the bare prefix.
func FrameName(prefix string, i, total int) string {
	if total <= 1 {
		return prefix
	}
	width := max(len(fmt.Sprint(total-1)), 4)
	return fmt.Sprintf("%s%0*d", prefix, width, i)
}
