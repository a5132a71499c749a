// Package tilemap holds the immutable wall grid the ray caster marches through.
package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrOutOfBounds is returned when a cell query falls outside the grid.
	ErrOutOfBounds = errors.New("tilemap: out of bounds")
	// ErrInvalidSymbol is returned for a cell that is neither empty nor a digit.
	ErrInvalidSymbol = errors.New("tilemap: invalid map symbol")
	// ErrDimensions is returned when the literal does not fill the grid exactly.
	ErrDimensions = errors.New("tilemap: malformed dimensions")
)

// Empty marks a cell with no wall.
const Empty = -1

// DefaultEmpty is the character the bundled maps use for open space.
const DefaultEmpty = ' '

// Map is a Width×Height grid of cells; each cell is Empty or a material id.
type Map struct {
	width  int
	height int
	cells  []int
}

// FromGrid builds a map from one string per row. Cells equal to empty are open,
// every other cell must be a decimal digit naming the wall material.
func FromGrid(rows []string, empty byte) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("tilemap: empty grid: %w", ErrDimensions)
	}
	w := len(rows[0])
	m := &Map{width: w, height: len(rows), cells: make([]int, 0, w*len(rows))}
	for j, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("tilemap: row %d has %d cells, want %d: %w", j, len(row), w, ErrDimensions)
		}
		for i := 0; i < w; i++ {
			c := row[i]
			switch {
			case c == empty:
				m.cells = append(m.cells, Empty)
			case c >= '0' && c <= '9':
				m.cells = append(m.cells, int(c-'0'))
			default:
				return nil, fmt.Errorf("tilemap: %q at (%d, %d): %w", c, i, j, ErrInvalidSymbol)
			}
		}
	}
	return m, nil
}

// Parse builds a w×h map from a flat literal whose length must be exactly w*h.
func Parse(literal string, w, h int, empty byte) (*Map, error) {
	if w <= 0 || h <= 0 || len(literal) != w*h {
		return nil, fmt.Errorf("tilemap: literal of %d cells for %dx%d grid: %w", len(literal), w, h, ErrDimensions)
	}
	rows := make([]string, h)
	for j := range rows {
		rows[j] = literal[j*w : (j+1)*w]
	}
	return FromGrid(rows, empty)
}

// LoadFile reads a map from a text file, one row per line.
// Trailing blank lines are ignored.
func LoadFile(path string, empty byte) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: open %s: %w", path, err)
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tilemap: read %s: %w", path, err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	m, err := FromGrid(rows, empty)
	if err != nil {
		return nil, fmt.Errorf("tilemap: load %s: %w", path, err)
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Contains reports whether (i, j) is a cell of the grid.
func (m *Map) Contains(i, j int) bool {
	return i >= 0 && i < m.width && j >= 0 && j < m.height
}

// IsWall reports whether cell (i, j) holds a wall.
func (m *Map) IsWall(i, j int) (bool, error) {
	if !m.Contains(i, j) {
		return false, fmt.Errorf("tilemap: cell (%d, %d) in %dx%d: %w", i, j, m.width, m.height, ErrOutOfBounds)
	}
	return m.cells[j*m.width+i] != Empty, nil
}

// MaterialAt returns the material id of cell (i, j), or Empty for open space.
func (m *Map) MaterialAt(i, j int) (int, error) {
	if !m.Contains(i, j) {
		return Empty, fmt.Errorf("tilemap: cell (%d, %d) in %dx%d: %w", i, j, m.width, m.height, ErrOutOfBounds)
	}
	return m.cells[j*m.width+i], nil
}

// MaxMaterial returns the largest material id used, or Empty for a map without walls.
func (m *Map) MaxMaterial() int {
	hi := Empty
	for _, c := range m.cells {
		if c > hi {
			hi = c
		}
	}
	return hi
}
