package tilemap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseWallsAndMaterials(t *testing.T) {
	literal := "0123" +
		"4  5" +
		"6789"
	m, err := Parse(literal, 4, 3, ' ')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", m.Width(), m.Height())
	}
	for j := 0; j < 3; j++ {
		for i := 0; i < 4; i++ {
			c := literal[j*4+i]
			wall, err := m.IsWall(i, j)
			if err != nil {
				t.Fatalf("IsWall(%d,%d): %v", i, j, err)
			}
			if wall != (c != ' ') {
				t.Errorf("IsWall(%d,%d) = %v for %q", i, j, wall, c)
			}
			mat, _ := m.MaterialAt(i, j)
			want := Empty
			if c != ' ' {
				want = int(c - '0')
			}
			if mat != want {
				t.Errorf("MaterialAt(%d,%d) = %d, want %d", i, j, mat, want)
			}
		}
	}
	if m.MaxMaterial() != 9 {
		t.Errorf("MaxMaterial = %d, want 9", m.MaxMaterial())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		w, h    int
		want    error
	}{
		{"too short", "000", 2, 2, ErrDimensions},
		{"too long", "00000", 2, 2, ErrDimensions},
		{"letter", "0a00", 2, 2, ErrInvalidSymbol},
		{"punctuation", "0#00", 2, 2, ErrInvalidSymbol},
		{"zero width", "", 0, 2, ErrDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.literal, tt.w, tt.h, ' ')
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromGridRaggedRows(t *testing.T) {
	_, err := FromGrid([]string{"000", "00"}, ' ')
	if !errors.Is(err, ErrDimensions) {
		t.Errorf("err = %v, want ErrDimensions", err)
	}
}

func TestCustomEmptyChar(t *testing.T) {
	m, err := FromGrid([]string{"1.1"}, '.')
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	if wall, _ := m.IsWall(1, 0); wall {
		t.Error("expected '.' to be empty")
	}
	// A space is not a digit once another character is the empty marker.
	if _, err := FromGrid([]string{"1 1"}, '.'); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("err = %v, want ErrInvalidSymbol", err)
	}
}

func TestQueriesOutOfBounds(t *testing.T) {
	m := Sample()
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {16, 0}, {0, 16}} {
		if _, err := m.IsWall(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("IsWall(%d,%d) err = %v", c[0], c[1], err)
		}
		if _, err := m.MaterialAt(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("MaterialAt(%d,%d) err = %v", c[0], c[1], err)
		}
	}
}

func TestSampleMaps(t *testing.T) {
	s := Sample()
	if s.Width() != 16 || s.Height() != 16 {
		t.Fatalf("sample is %dx%d", s.Width(), s.Height())
	}
	if wall, _ := s.IsWall(2, 2); wall {
		t.Error("sample start cell (2,2) should be open")
	}
	if tx := Textured(); tx.MaxMaterial() != 3 {
		t.Errorf("textured MaxMaterial = %d, want 3", tx.MaxMaterial())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.txt")
	content := strings.Join([]string{"111", "1 1", "111", "", ""}, "\r\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadFile(path, ' ')
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if m.Width() != 3 || m.Height() != 3 {
		t.Fatalf("size = %dx%d", m.Width(), m.Height())
	}
	if wall, _ := m.IsWall(1, 1); wall {
		t.Error("centre should be open")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), ' '); err == nil {
		t.Error("expected error for missing file")
	}
}
