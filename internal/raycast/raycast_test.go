package raycast

import (
	"math"
	"testing"

	"tinyraycaster/internal/camera"
	"tinyraycaster/internal/tilemap"
)

// room returns an n×n map with a ring of material-1 walls.
func room(t *testing.T, n int) *tilemap.Map {
	t.Helper()
	rows := make([]string, n)
	for j := range rows {
		row := make([]byte, n)
		for i := range row {
			if i == 0 || j == 0 || i == n-1 || j == n-1 {
				row[i] = '1'
			} else {
				row[i] = ' '
			}
		}
		rows[j] = string(row)
	}
	m, err := tilemap.FromGrid(rows, ' ')
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	return m
}

func TestEmptyRoomAxisRays(t *testing.T) {
	m := room(t, 10)
	c := &Caster{Map: m, Step: 1, MaxDistance: 20}

	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"east", 0, 7},            // wall column x=9
		{"south", math.Pi / 2, 7}, // wall row y=9
		{"west", math.Pi, 2},      // reaches x=0 at distance 2
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := c.Cast(2, 2, tt.angle, nil)
			if !hit.Found {
				t.Fatal("expected a hit")
			}
			if math.Abs(hit.Distance-tt.want) > 1e-9 {
				t.Errorf("distance = %v, want %v", hit.Distance, tt.want)
			}
			if hit.Material != 1 || hit.Outside {
				t.Errorf("material = %d outside = %v", hit.Material, hit.Outside)
			}
		})
	}
}

func TestFineStepApproachesWall(t *testing.T) {
	m := room(t, 10)
	c := &Caster{Map: m, Step: 0.01, MaxDistance: 20}
	hit := c.Cast(2, 2, 0, nil)
	// The first sample inside the wall lies within one step past x=9.
	if hit.Distance < 7-1e-9 || hit.Distance > 7+0.01+1e-9 {
		t.Errorf("distance = %v, want in [7, 7.01]", hit.Distance)
	}
}

func TestNoHitWithinRange(t *testing.T) {
	m := room(t, 40)
	c := &Caster{Map: m, Step: 0.05, MaxDistance: 5}
	if hit := c.Cast(20, 20, 0.3, nil); hit.Found {
		t.Errorf("expected no hit, got %+v", hit)
	}
}

func TestLeavingMapCountsAsHit(t *testing.T) {
	m, err := tilemap.FromGrid([]string{"   ", "   ", "   "}, ' ')
	if err != nil {
		t.Fatal(err)
	}
	c := &Caster{Map: m, Step: 0.5, MaxDistance: 20}
	hit := c.Cast(1.5, 1.5, 0, nil)
	if !hit.Found || !hit.Outside {
		t.Fatalf("hit = %+v, want boundary hit", hit)
	}
	if hit.Distance != 1.5 {
		t.Errorf("distance = %v, want 1.5", hit.Distance)
	}
}

func TestCastDeterministic(t *testing.T) {
	m := tilemap.Sample()
	c := New(m, 64)
	cam := camera.New(2, 2, 1.523, camera.DefaultFOV)
	for i := 0; i < 512; i += 37 {
		a, _ := c.CastColumn(cam, i, 512, nil)
		b, _ := c.CastColumn(cam, i, 512, nil)
		if a != b {
			t.Errorf("column %d: %+v != %+v", i, a, b)
		}
	}
}

func TestVisitorSeesOpenSamplesOnly(t *testing.T) {
	m := room(t, 10)
	c := &Caster{Map: m, Step: 1, MaxDistance: 20}
	var visits [][2]float64
	c.Cast(2, 2, 0, func(x, y float64) {
		visits = append(visits, [2]float64{x, y})
	})
	// Samples at x = 2..8 are open; x = 9 is the wall.
	if len(visits) != 7 {
		t.Fatalf("visited %d samples, want 7", len(visits))
	}
	for _, v := range visits {
		if wall, _ := m.IsWall(int(v[0]), int(v[1])); wall {
			t.Errorf("visited wall cell at %v", v)
		}
	}
}

func TestTexelUFaces(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"vertical face uses y", 9.004, 2.25, 16},
		{"horizontal face uses x", 3.75, 9.002, 48},
		{"near corner", 5.5, 7.001, 32},
		{"high end of face", 9.0001, 2.999, 63},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TexelU(tt.x, tt.y, 64); got != tt.want {
				t.Errorf("TexelU(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCastReportsTexelU(t *testing.T) {
	m := room(t, 10)
	c := &Caster{Map: m, Step: 0.01, MaxDistance: 20, TexelSize: 64}
	hit := c.Cast(2, 2.25, 0, nil)
	if hit.U != 16 {
		t.Errorf("U = %d, want 16", hit.U)
	}
	c.TexelSize = 0
	if hit := c.Cast(2, 2.25, 0, nil); hit.U != 0 {
		t.Errorf("U without atlas = %d, want 0", hit.U)
	}
}

func TestColumnHeightStraightAhead(t *testing.T) {
	const h = 512
	got := ColumnHeight(h, 4, 1.2, 1.2)
	if math.Abs(got-h/4.0) > 1e-9 {
		t.Errorf("height = %v, want %v", got, h/4.0)
	}
}

func TestColumnHeightCorrectsFisheye(t *testing.T) {
	const h = 512
	cam := 0.7
	edge := cam + camera.DefaultFOV/2
	centre := ColumnHeight(h, 5, cam, cam)
	side := ColumnHeight(h, 5, edge, cam)
	if side <= centre {
		t.Errorf("edge height %v should exceed centre height %v", side, centre)
	}
	want := h / (5 * math.Cos(camera.DefaultFOV/2))
	if math.Abs(side-want) > 1e-9 {
		t.Errorf("edge height = %v, want %v", side, want)
	}
}

func TestColumnHeightFiniteAtZeroDistance(t *testing.T) {
	got := ColumnHeight(512, 0, 0, 0)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("height = %v", got)
	}
}
