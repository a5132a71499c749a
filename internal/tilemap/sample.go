package tilemap

// SampleRows is the 16×16 demo level: a walled room split by interior walls.
var SampleRows = []string{
	"0000000000000000",
	"0          0   0",
	"0              0",
	"0  0000  0000000",
	"0  0        0  0",
	"0  0        0  0",
	"0  0        0  0",
	"0      00      0",
	"0      00      0",
	"0  0        0000",
	"0  0        0  0",
	"0  0        0  0",
	"0000000  0000  0",
	"0              0",
	"0              0",
	"0000000000000000",
}

// TexturedRows is a 16×16 level that mixes materials 0-3.
var TexturedRows = []string{
	"0000222222220000",
	"1              0",
	"1      11111   0",
	"1     0        0",
	"0     0  1110000",
	"0     3        0",
	"0   10000      0",
	"0   0   11100  0",
	"0   0   0      0",
	"0   0   1  00000",
	"0       1      0",
	"2       1      0",
	"0       0      0",
	"0 0000000      0",
	"0              0",
	"0002222222200000",
}

// Sample returns the demo level.
func Sample() *Map {
	m, err := FromGrid(SampleRows, DefaultEmpty)
	if err != nil {
		panic(err)
	}
	return m
}

// Textured returns the multi-material level.
func Textured() *Map {
	m, err := FromGrid(TexturedRows, DefaultEmpty)
	if err != nil {
		panic(err)
	}
	return m
}
