package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// Config holds all configurable inputs, frame settings and outputs.
type Config struct {
	// Inputs
	MapFile    string `json:"map_file"`    // empty selects BuiltinMap
	BuiltinMap string `json:"builtin_map"` // "sample" or "textured"
	EmptyChar  string `json:"empty_char"`
	Atlas      string `json:"atlas"`       // file path, or a name looked up in TextureDir
	TextureDir string `json:"texture_dir"`
	TileSize   int    `json:"tile_size"`

	// Frame settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Layout      string  `json:"layout"`
	Background  string  `json:"background"`   // #rrggbb
	Gradient    bool    `json:"gradient"`
	HideTrace   bool    `json:"hide_trace"`
	Step        float64 `json:"step"`
	MaxDistance float64 `json:"max_distance"`
	PaletteSeed int64   `json:"palette_seed"`

	// Camera
	CameraX    *float64 `json:"camera_x"`
	CameraY    *float64 `json:"camera_y"`
	Angle      *float64 `json:"angle"`       // radians
	FOVDegrees float64  `json:"fov_degrees"`

	// Animation
	Frames           int     `json:"frames"`
	AngleStepDegrees float64 `json:"angle_step_degrees"`

	// Output
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	Prefix    string `json:"prefix"`
	Scale     int    `json:"scale"`
	Workers   int    `json:"workers"`
}

// Defaults reproduce the classic 1024×512 demo frame.
const (
	DefaultWidth       = 1024
	DefaultHeight      = 512
	DefaultTileSize    = 64
	DefaultCameraX     = 2.0
	DefaultCameraY     = 2.0
	DefaultAngle       = 1.523
	DefaultFOVDegrees  = 60.0
	DefaultStep        = 0.01
	DefaultMaxDistance = 20.0
	DefaultAngleStep   = 1.0
	DefaultPrefix      = "frame"
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from RAYCAST_* variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	strs := map[string]*string{
		"RAYCAST_MAP":         &c.MapFile,
		"RAYCAST_ATLAS":       &c.Atlas,
		"RAYCAST_TEXTURE_DIR": &c.TextureDir,
		"RAYCAST_OUTPUT_DIR":  &c.OutputDir,
		"RAYCAST_FORMAT":      &c.Format,
		"RAYCAST_LAYOUT":      &c.Layout,
	}
	for key, dst := range strs {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"RAYCAST_FRAMES":  &c.Frames,
		"RAYCAST_WORKERS": &c.Workers,
		"RAYCAST_SCALE":   &c.Scale,
	}
	for key, dst := range ints {
		v := getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", key, v, err)
		}
		*dst = n
	}
	return nil
}

// Resolve applies CLI flags, which take priority when non-zero/non-empty,
// and fills every remaining empty field with its default.
func (c *Config) Resolve(flags Flags) {
	if flags.MapFile != "" {
		c.MapFile = flags.MapFile
	}
	if flags.Atlas != "" {
		c.Atlas = flags.Atlas
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Layout != "" {
		c.Layout = flags.Layout
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Angle != nil {
		a := *flags.Angle
		c.Angle = &a
	}

	if c.BuiltinMap == "" {
		c.BuiltinMap = "sample"
		if c.Atlas != "" {
			c.BuiltinMap = "textured"
		}
	}
	if c.EmptyChar == "" {
		c.EmptyChar = " "
	}
	if c.TileSize <= 0 {
		c.TileSize = DefaultTileSize
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Layout == "" {
		c.Layout = "split"
	}
	if c.Step <= 0 {
		c.Step = DefaultStep
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = DefaultMaxDistance
	}
	c.CameraX = orDefault(c.CameraX, DefaultCameraX)
	c.CameraY = orDefault(c.CameraY, DefaultCameraY)
	c.Angle = orDefault(c.Angle, DefaultAngle)
	if c.FOVDegrees <= 0 {
		c.FOVDegrees = DefaultFOVDegrees
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.AngleStepDegrees == 0 {
		c.AngleStepDegrees = DefaultAngleStep
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Format == "" {
		c.Format = "ppm"
	}
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Workers > runtime.NumCPU() {
		c.Workers = runtime.NumCPU()
	}
}

// orDefault returns v, or a pointer to def when v is unset.
func orDefault(v *float64, def float64) *float64 {
	if v != nil {
		return v
	}
	return &def
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	MapFile   string
	Atlas     string
	OutputDir string
	Format    string
	Layout    string
	Frames    int
	Workers   int
	Scale     int
	Angle     *float64
}
