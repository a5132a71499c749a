package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"tinyraycaster/internal/batch"
	"tinyraycaster/internal/camera"
	"tinyraycaster/internal/config"
	"tinyraycaster/internal/mathutil"
	"tinyraycaster/internal/palette"
	"tinyraycaster/internal/render"
	"tinyraycaster/internal/sink"
	"tinyraycaster/internal/telemetry"
	"tinyraycaster/internal/texture"
	"tinyraycaster/internal/tilemap"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	mapFile := flag.String("map", "", "Map text file (default: built-in sample)")
	atlas := flag.String("atlas", "", "Texture atlas path or name under texture_dir")
	outputDir := flag.String("output", "", "Output directory (default: .)")
	format := flag.String("format", "", "Output format: ppm or webp (default: ppm)")
	layout := flag.String("layout", "", "Frame layout: split or full (default: split)")
	frames := flag.Int("frames", 0, "Number of animation frames (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: 1)")
	scale := flag.Int("scale", 0, "Integer upscale factor for written frames")
	angle := flag.Float64("angle", math.NaN(), "Initial camera angle in radians (default: 1.523)")

	flag.Parse()

	// Load .env for local runs; variables may also be set directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file and environment
	flags := config.Flags{
		MapFile:   *mapFile,
		Atlas:     *atlas,
		OutputDir: *outputDir,
		Format:    *format,
		Layout:    *layout,
		Frames:    *frames,
		Workers:   *workers,
		Scale:     *scale,
	}
	if !math.IsNaN(*angle) {
		flags.Angle = angle
	}
	cfg.Resolve(flags)

	ctx := context.Background()
	var shutdown func(context.Context) error
	if telemetry.Enabled() {
		var err error
		shutdown, err = telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		}
	}

	code := run(ctx, cfg)

	// os.Exit skips deferred calls, so flush spans first.
	if shutdown != nil {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}
	if code != 0 {
		os.Exit(code)
	}
}

func run(ctx context.Context, cfg config.Config) int {
	m, err := loadMap(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading map: %v\n", err)
		return 1
	}
	fmt.Printf("Map: %dx%d, materials 0-%d\n", m.Width(), m.Height(), max(m.MaxMaterial(), 0))

	at, err := loadAtlas(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading atlas: %v\n", err)
		return 1
	}
	if at != nil {
		fmt.Printf("Atlas: %d textures of %dx%d\n", at.Count(), at.Size(), at.Size())
	}

	opts, err := renderOptions(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	r, err := render.New(m, at, palette.Generate(max(m.MaxMaterial(), 0)+1, cfg.PaletteSeed), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	f, err := sink.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	out, err := sink.New(cfg.OutputDir, f, cfg.Scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cam := camera.New(*cfg.CameraX, *cfg.CameraY, *cfg.Angle, mathutil.Deg2Rad(cfg.FOVDegrees))
	step := mathutil.Deg2Rad(cfg.AngleStepDegrees)

	fmt.Printf("Tiny raycaster → %s (%s layout)\n", f, opts.Layout)
	fmt.Printf("Frames: %d, Workers: %d, Size: %dx%d\n", cfg.Frames, cfg.Workers, cfg.Width, cfg.Height)
	fmt.Printf("Camera: (%.2f, %.2f) angle %.1f° fov %.1f°\n", cam.X, cam.Y, mathutil.Rad2Deg(cam.Angle), cfg.FOVDegrees)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Animate(ctx, batch.Config{
		Renderer: r,
		Sink:     out,
		Prefix:   cfg.Prefix,
		Workers:  cfg.Workers,
		Progress: os.Stdout,
	}, cam, cfg.Frames, step)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, res := range results {
		if res.Success {
			success++
		} else {
			failed++
			errors = append(errors, res)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	if cfg.Frames > 1 {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, uuid.NewString(), results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func loadMap(cfg config.Config) (*tilemap.Map, error) {
	empty := cfg.EmptyChar[0]
	if cfg.MapFile != "" {
		return tilemap.LoadFile(cfg.MapFile, empty)
	}
	switch cfg.BuiltinMap {
	case "sample":
		return tilemap.FromGrid(tilemap.SampleRows, tilemap.DefaultEmpty)
	case "textured":
		return tilemap.FromGrid(tilemap.TexturedRows, tilemap.DefaultEmpty)
	}
	return nil, fmt.Errorf("unknown built-in map %q", cfg.BuiltinMap)
}

func loadAtlas(cfg config.Config) (*texture.Atlas, error) {
	if cfg.Atlas == "" {
		return nil, nil
	}
	if _, err := os.Stat(cfg.Atlas); err == nil || cfg.TextureDir == "" {
		return texture.Load(cfg.Atlas, cfg.TileSize)
	}
	idx, err := texture.BuildIndex(cfg.TextureDir)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Textures: %d indexed\n", idx.Len())
	return idx.Atlas(cfg.Atlas, cfg.TileSize)
}

func renderOptions(cfg config.Config) (render.Options, error) {
	opts := render.DefaultOptions()
	opts.Width = cfg.Width
	opts.Height = cfg.Height
	opts.Step = cfg.Step
	opts.MaxDistance = cfg.MaxDistance
	opts.Gradient = cfg.Gradient
	opts.ShowTrace = !cfg.HideTrace

	l, err := render.ParseLayout(cfg.Layout)
	if err != nil {
		return opts, err
	}
	opts.Layout = l

	if cfg.Background != "" {
		bg, err := palette.ParseHex(cfg.Background)
		if err != nil {
			return opts, err
		}
		opts.Background = bg
	}
	return opts, nil
}
