package batch

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"tinyraycaster/internal/camera"
	"tinyraycaster/internal/raster"
	"tinyraycaster/internal/sink"
	"tinyraycaster/internal/telemetry"
)

// Framer renders one frame for a camera pose.
type Framer interface {
	Frame(cam camera.Camera) (*raster.Buffer, error)
}

// Config holds all shared resources for an animation run.
type Config struct {
	Renderer Framer
	Sink     sink.Sink
	Prefix   string
	Workers  int
	Progress io.Writer // periodic progress lines; nil disables them
}

// Result holds the outcome of one frame.
type Result struct {
	Index   int
	Name    string
	Path    string
	Angle   float64
	Success bool
	Error   string
}

// Animate renders frames poses, turning the camera by delta radians after
// each one, and hands every frame to the sink under a sequential name.
func Animate(ctx context.Context, cfg Config, start camera.Camera, frames int, delta float64) []Result {
	return Run(ctx, cfg, start.Sequence(frames, delta))
}

// Run renders one frame per pose using a worker pool. Results keep pose order.
func Run(ctx context.Context, cfg Config, poses []camera.Camera) []Result {
	tracer := telemetry.Tracer("batch")
	ctx, span := tracer.Start(ctx, "batch.run")
	defer span.End()

	total := len(poses)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	span.SetAttributes(
		attribute.Int("batch.frames", total),
		attribute.Int("batch.workers", workers),
	)

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(ctx, cfg, idx, total, poses[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	sent := 0
send:
	for ; sent < total; sent++ {
		select {
		case <-ctx.Done():
			break send
		case frameChan <- sent:
		}
	}
	close(frameChan)

	wg.Wait()
	close(done)

	for i := sent; i < total; i++ {
		results[i] = Result{
			Index: i,
			Name:  sink.FrameName(cfg.Prefix, i, total),
			Angle: poses[i].Angle,
			Error: ctx.Err().Error(),
		}
	}

	if failed := countFailed(results); failed > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d frames failed", failed))
	}
	return results
}

func processFrame(ctx context.Context, cfg Config, idx, total int, cam camera.Camera) Result {
	name := sink.FrameName(cfg.Prefix, idx, total)
	res := Result{Index: idx, Name: name, Angle: cam.Angle}

	_, span := telemetry.Tracer("batch").Start(ctx, "batch.frame")
	defer span.End()
	span.SetAttributes(
		attribute.Int("frame.index", idx),
		attribute.String("frame.name", name),
		attribute.Float64("camera.angle", cam.Angle),
	)

	buf, err := cfg.Renderer.Frame(cam)
	if err != nil {
		span.RecordError(err)
		res.Error = err.Error()
		return res
	}

	path, err := cfg.Sink.Write(name, buf)
	if err != nil {
		span.RecordError(err)
		res.Error = err.Error()
		return res
	}

	res.Path = path
	res.Success = true
	return res
}

func countFailed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}
