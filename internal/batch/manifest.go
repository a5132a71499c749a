package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest describes one animation run.
type Manifest struct {
	RunID     string          `json:"run_id"`
	CreatedAt time.Time       `json:"created_at"`
	Frames    []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one successfully written frame.
type ManifestEntry struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	File  string  `json:"file"`
	Angle float64 `json:"angle"`
}

// WriteManifest writes manifest.json describing the written frames.
func WriteManifest(path, runID string, results []Result) error {
	m := Manifest{RunID: runID, CreatedAt: time.Now().UTC(), Frames: []ManifestEntry{}}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Index: r.Index,
			Name:  r.Name,
			File:  filepath.Base(r.Path),
			Angle: r.Angle,
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
