package raster

import (
	"fmt"
	"os"
	"time"

	"github.com/phanxgames/canopy"
)

// Options configures Snapshot.
type Options struct {
	Width, Height int
	Background    canopy.Color
	Font          *canopy.Typeface // fallback for text without a font
}

// Snapshot renders item once onto a fresh canvas. The caller owns the
// returned target and should Close it.
func Snapshot(item canopy.Item, opts Options) *Target {
	t := New(opts.Width, opts.Height)
	t.SetFallbackFont(opts.Font)
	t.Clear(opts.Background)
	canopy.Frame(item, t)
	return t
}

// SaveSnapshot renders item and writes it into dir as a timestamped PNG
// named after label. It returns the path written.
func SaveSnapshot(item canopy.Item, opts Options, dir, label string) (string, error) {
	t := Snapshot(item, opts)
	defer t.Close()
	if err := t.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("canopy: failed to create snapshot dir %s: %w", dir, err)
	}
	path := canopy.SnapshotPath(dir, label, time.Now())
	if err := t.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}
