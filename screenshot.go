package canopy

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultScreenshotDir is where Screen writes queued screenshots when
// ScreenshotDir is empty.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled screenshot of the current frame. It is
// captured when End is called and written as a PNG into ScreenshotDir with
// a timestamped file name.
func (s *Screen) Screenshot(label string) {
	s.screenshots = append(s.screenshots, label)
}

// flushScreenshots captures the frame for every queued label.
func (s *Screen) flushScreenshots() {
	if len(s.screenshots) == 0 || s.dst == nil {
		s.screenshots = s.screenshots[:0]
		return
	}
	dir := s.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir failed", "dir", dir, "err", err)
		s.screenshots = s.screenshots[:0]
		return
	}

	bounds := s.dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	s.dst.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	now := time.Now()
	for _, label := range s.screenshots {
		path := SnapshotPath(dir, label, now)
		if err := WritePNG(path, img); err != nil {
			Logger().Warn("screenshot failed", "err", err)
			continue
		}
		Logger().Debug("screenshot saved", "path", path)
	}
	s.screenshots = s.screenshots[:0]
}

// unpremultiply converts premultiplied RGBA bytes to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// SnapshotPath returns dir/<timestamp>_<label>.png with the label made safe
// for file names.
func SnapshotPath(dir, label string, at time.Time) string {
	name := fmt.Sprintf("%s_%s.png", at.Format("20060102_150405"), sanitizeLabel(label))
	return filepath.Join(dir, name)
}

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canopy: failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("canopy: failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
