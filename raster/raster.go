// Package raster renders canopy items without a window, on a gogpu/gg
// software context. It is used for PNG snapshots and for tests that need
// real pixels.
//
//	t := raster.New(640, 480)
//	defer t.Close()
//	t.Clear(canopy.ColorBlack)
//	canopy.Frame(scene, t)
//	err := t.SavePNG("frame.png")
package raster

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/phanxgames/canopy"
)

// Target is a canopy.Target that rasterizes into a gg.Context. Shapes and
// lines become filled and stroked paths under the item's transform; sprites
// and text are composited through an affine resampling step so rotation
// and shear are honored.
//
// Draw methods cannot return errors. The first rendering failure is kept
// and reported by Err. A Target is not safe for concurrent use.
type Target struct {
	dc       *gg.Context
	fallback *canopy.Typeface
	sources  map[*canopy.Typeface]*text.FontSource
	calls    int
	err      error
}

// New returns a target with a width by height transparent canvas.
func New(width, height int) *Target {
	return &Target{
		dc:      gg.NewContext(width, height),
		sources: make(map[*canopy.Typeface]*text.FontSource),
	}
}

// Context returns the underlying gg context.
func (t *Target) Context() *gg.Context { return t.dc }

// Width returns the canvas width in pixels.
func (t *Target) Width() int { return t.dc.Width() }

// Height returns the canvas height in pixels.
func (t *Target) Height() int { return t.dc.Height() }

// SetFallbackFont sets the typeface used by text whose style has no font.
func (t *Target) SetFallbackFont(f *canopy.Typeface) { t.fallback = f }

// Clear fills the whole canvas with c and resets the draw call counter.
func (t *Target) Clear(c canopy.Color) {
	t.dc.ClearWithColor(gg.RGBA2(c.R, c.G, c.B, c.A))
	t.calls = 0
}

// DrawCalls returns the number of draw requests rendered since Clear.
func (t *Target) DrawCalls() int { return t.calls }

// Err returns the first error reported by the renderer, if any.
func (t *Target) Err() error { return t.err }

// Image returns the rendered canvas.
func (t *Target) Image() image.Image { return t.dc.Image() }

// SavePNG writes the canvas to path.
func (t *Target) SavePNG(path string) error {
	if err := t.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canopy: failed to save snapshot %s: %w", path, err)
	}
	canopy.Logger().Debug("snapshot saved", "path", path, "draw_calls", t.calls)
	return nil
}

// EncodePNG writes the canvas to w as PNG.
func (t *Target) EncodePNG(w io.Writer) error {
	if err := t.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("canopy: failed to encode snapshot: %w", err)
	}
	return nil
}

// Close releases the context.
func (t *Target) Close() error {
	return t.dc.Close()
}

func (t *Target) fail(op string, err error) {
	if err == nil {
		return
	}
	if t.err == nil {
		t.err = fmt.Errorf("canopy: %s: %w", op, err)
	}
	l := canopy.Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("raster draw failed", "op", op, "err", err)
	}
}

// matrix converts a canopy transform to gg's row-major layout.
func matrix(m canopy.Transform) gg.Matrix {
	return gg.Matrix{
		A: m[0], B: m[2], C: m[4],
		D: m[1], E: m[3], F: m[5],
	}
}

func rgba(c canopy.Color) gg.RGBA {
	return gg.RGBA2(c.R, c.G, c.B, c.A)
}

// DrawShape implements canopy.Target. Outlines are stroked centered on the
// boundary. Shapes always use normal blending; BlendNone skips them.
func (t *Target) DrawShape(shape canopy.Shape, p canopy.Paint) {
	if p.Blend == canopy.BlendNone {
		return
	}
	t.dc.Push()
	defer t.dc.Pop()
	t.dc.SetTransform(matrix(p.Transform))

	t.shapePath(shape)
	t.dc.SetColor(rgba(p.Fill).Color())
	t.fail("fill shape", t.dc.Fill())

	if p.OutlineThickness > 0 && shape.Kind != canopy.ShapeTriangle {
		t.shapePath(shape)
		t.dc.SetColor(rgba(p.Outline).Color())
		t.dc.SetLineWidth(p.OutlineThickness)
		t.fail("stroke shape", t.dc.Stroke())
	}
	t.calls++
}

func (t *Target) shapePath(shape canopy.Shape) {
	switch shape.Kind {
	case canopy.ShapeRect:
		t.dc.DrawRectangle(0, 0, shape.Size.X, shape.Size.Y)
	case canopy.ShapeCircle:
		t.dc.DrawCircle(shape.Radius, shape.Radius, shape.Radius)
	default:
		pts := shape.Points
		if len(pts) == 0 {
			return
		}
		t.dc.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			t.dc.LineTo(pt.X, pt.Y)
		}
		t.dc.ClosePath()
	}
}

// DrawLines implements canopy.Target. Lines are at least one unit wide and
// always use normal blending; BlendNone skips them.
func (t *Target) DrawLines(segments []canopy.Segment, p canopy.Paint) {
	if p.Blend == canopy.BlendNone || len(segments) == 0 {
		return
	}
	t.dc.Push()
	defer t.dc.Pop()
	t.dc.SetTransform(matrix(p.Transform))
	for _, s := range segments {
		t.dc.DrawLine(s.A.X, s.A.Y, s.B.X, s.B.Y)
	}
	t.dc.SetColor(rgba(p.Outline).Color())
	t.dc.SetLineWidth(max(p.OutlineThickness, 1))
	t.fail("stroke lines", t.dc.Stroke())
	t.calls++
}

// DrawSprite implements canopy.Target. Fill and outline do not tint
// sprites.
func (t *Target) DrawSprite(region canopy.TextureRegion, p canopy.Paint) {
	if region.Texture == nil || p.Blend == canopy.BlendNone {
		return
	}
	m := p.Transform.Mul(region.LocalTransform())
	t.composite(region.Texture.Image(), region.SourceRect(), m, p.Blend)
	t.calls++
}
