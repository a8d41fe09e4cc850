package raster

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/phanxgames/canopy"
)

// composite draws the sr part of src onto the canvas with m mapping
// source-rect coordinates (origin at sr.Min) to canvas pixels. The region is
// resampled into a canvas-aligned scratch image first, then blended with
// gg's image drawing.
func (t *Target) composite(src image.Image, sr image.Rectangle, m canopy.Transform, blend canopy.BlendMode) {
	if sr.Empty() {
		return
	}
	w, h := float64(sr.Dx()), float64(sr.Dy())
	corners := [4]canopy.Vec2{
		m.Apply(canopy.V(0, 0)),
		m.Apply(canopy.V(w, 0)),
		m.Apply(canopy.V(w, h)),
		m.Apply(canopy.V(0, h)),
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		minX, minY = math.Min(minX, c.X), math.Min(minY, c.Y)
		maxX, maxY = math.Max(maxX, c.X), math.Max(maxY, c.Y)
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(image.Rect(0, 0, t.dc.Width(), t.dc.Height()))
	if bounds.Empty() {
		return
	}

	// Source pixel -> scratch pixel.
	s2d := canopy.TranslateMatrix(canopy.V(-float64(bounds.Min.X), -float64(bounds.Min.Y))).
		Mul(m).
		Mul(canopy.TranslateMatrix(canopy.V(-float64(sr.Min.X), -float64(sr.Min.Y))))

	scratch := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.BiLinear.Transform(scratch, aff3(s2d), src, sr, xdraw.Over, nil)

	t.dc.Push()
	defer t.dc.Pop()
	t.dc.Identity()
	t.dc.DrawImageEx(gg.ImageBufFromImage(scratch), gg.DrawImageOptions{
		X:             float64(bounds.Min.X),
		Y:             float64(bounds.Min.Y),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     imageBlend(blend),
	})
}

// aff3 converts a canopy transform to x/image's row-major affine matrix.
func aff3(m canopy.Transform) f64.Aff3 {
	return f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
}

// imageBlend maps canopy blend modes to the subset gg supports for images.
// Modes without a counterpart composite normally.
func imageBlend(b canopy.BlendMode) gg.BlendMode {
	switch b {
	case canopy.BlendMultiply:
		return gg.BlendMultiply
	case canopy.BlendScreen:
		return gg.BlendScreen
	default:
		return gg.BlendNormal
	}
}
