package canopy

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// italicSkew is the horizontal shear applied to synthesized italics.
const italicSkew = -0.2

// Screen is a Target that draws into an Ebitengine image, typically the
// screen passed to Game.Draw. Shapes and lines are triangulated on the CPU and
// submitted with DrawTriangles; sprites and text use DrawImage and text/v2.
//
// A Screen is not safe for concurrent use.
type Screen struct {
	// ScreenshotDir receives queued screenshots. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string

	dst         *ebiten.Image
	fallback    *Typeface
	scratch     mesh
	calls       int
	frames      int
	screenshots []string
}

// NewScreen returns a target drawing into dst.
func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

// SetFallbackFont sets the typeface used by text whose style has no font.
// With no fallback such text is skipped.
func (s *Screen) SetFallbackFont(f *Typeface) {
	s.fallback = f
}

// Begin points the target at dst and resets the per-frame call counter.
func (s *Screen) Begin(dst *ebiten.Image) {
	s.dst = dst
	s.calls = 0
}

// End finishes a frame, writes any queued screenshots and logs the frame's
// statistics at debug level.
func (s *Screen) End() {
	s.flushScreenshots()
	s.frames++
	l := Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("screen frame", "frame", s.frames, "draw_calls", s.calls)
	}
}

// DrawCalls returns the number of Ebitengine submissions since Begin.
func (s *Screen) DrawCalls() int {
	return s.calls
}

// DrawShape implements Target.
func (s *Screen) DrawShape(shape Shape, p Paint) {
	pts := transformPoints(shape.Outline(), p.Transform)
	s.scratch.reset()
	s.scratch.appendFan(pts, p.Fill)
	if p.OutlineThickness > 0 && shape.Kind != ShapeTriangle {
		s.scratch.appendLoop(pts, p.OutlineThickness*p.Transform.MeanScale(), p.Outline)
	}
	s.submit(p.Blend)
}

// DrawLines implements Target.
func (s *Screen) DrawLines(segments []Segment, p Paint) {
	w := max(p.OutlineThickness, 1) * p.Transform.MeanScale()
	s.scratch.reset()
	for _, seg := range segments {
		s.scratch.appendSegment(p.Transform.Apply(seg.A), p.Transform.Apply(seg.B), w, p.Outline)
	}
	s.submit(p.Blend)
}

func (s *Screen) submit(blend BlendMode) {
	if s.scratch.empty() {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = blend.EbitenBlend()
	op.AntiAlias = true
	s.dst.DrawTriangles(s.scratch.verts, s.scratch.inds, ensureWhitePixel(), &op)
	s.calls++
}

// DrawSprite implements Target.
func (s *Screen) DrawSprite(region TextureRegion, p Paint) {
	if region.Texture == nil {
		return
	}
	src := region.Texture.Ebiten().SubImage(region.SourceRect()).(*ebiten.Image)
	var op ebiten.DrawImageOptions
	op.GeoM = p.Transform.Mul(region.LocalTransform()).GeoM()
	op.Blend = p.Blend.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(src, &op)
	s.calls++
}

// DrawText implements Target. Lines are split on '\n'. Bold is synthesized by
// drawing twice with a small offset, italics by shearing; underline and
// strike-through are drawn as quads in the fill color.
func (s *Screen) DrawText(run TextRun, p Paint) {
	f := run.Style.Font
	if f == nil {
		f = s.fallback
	}
	if f == nil || run.Content == "" {
		return
	}
	style := run.Style
	face := f.Face(style.Size)
	lineH := f.LineHeight(style.Size, style.LineSpacing)
	ascent := f.Ascent(style.Size)

	var local ebiten.GeoM
	if style.Flags.Has(TextItalic) {
		// Shear around the baseline so glyph feet stay in place.
		local.Translate(0, -ascent)
		local.Skew(italicSkew, 0)
		local.Translate(0, ascent)
	}
	world := p.Transform.GeoM()

	s.scratch.reset()
	for i, line := range strings.Split(run.Content, "\n") {
		y := float64(i) * lineH
		width := s.drawLine(line, face, style, local, world, 0, y, p)
		if style.Flags.Has(TextBold) {
			s.drawLine(line, face, style, local, world, style.Size/24+0.5, y, p)
		}
		thick := max(style.Size/16, 1)
		if style.Flags.Has(TextUnderlined) {
			uy := y + ascent + thick*1.5
			s.scratch.appendFan(transformPoints(hbar(0, width, uy, thick), p.Transform), p.Fill)
		}
		if style.Flags.Has(TextStrikeThrough) {
			sy := y + ascent*0.6
			s.scratch.appendFan(transformPoints(hbar(0, width, sy, thick), p.Transform), p.Fill)
		}
	}
	s.submit(p.Blend)
}

// drawLine draws one line of text at local position (shift, y) and returns
// its width.
func (s *Screen) drawLine(line string, face *text.GoTextFace, style TextStyle, local, world ebiten.GeoM, shift, y float64, p Paint) float64 {
	draw := func(str string, x float64) {
		op := &text.DrawOptions{}
		op.GeoM = local
		op.GeoM.Translate(x+shift, y)
		op.GeoM.Concat(world)
		op.ColorScale.ScaleWithColor(p.Fill)
		op.Blend = p.Blend.EbitenBlend()
		op.Filter = ebiten.FilterLinear
		text.Draw(s.dst, str, face, op)
		s.calls++
	}
	if style.LetterSpacing == 1 {
		draw(line, 0)
		return text.Advance(line, face)
	}
	// Per-glyph placement so the spacing multiplier scales every advance.
	x := 0.0
	for len(line) > 0 {
		_, size := utf8.DecodeRuneInString(line)
		glyph := line[:size]
		draw(glyph, x)
		x += text.Advance(glyph, face) * style.LetterSpacing
		line = line[size:]
	}
	return x
}

// hbar returns the corners of a horizontal bar from x0 to x1 centred on y.
func hbar(x0, x1, y, thick float64) []Vec2 {
	h := thick / 2
	return []Vec2{{x0, y - h}, {x1, y - h}, {x1, y + h}, {x0, y + h}}
}
