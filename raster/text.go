package raster

import (
	"fmt"
	"image"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"

	"github.com/phanxgames/canopy"
)

// italicSkew is the shear angle, in radians, of synthesized italics.
const italicSkew = -0.2

// face returns a gg face for f at size, parsing the font once per typeface.
func (t *Target) face(f *canopy.Typeface, size float64) (text.Face, error) {
	src, ok := t.sources[f]
	if !ok {
		var err error
		src, err = text.NewFontSource(f.Data())
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %q: %w", f.Name(), err)
		}
		t.sources[f] = src
	}
	return src.Face(size), nil
}

// DrawText implements canopy.Target. The run is rendered upright into a
// scratch image and then composited under the paint transform, so rotated
// and scaled text keeps its shape. Bold, italic, underline and
// strike-through are synthesized.
func (t *Target) DrawText(run canopy.TextRun, p canopy.Paint) {
	f := run.Style.Font
	if f == nil {
		f = t.fallback
	}
	if f == nil || run.Content == "" || p.Blend == canopy.BlendNone {
		return
	}
	style := run.Style
	face, err := t.face(f, style.Size)
	if err != nil {
		t.fail("draw text", err)
		return
	}
	metrics := face.Metrics()
	lineH := (metrics.Ascent + metrics.Descent + metrics.LineGap) * style.LineSpacing
	lines := strings.Split(run.Content, "\n")

	widths := make([]float64, len(lines))
	maxW := 0.0
	for i, line := range lines {
		widths[i] = lineWidth(line, face, style.LetterSpacing)
		maxW = max(maxW, widths[i])
	}
	boldShift := 0.0
	if style.Flags.Has(canopy.TextBold) {
		boldShift = style.Size/24 + 0.5
	}
	w := int(math.Ceil(maxW+boldShift)) + 1
	h := int(math.Ceil(lineH*float64(len(lines)-1)+metrics.Ascent+metrics.Descent)) + 1
	if w <= 1 || h <= 1 {
		return
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	col := p.Fill
	thick := max(style.Size/16, 1)
	for i, line := range lines {
		baseline := float64(i)*lineH + metrics.Ascent
		drawLine(img, line, face, style.LetterSpacing, 0, baseline, col)
		if boldShift > 0 {
			drawLine(img, line, face, style.LetterSpacing, boldShift, baseline, col)
		}
		if style.Flags.Has(canopy.TextUnderlined) {
			bar(img, widths[i], baseline+thick*1.5, thick, col)
		}
		if style.Flags.Has(canopy.TextStrikeThrough) {
			bar(img, widths[i], baseline-metrics.Ascent*0.4, thick, col)
		}
	}

	local := canopy.Identity
	if style.Flags.Has(canopy.TextItalic) {
		// Shear around the first baseline so glyph feet stay in place.
		local = canopy.TranslateMatrix(canopy.V(0, metrics.Ascent)).
			Mul(canopy.Transform{1, 0, math.Tan(italicSkew), 1, 0, 0}).
			Mul(canopy.TranslateMatrix(canopy.V(0, -metrics.Ascent)))
	}
	t.composite(img, img.Bounds(), p.Transform.Mul(local), p.Blend)
	t.calls++
}

// lineWidth returns the advance of line with every glyph advance scaled by
// spacing.
func lineWidth(line string, face text.Face, spacing float64) float64 {
	if spacing == 1 {
		return face.Advance(line)
	}
	w := 0.0
	for _, r := range line {
		w += face.Advance(string(r)) * spacing
	}
	return w
}

func drawLine(dst *image.NRGBA, line string, face text.Face, spacing, x, baseline float64, col canopy.Color) {
	if spacing == 1 {
		text.Draw(dst, line, face, x, baseline, col)
		return
	}
	for len(line) > 0 {
		_, size := utf8.DecodeRuneInString(line)
		glyph := line[:size]
		text.Draw(dst, glyph, face, x, baseline, col)
		x += face.Advance(glyph) * spacing
		line = line[size:]
	}
}

// bar fills a horizontal bar of the given width centred on y.
func bar(dst *image.NRGBA, width, y, thick float64, col canopy.Color) {
	r := image.Rect(0, int(math.Round(y-thick/2)), int(math.Ceil(width)), int(math.Round(y+thick/2)))
	if r.Dy() == 0 {
		r.Max.Y = r.Min.Y + 1
	}
	xdraw.Draw(dst, r, image.NewUniform(col), image.Point{}, xdraw.Over)
}
