package canopy

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Box ---

func TestBoxContains(t *testing.T) {
	r := Box{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Box%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestBoxUnion(t *testing.T) {
	got := Box{0, 0, 10, 10}.Union(Box{5, -5, 10, 10})
	if got != (Box{0, -5, 15, 15}) {
		t.Errorf("Union = %v, want {0 -5 15 15}", got)
	}
	if got := (Box{}).Union(Box{3, 4, 1, 1}); got != (Box{3, 4, 1, 1}) {
		t.Errorf("empty Union = %v, want {3 4 1 1}", got)
	}
}

func TestShapeBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  Box
	}{
		{"rect", Shape{Kind: ShapeRect, Size: Vec2{4, 3}}, Box{0, 0, 4, 3}},
		{"circle", Shape{Kind: ShapeCircle, Radius: 5}, Box{0, 0, 10, 10}},
		{"polygon", Shape{Kind: ShapePolygon, Points: []Vec2{{-1, 2}, {3, -4}, {0, 0}}}, Box{-1, -4, 4, 6}},
		{"empty polygon", Shape{Kind: ShapePolygon}, Box{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleOutline(t *testing.T) {
	pts := Shape{Kind: ShapeCircle, Radius: 10}.Outline()
	if len(pts) != circleSegments {
		t.Fatalf("outline points = %d, want %d", len(pts), circleSegments)
	}
	for _, p := range pts {
		if d := p.Sub(Vec2{10, 10}).Len(); d < 10-1e-9 || d > 10+1e-9 {
			t.Fatalf("point %v is %v from the centre, want 10", p, d)
		}
	}
}

// --- Color ---

func TestColorRGBA(t *testing.T) {
	var c color.Color = ColorRed
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("ColorRed.RGBA() = (%d, %d, %d, %d), want opaque red", r, g, b, a)
	}
	// Half-transparent white is premultiplied by color.NRGBA.
	r, _, _, a = Color{1, 1, 1, 0.5}.RGBA()
	if a != 0x8080 || r != a {
		t.Errorf("half white RGBA = r %x a %x, want r == a == 0x8080", r, a)
	}
}

func TestColorClamps(t *testing.T) {
	n := Color{2, -1, 0.5, 1}.toNRGBA()
	if n.R != 255 || n.G != 0 || n.B != 128 {
		t.Errorf("toNRGBA = %v, want {255 0 128 255}", n)
	}
}

func TestColorLerp(t *testing.T) {
	got := ColorBlack.Lerp(ColorWhite, 0.25)
	if got != (Color{0.25, 0.25, 0.25, 1}) {
		t.Errorf("Lerp = %v, want {0.25 0.25 0.25 1}", got)
	}
}

func TestRGB8(t *testing.T) {
	if got := RGB8(255, 0, 51); got != (Color{1, 0, 0.2, 1}) {
		t.Errorf("RGB8 = %v, want {1 0 0.2 1}", got)
	}
}

// --- Vec2 ---

func TestVec2Arithmetic(t *testing.T) {
	a, b := V(3, 4), V(1, -2)
	if a.Add(b) != V(4, 2) || a.Sub(b) != V(2, 6) || a.Mul(2) != V(6, 8) || a.Div(2) != V(1.5, 2) || a.Neg() != V(-3, -4) {
		t.Error("Vec2 arithmetic mismatch")
	}
	if a.Len() != 5 {
		t.Errorf("Len = %v, want 5", a.Len())
	}
	if got := a.Lerp(b, 0.5); got != V(2, 1) {
		t.Errorf("Lerp = %v, want (2, 1)", got)
	}
}

// --- BlendMode.EbitenBlend ---

func TestBlendModeEbitenBlend(t *testing.T) {
	modes := []struct {
		mode   BlendMode
		expect ebiten.Blend
	}{
		{BlendNormal, ebiten.BlendSourceOver},
		{BlendAdd, ebiten.BlendLighter},
		{BlendErase, ebiten.BlendDestinationOut},
		{BlendNone, ebiten.BlendCopy},
	}
	for _, tt := range modes {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := tt.mode.EbitenBlend()
			if got != tt.expect {
				t.Errorf("%s.EbitenBlend() = %v, want %v", tt.mode, got, tt.expect)
			}
		})
	}

	zero := ebiten.Blend{}
	for _, mode := range []BlendMode{BlendMultiply, BlendScreen} {
		if mode.EbitenBlend() == zero {
			t.Errorf("%s.EbitenBlend() returned zero blend", mode)
		}
	}
}

// --- Enum constant values (catch accidental iota drift) ---

func TestEnumValues(t *testing.T) {
	if BlendNormal != 0 {
		t.Errorf("BlendNormal = %d, want 0", BlendNormal)
	}
	if BlendNone != 5 {
		t.Errorf("BlendNone = %d, want 5", BlendNone)
	}

	if TextRegular != 0 || TextBold != 1 || TextItalic != 2 || TextUnderlined != 4 || TextStrikeThrough != 8 {
		t.Errorf("text flags = %d %d %d %d %d, want 0 1 2 4 8",
			TextRegular, TextBold, TextItalic, TextUnderlined, TextStrikeThrough)
	}

	if ShapeRect != 0 || ShapeTriangle != 3 {
		t.Errorf("ShapeRect/ShapeTriangle = %d/%d, want 0/3", ShapeRect, ShapeTriangle)
	}
}

func TestTextFlagsHas(t *testing.T) {
	f := TextBold | TextUnderlined
	if !f.Has(TextBold) || !f.Has(TextUnderlined) || f.Has(TextItalic) {
		t.Errorf("Has mismatch for %b", f)
	}
	if !f.Has(TextBold | TextUnderlined) {
		t.Error("Has(bold|underlined) = false, want true")
	}
}

func TestDefaultState(t *testing.T) {
	st := DefaultState()
	if st.Text.Size != DefaultFontSize || st.Text.LetterSpacing != 1 || st.Text.LineSpacing != 1 {
		t.Errorf("default text style = %+v", st.Text)
	}
	if st.Text.Font != nil || st.Text.Flags != TextRegular {
		t.Errorf("default font/flags = %v/%v, want nil/regular", st.Text.Font, st.Text.Flags)
	}
}

// --- Benchmarks (verify zero allocations) ---

func BenchmarkBoxContains(b *testing.B) {
	r := Box{10, 20, 100, 50}
	b.ReportAllocs()
	for b.Loop() {
		_ = r.Contains(50, 40)
	}
}
