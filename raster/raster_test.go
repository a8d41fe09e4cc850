package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/phanxgames/canopy"
)

func rgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestMatrixConversion(t *testing.T) {
	m := canopy.TranslateMatrix(canopy.V(5, 7)).Mul(canopy.RotateMatrix(90)).Mul(canopy.ScaleMatrix(canopy.V(2, 3)))
	gm := matrix(m)
	for _, p := range []canopy.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: -2}} {
		want := m.Apply(p)
		got := gm.TransformPoint(gg.Pt(p.X, p.Y))
		if d := (canopy.V(got.X, got.Y)).Sub(want).Len(); d > 1e-9 {
			t.Errorf("gg matrix maps %v to (%v, %v), want %v", p, got.X, got.Y, want)
		}
	}
}

func TestAff3Conversion(t *testing.T) {
	m := canopy.Transform{1, 2, 3, 4, 5, 6}
	a := aff3(m)
	// x' = a[0]*x + a[1]*y + a[2]
	x, y := 2.0, 3.0
	want := m.Apply(canopy.V(x, y))
	gotX := a[0]*x + a[1]*y + a[2]
	gotY := a[3]*x + a[4]*y + a[5]
	if gotX != want.X || gotY != want.Y {
		t.Errorf("aff3 maps (2, 3) to (%v, %v), want %v", gotX, gotY, want)
	}
}

func TestImageBlend(t *testing.T) {
	tests := map[canopy.BlendMode]gg.BlendMode{
		canopy.BlendNormal:   gg.BlendNormal,
		canopy.BlendMultiply: gg.BlendMultiply,
		canopy.BlendScreen:   gg.BlendScreen,
		canopy.BlendAdd:      gg.BlendNormal,
	}
	for in, want := range tests {
		if got := imageBlend(in); got != want {
			t.Errorf("imageBlend(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestDrawRect(t *testing.T) {
	item := canopy.Rect(canopy.V(20, 20)).With(
		canopy.Translate(canopy.V(10, 10)),
		canopy.FillColor(canopy.ColorRed),
		canopy.OutlineThickness(0),
	)
	tg := Snapshot(item, Options{Width: 64, Height: 64})
	defer tg.Close()

	if tg.DrawCalls() != 1 {
		t.Errorf("DrawCalls = %d, want 1", tg.DrawCalls())
	}
	if err := tg.Err(); err != nil {
		t.Fatalf("Err = %v", err)
	}
	inside := rgbaAt(tg.Image(), 20, 20)
	if inside.R < 200 || inside.G > 50 || inside.A < 200 {
		t.Errorf("pixel inside rect = %v, want red", inside)
	}
	outside := rgbaAt(tg.Image(), 50, 50)
	if outside.A != 0 {
		t.Errorf("pixel outside rect = %v, want transparent", outside)
	}
}

func TestClearBackground(t *testing.T) {
	tg := Snapshot(canopy.Empty, Options{Width: 8, Height: 8, Background: canopy.ColorBlue})
	defer tg.Close()
	if px := rgbaAt(tg.Image(), 4, 4); px.B < 250 || px.A < 250 {
		t.Errorf("background pixel = %v, want blue", px)
	}
}

func TestShapeBlendDrawsNormal(t *testing.T) {
	// Blending over a red background: multiply would darken, normal replaces.
	item := canopy.Rect(canopy.V(8, 8)).With(
		canopy.FillColor(canopy.ColorBlue),
		canopy.OutlineThickness(0),
		canopy.Blend(canopy.BlendMultiply),
	)
	tg := Snapshot(item, Options{Width: 8, Height: 8, Background: canopy.ColorRed})
	defer tg.Close()
	if px := rgbaAt(tg.Image(), 4, 4); px.B < 250 || px.R > 5 {
		t.Errorf("multiply shape pixel = %v, want blue", px)
	}
}

func TestBlendNoneSkips(t *testing.T) {
	item := canopy.Rect(canopy.V(8, 8)).With(canopy.Blend(canopy.BlendNone))
	tg := Snapshot(item, Options{Width: 8, Height: 8})
	defer tg.Close()
	if tg.DrawCalls() != 0 {
		t.Errorf("DrawCalls = %d, want 0", tg.DrawCalls())
	}
}

func TestDrawSpriteScaled(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
		if i%4 == 0 || i%4 == 2 {
			src.Pix[i] = 0 // green, opaque
		}
	}
	tex := canopy.NewTexture(src)
	item := canopy.Sprite(tex.Region()).With(
		canopy.Translate(canopy.V(10, 10)),
		canopy.Scale(canopy.V(4, 4)),
	)
	tg := Snapshot(item, Options{Width: 40, Height: 40})
	defer tg.Close()

	if px := rgbaAt(tg.Image(), 18, 18); px.G < 200 || px.R > 50 || px.A < 200 {
		t.Errorf("pixel inside sprite = %v, want green", px)
	}
	if px := rgbaAt(tg.Image(), 35, 35); px.A != 0 {
		t.Errorf("pixel outside sprite = %v, want transparent", px)
	}
}

func TestDrawSpriteOffCanvas(t *testing.T) {
	tex := canopy.NewTexture(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	item := canopy.Sprite(tex.Region()).With(canopy.Translate(canopy.V(-100, -100)))
	tg := Snapshot(item, Options{Width: 8, Height: 8})
	defer tg.Close()
	if tg.Err() != nil {
		t.Errorf("Err = %v", tg.Err())
	}
}

func TestDrawText(t *testing.T) {
	item := canopy.Text("Hi").With(canopy.FontSize(32), canopy.FillColor(canopy.ColorWhite))
	tg := Snapshot(item, Options{Width: 64, Height: 64, Font: canopy.DefaultTypeface()})
	defer tg.Close()

	if tg.DrawCalls() != 1 {
		t.Fatalf("DrawCalls = %d, want 1", tg.DrawCalls())
	}
	img := tg.Image()
	inked := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if rgbaAt(img, x, y).A > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("text drew no pixels")
	}
}

func TestDrawTextWithoutFontSkips(t *testing.T) {
	tg := Snapshot(canopy.Text("Hi"), Options{Width: 16, Height: 16})
	defer tg.Close()
	if tg.DrawCalls() != 0 {
		t.Errorf("DrawCalls = %d, want 0", tg.DrawCalls())
	}
}

func TestFontSourceCached(t *testing.T) {
	tg := New(8, 8)
	defer tg.Close()
	f := canopy.DefaultTypeface()
	if _, err := tg.face(f, 12); err != nil {
		t.Fatal(err)
	}
	if _, err := tg.face(f, 24); err != nil {
		t.Fatal(err)
	}
	if len(tg.sources) != 1 {
		t.Errorf("font sources = %d, want 1", len(tg.sources))
	}
}

func TestLineWidthSpacing(t *testing.T) {
	tg := New(8, 8)
	defer tg.Close()
	face, err := tg.face(canopy.DefaultTypeface(), 20)
	if err != nil {
		t.Fatal(err)
	}
	normal := lineWidth("abc", face, 1)
	wide := lineWidth("abc", face, 2)
	if normal <= 0 || wide <= normal*1.5 {
		t.Errorf("lineWidth = %v (x1), %v (x2)", normal, wide)
	}
}

func TestEncodePNG(t *testing.T) {
	tg := Snapshot(canopy.Rect(canopy.V(4, 4)), Options{Width: 8, Height: 6})
	defer tg.Close()
	var buf bytes.Buffer
	if err := tg.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("decoded size = %dx%d, want 8x6", b.Dx(), b.Dy())
	}
}

func TestSaveSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	path, err := SaveSnapshot(canopy.Circle(4), Options{Width: 16, Height: 16}, dir, "my circle")
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if !strings.HasSuffix(path, "_my_circle.png") {
		t.Errorf("path = %q, want suffix _my_circle.png", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}
}
