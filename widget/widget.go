// Package widget is an object-style alternative to canopy items.
//
// A [Widget] owns exactly one concrete drawable (a shape, a sprite or a run
// of text) together with its position, scale, rotation and style. Widgets
// have value semantics: [Widget.With] clones the drawable and applies the
// modifiers to the clone, so a widget that has been handed out is never
// changed afterwards.
//
//	base := widget.Rect(40, 20).With(widget.Fill(canopy.ColorRed))
//	moved := base.With(widget.Position(canopy.V(100, 50)))
//	// base is still at the origin.
//
// Properties a drawable does not have are ignored: filling a sprite or
// setting the text of a circle does nothing.
package widget

import "github.com/phanxgames/canopy"

// Kind identifies the concrete drawable inside a Widget.
type Kind uint8

const (
	KindNone Kind = iota
	KindShape
	KindSprite
	KindText
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindSprite:
		return "sprite"
	case KindText:
		return "text"
	default:
		return "none"
	}
}

// drawable is implemented by each concrete widget body. Optional
// capabilities (style, texture, text) are separate interfaces.
type drawable interface {
	kind() Kind
	clone() drawable
	geom() *geometry
	draw(dst canopy.Target, p canopy.Paint)
}

type styled interface {
	styleRef() *canopy.Style
}

type textured interface {
	setRegion(r canopy.TextureRegion)
}

type typeset interface {
	runRef() *canopy.TextRun
}

// geometry is the placement shared by every drawable. The local transform
// is translate(position) * rotate(rotation) * scale(scale).
type geometry struct {
	position canopy.Vec2
	scale    canopy.Vec2
	rotation float64 // degrees, clockwise
}

func newGeometry() geometry {
	return geometry{scale: canopy.V(1, 1)}
}

func (g *geometry) geom() *geometry { return g }

func (g geometry) local() canopy.Transform {
	return canopy.TranslateMatrix(g.position).
		Mul(canopy.RotateMatrix(g.rotation)).
		Mul(canopy.ScaleMatrix(g.scale))
}

// defaultStyle matches a freshly created shape: white and not outlined.
func defaultStyle() canopy.Style {
	return canopy.Style{Fill: canopy.ColorWhite, Outline: canopy.ColorWhite}
}

// --- shape ---

type shapeWidget struct {
	geometry
	shape canopy.Shape
	style canopy.Style
}

func (s *shapeWidget) kind() Kind { return KindShape }

func (s *shapeWidget) clone() drawable {
	c := *s
	if s.shape.Points != nil {
		c.shape.Points = append([]canopy.Vec2(nil), s.shape.Points...)
	}
	return &c
}

func (s *shapeWidget) styleRef() *canopy.Style { return &s.style }

func (s *shapeWidget) draw(dst canopy.Target, p canopy.Paint) {
	p.Fill = s.style.Fill
	p.Outline = s.style.Outline
	p.OutlineThickness = s.style.OutlineThickness
	dst.DrawShape(s.shape, p)
}

// --- sprite ---

type spriteWidget struct {
	geometry
	region canopy.TextureRegion
}

func (s *spriteWidget) kind() Kind { return KindSprite }

func (s *spriteWidget) clone() drawable {
	c := *s
	return &c
}

func (s *spriteWidget) setRegion(r canopy.TextureRegion) { s.region = r }

func (s *spriteWidget) draw(dst canopy.Target, p canopy.Paint) {
	if s.region.Texture == nil {
		return
	}
	dst.DrawSprite(s.region, p)
}

// --- text ---

type textWidget struct {
	geometry
	run   canopy.TextRun
	style canopy.Style
}

func (t *textWidget) kind() Kind { return KindText }

func (t *textWidget) clone() drawable {
	c := *t
	return &c
}

func (t *textWidget) styleRef() *canopy.Style { return &t.style }
func (t *textWidget) runRef() *canopy.TextRun { return &t.run }

func (t *textWidget) draw(dst canopy.Target, p canopy.Paint) {
	p.Fill = t.style.Fill
	p.Outline = t.style.Outline
	p.OutlineThickness = t.style.OutlineThickness
	dst.DrawText(t.run, p)
}

// --- Widget ---

// Widget is a drawable object with value semantics. The zero Widget draws
// nothing.
type Widget struct {
	d drawable
}

// Rect returns a w by h rectangle with its top-left corner at the origin.
func Rect(w, h float64) Widget {
	return Widget{&shapeWidget{
		geometry: newGeometry(),
		shape:    canopy.Shape{Kind: canopy.ShapeRect, Size: canopy.V(w, h)},
		style:    defaultStyle(),
	}}
}

// Circle returns a circle of radius r whose bounding box starts at the
// origin.
func Circle(r float64) Widget {
	return Widget{&shapeWidget{
		geometry: newGeometry(),
		shape:    canopy.Shape{Kind: canopy.ShapeCircle, Radius: r},
		style:    defaultStyle(),
	}}
}

// Polygon returns a convex polygon through points. The slice is copied.
func Polygon(points []canopy.Vec2) Widget {
	return Widget{&shapeWidget{
		geometry: newGeometry(),
		shape:    canopy.Shape{Kind: canopy.ShapePolygon, Points: append([]canopy.Vec2(nil), points...)},
		style:    defaultStyle(),
	}}
}

// Sprite returns a widget drawing region.
func Sprite(region canopy.TextureRegion) Widget {
	return Widget{&spriteWidget{geometry: newGeometry(), region: region}}
}

// Text returns a widget drawing str with font at size. The font is
// borrowed and must outlive every draw.
func Text(str string, font *canopy.Typeface, size float64) Widget {
	return Widget{&textWidget{
		geometry: newGeometry(),
		run: canopy.TextRun{Content: str, Style: canopy.TextStyle{
			Font:          font,
			Size:          size,
			LetterSpacing: 1,
			LineSpacing:   1,
		}},
		style: defaultStyle(),
	}}
}

// Kind reports which drawable the widget holds.
func (w Widget) Kind() Kind {
	if w.d == nil {
		return KindNone
	}
	return w.d.kind()
}

// Clone returns a deep copy of w.
func (w Widget) Clone() Widget {
	if w.d == nil {
		return w
	}
	return Widget{w.d.clone()}
}

// With returns a copy of w with mods applied in order. w is unchanged.
func (w Widget) With(mods ...Modifier) Widget {
	c := w.Clone()
	if c.d == nil {
		return c
	}
	for _, m := range mods {
		m.apply(c.d)
	}
	return c
}

// Draw draws the widget into dst under the parent transform.
func (w Widget) Draw(dst canopy.Target, parent canopy.Transform) {
	w.draw(dst, parent, canopy.BlendNormal)
}

func (w Widget) draw(dst canopy.Target, parent canopy.Transform, blend canopy.BlendMode) {
	if w.d == nil {
		return
	}
	w.d.draw(dst, canopy.Paint{
		Transform: parent.Mul(w.d.geom().local()),
		Blend:     blend,
	})
}

// Item returns a canvas item that draws w under the inherited transform and
// blend mode. The item shares w's drawable, which is never mutated.
func (w Widget) Item() canopy.Item {
	return func(st canopy.State, dst canopy.Target) {
		w.draw(dst, st.Transform, st.Blend)
	}
}

// Position returns the widget's position.
func (w Widget) Position() canopy.Vec2 {
	if w.d == nil {
		return canopy.Vec2{}
	}
	return w.d.geom().position
}

// Scale returns the widget's scale factors.
func (w Widget) Scale() canopy.Vec2 {
	if w.d == nil {
		return canopy.Vec2{}
	}
	return w.d.geom().scale
}

// Rotation returns the widget's rotation in degrees.
func (w Widget) Rotation() float64 {
	if w.d == nil {
		return 0
	}
	return w.d.geom().rotation
}

func (w Widget) style() canopy.Style {
	if s, ok := w.d.(styled); ok {
		return *s.styleRef()
	}
	return canopy.Style{}
}

// Fill returns the fill color, or the zero Color for sprites.
func (w Widget) Fill() canopy.Color { return w.style().Fill }

// Outline returns the outline color, or the zero Color for sprites.
func (w Widget) Outline() canopy.Color { return w.style().Outline }

// OutlineThickness returns the outline thickness, or 0 for sprites.
func (w Widget) OutlineThickness() float64 { return w.style().OutlineThickness }

func (w Widget) run() canopy.TextRun {
	if t, ok := w.d.(typeset); ok {
		return *t.runRef()
	}
	return canopy.TextRun{}
}

// Content returns the text of a text widget and "" otherwise.
func (w Widget) Content() string { return w.run().Content }

// FontSize returns the character size of a text widget and 0 otherwise.
func (w Widget) FontSize() float64 { return w.run().Style.Size }

// FontStyle returns the style flags of a text widget.
func (w Widget) FontStyle() canopy.TextFlags { return w.run().Style.Flags }

// TextStyle returns the full text style of a text widget.
func (w Widget) TextStyle() canopy.TextStyle { return w.run().Style }

// Bounds returns the local-space bounding box of a shape widget before its
// geometry is applied. Other kinds report the zero Box.
func (w Widget) Bounds() canopy.Box {
	if s, ok := w.d.(*shapeWidget); ok {
		return s.shape.Bounds()
	}
	if s, ok := w.d.(*spriteWidget); ok {
		size := s.region.Size()
		return canopy.Box{Width: size.X, Height: size.Y}
	}
	return canopy.Box{}
}
