package canopy

import "math"

// Target is the rendering context a canvas item draws into. Every primitive
// issues exactly one call per invocation. Targets report no errors; a target
// that cannot honor a request (e.g. text without a font) skips it.
//
// Slices passed to a Target (Shape.Points, segments) may be shared between
// frames. Targets must not modify them, and must copy them to keep them past
// the call.
type Target interface {
	// DrawShape fills and outlines a convex shape.
	DrawShape(shape Shape, p Paint)
	// DrawText draws a run of text.
	DrawText(run TextRun, p Paint)
	// DrawSprite draws a textured quad covering the region's size.
	DrawSprite(region TextureRegion, p Paint)
	// DrawLines draws raw line segments in p.Outline.
	DrawLines(segments []Segment, p Paint)
}

// ShapeKind distinguishes the concrete geometry carried by a Shape.
type ShapeKind uint8

const (
	ShapeRect     ShapeKind = iota // axis-aligned rectangle at the origin, Size wide/high
	ShapeCircle                    // circle of Radius whose bounding box starts at the origin
	ShapePolygon                   // convex polygon through Points
	ShapeTriangle                  // filled triangle through Points, never outlined
)

// String returns the lowercase name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapePolygon:
		return "polygon"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Shape is the concrete geometry synthesized by a primitive for one draw.
type Shape struct {
	Kind   ShapeKind
	Size   Vec2    // ShapeRect
	Radius float64 // ShapeCircle
	Points []Vec2  // ShapePolygon, ShapeTriangle
}

// circleSegments is the tessellation used when a target needs polygon points
// for a circle.
const circleSegments = 48

// Outline returns the shape's boundary in local coordinates. Circles are
// tessellated; the circle's bounding box starts at the origin so its center
// is (Radius, Radius).
func (s Shape) Outline() []Vec2 {
	switch s.Kind {
	case ShapeRect:
		return []Vec2{{0, 0}, {s.Size.X, 0}, {s.Size.X, s.Size.Y}, {0, s.Size.Y}}
	case ShapeCircle:
		pts := make([]Vec2, circleSegments)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / circleSegments
			sin, cos := math.Sincos(a)
			pts[i] = Vec2{s.Radius + s.Radius*cos, s.Radius + s.Radius*sin}
		}
		return pts
	default:
		return s.Points
	}
}

// Bounds returns the local-space bounding box of the shape.
func (s Shape) Bounds() Box {
	switch s.Kind {
	case ShapeRect:
		return Box{0, 0, s.Size.X, s.Size.Y}
	case ShapeCircle:
		return Box{0, 0, 2 * s.Radius, 2 * s.Radius}
	}
	if len(s.Points) == 0 {
		return Box{}
	}
	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.Points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Box{minX, minY, maxX - minX, maxY - minY}
}

// TextRun is a string plus the text style it is drawn with.
type TextRun struct {
	Content string
	Style   TextStyle
}

// Segment is a line from A to B in local coordinates.
type Segment struct {
	A, B Vec2
}

// Paint carries the resolved style, transform and blend mode for one draw.
type Paint struct {
	Fill             Color
	Outline          Color
	OutlineThickness float64
	Transform        Transform
	Blend            BlendMode
}

// paintOf resolves the paint for a draw from the current state.
func paintOf(st State) Paint {
	return Paint{
		Fill:             st.Style.Fill,
		Outline:          st.Style.Outline,
		OutlineThickness: st.Style.OutlineThickness,
		Transform:        st.Transform,
		Blend:            st.Blend,
	}
}
