package canopy

// Rect draws a size.X by size.Y rectangle with its top-left corner at the
// local origin.
func Rect(size Vec2) Item {
	shape := Shape{Kind: ShapeRect, Size: size}
	return func(st State, dst Target) {
		dst.DrawShape(shape, paintOf(st))
	}
}

// Circle draws a circle of the given radius whose bounding box starts at the
// local origin, so its center is (radius, radius).
func Circle(radius float64) Item {
	shape := Shape{Kind: ShapeCircle, Radius: radius}
	return func(st State, dst Target) {
		dst.DrawShape(shape, paintOf(st))
	}
}

// Polygon draws the convex polygon through points. The points are copied;
// the caller may reuse the slice.
func Polygon(points []Vec2) Item {
	shape := Shape{Kind: ShapePolygon, Points: append([]Vec2(nil), points...)}
	return func(st State, dst Target) {
		dst.DrawShape(shape, paintOf(st))
	}
}

// Triangle draws a filled triangle. Triangles are never outlined.
func Triangle(a, b, c Vec2) Item {
	shape := Shape{Kind: ShapeTriangle, Points: []Vec2{a, b, c}}
	return func(st State, dst Target) {
		p := paintOf(st)
		p.OutlineThickness = 0
		dst.DrawShape(shape, p)
	}
}

// Text draws str in the inherited text style with the fill color. The first
// line's top edge sits at the local origin.
func Text(str string) Item {
	return func(st State, dst Target) {
		dst.DrawText(TextRun{Content: str, Style: st.Text}, paintOf(st))
	}
}

// Sprite draws region at its natural size with its top-left corner at the
// local origin. Fill and outline are not applied to sprites; only the
// transform and blend mode are.
func Sprite(region TextureRegion) Item {
	return func(st State, dst Target) {
		dst.DrawSprite(region, paintOf(st))
	}
}

// Grid draws a vertical line every spacing.X and a horizontal line every
// spacing.Y, starting at the local origin and stopping short of size, in the
// outline color. All lines are submitted in a single call.
func Grid(size, spacing Vec2) Item {
	segs := gridSegments(size, spacing)
	return func(st State, dst Target) {
		dst.DrawLines(segs, paintOf(st))
	}
}

func gridSegments(size, spacing Vec2) []Segment {
	var segs []Segment
	if spacing.X > 0 {
		for x := 0.0; x < size.X; x += spacing.X {
			segs = append(segs, Segment{Vec2{x, 0}, Vec2{x, size.Y}})
		}
	}
	if spacing.Y > 0 {
		for y := 0.0; y < size.Y; y += spacing.Y {
			segs = append(segs, Segment{Vec2{0, y}, Vec2{size.X, y}})
		}
	}
	return segs
}
