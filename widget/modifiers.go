package widget

import "github.com/phanxgames/canopy"

// Modifier changes properties of a widget. Modifiers only ever run on the
// private clone made by [Widget.With], so they cannot be applied to a
// widget in place. The zero Modifier does nothing.
type Modifier struct {
	fn func(d drawable)
}

func (m Modifier) apply(d drawable) {
	if m.fn != nil {
		m.fn(d)
	}
}

// Then returns a modifier that applies m and then next.
func (m Modifier) Then(next Modifier) Modifier {
	return All(m, next)
}

// All returns a modifier that applies mods in order.
func All(mods ...Modifier) Modifier {
	mods = append([]Modifier(nil), mods...)
	return Modifier{func(d drawable) {
		for _, m := range mods {
			m.apply(d)
		}
	}}
}

// --- geometry ---

// Geometry updates position, scale and rotation in one step. Pass [Keep]
// for the properties to leave alone.
func Geometry(position, scale Applier[canopy.Vec2], rotation Applier[float64]) Modifier {
	return Modifier{func(d drawable) {
		g := d.geom()
		position.apply(&g.position)
		scale.apply(&g.scale)
		rotation.apply(&g.rotation)
	}}
}

// Position moves the widget to p.
func Position(p canopy.Vec2) Modifier {
	return Geometry(Set(p), Keep[canopy.Vec2](), Keep[float64]())
}

// Move offsets the widget's position by delta.
func Move(delta canopy.Vec2) Modifier {
	return Geometry(Modify(func(p canopy.Vec2) canopy.Vec2 { return p.Add(delta) }),
		Keep[canopy.Vec2](), Keep[float64]())
}

// ScaleBy multiplies the widget's scale component-wise by f.
func ScaleBy(f canopy.Vec2) Modifier {
	return Geometry(Keep[canopy.Vec2](),
		Modify(func(s canopy.Vec2) canopy.Vec2 { return canopy.V(s.X*f.X, s.Y*f.Y) }),
		Keep[float64]())
}

// Rotation sets the rotation to deg degrees.
func Rotation(deg float64) Modifier {
	return Geometry(Keep[canopy.Vec2](), Keep[canopy.Vec2](), Set(deg))
}

// --- style ---

// Style updates fill, outline and outline thickness in one step. Sprites
// have no style and ignore it.
func Style(fill, outline Applier[canopy.Color], thickness Applier[float64]) Modifier {
	return Modifier{func(d drawable) {
		s, ok := d.(styled)
		if !ok {
			return
		}
		st := s.styleRef()
		fill.apply(&st.Fill)
		outline.apply(&st.Outline)
		thickness.apply(&st.OutlineThickness)
	}}
}

// Fill sets the fill color.
func Fill(c canopy.Color) Modifier {
	return Style(Set(c), Keep[canopy.Color](), Keep[float64]())
}

// Outline sets the outline color.
func Outline(c canopy.Color) Modifier {
	return Style(Keep[canopy.Color](), Set(c), Keep[float64]())
}

// OutlineThickness sets the outline thickness.
func OutlineThickness(v float64) Modifier {
	return Style(Keep[canopy.Color](), Keep[canopy.Color](), Set(v))
}

// --- texture ---

// Texture replaces the region drawn by a sprite widget.
func Texture(region canopy.TextureRegion) Modifier {
	return Modifier{func(d drawable) {
		if t, ok := d.(textured); ok {
			t.setRegion(region)
		}
	}}
}

// --- text ---

func textStyle(fn func(run *canopy.TextRun)) Modifier {
	return Modifier{func(d drawable) {
		if t, ok := d.(typeset); ok {
			fn(t.runRef())
		}
	}}
}

// Typography updates the text properties of a text widget in one step.
func Typography(size, letterSpacing, lineSpacing Applier[float64], flags Applier[canopy.TextFlags]) Modifier {
	return textStyle(func(run *canopy.TextRun) {
		size.apply(&run.Style.Size)
		letterSpacing.apply(&run.Style.LetterSpacing)
		lineSpacing.apply(&run.Style.LineSpacing)
		flags.apply(&run.Style.Flags)
	})
}

// Content sets the string drawn by a text widget.
func Content(a Applier[string]) Modifier {
	return textStyle(func(run *canopy.TextRun) { a.apply(&run.Content) })
}

// Font sets the typeface of a text widget.
func Font(f *canopy.Typeface) Modifier {
	return textStyle(func(run *canopy.TextRun) { run.Style.Font = f })
}

// FontSize sets the character size.
func FontSize(size float64) Modifier {
	return Typography(Set(size), nil, nil, nil)
}

// LetterSpacing sets the letter spacing multiplier.
func LetterSpacing(v float64) Modifier {
	return Typography(nil, Set(v), nil, nil)
}

// LineSpacing sets the line spacing multiplier.
func LineSpacing(v float64) Modifier {
	return Typography(nil, nil, Set(v), nil)
}

func addFlags(f canopy.TextFlags) Modifier {
	return Typography(nil, nil, nil, Modify(func(v canopy.TextFlags) canopy.TextFlags { return v | f }))
}

// Bold adds the bold flag.
func Bold() Modifier { return addFlags(canopy.TextBold) }

// Italic adds the italic flag.
func Italic() Modifier { return addFlags(canopy.TextItalic) }

// Underlined adds the underline flag.
func Underlined() Modifier { return addFlags(canopy.TextUnderlined) }

// StrikeThrough adds the strike-through flag.
func StrikeThrough() Modifier { return addFlags(canopy.TextStrikeThrough) }
