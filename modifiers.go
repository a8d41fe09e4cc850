package canopy

// --- Transform modifiers ---
//
// Transform modifiers post-multiply the accumulated transform, so the
// geometry drawn underneath sees the most recently applied operation first.

// Translate moves the local origin by v.
func Translate(v Vec2) Modifier {
	return func(st *State) {
		st.Transform = st.Transform.Mul(TranslateMatrix(v))
	}
}

// Scale scales local space by v around the local origin.
func Scale(v Vec2) Modifier {
	return func(st *State) {
		st.Transform = st.Transform.Mul(ScaleMatrix(v))
	}
}

// ScaleAround scales local space by v around pivot.
func ScaleAround(v, pivot Vec2) Modifier {
	return Compose(Translate(pivot), Scale(v), Translate(pivot.Neg()))
}

// Rotate rotates local space by deg degrees (clockwise on screen) around the
// local origin.
func Rotate(deg float64) Modifier {
	return func(st *State) {
		st.Transform = st.Transform.Mul(RotateMatrix(deg))
	}
}

// RotateAround rotates local space by deg degrees around pivot.
func RotateAround(deg float64, pivot Vec2) Modifier {
	return Compose(Translate(pivot), Rotate(deg), Translate(pivot.Neg()))
}

// Transformed post-multiplies an arbitrary matrix.
func Transformed(m Transform) Modifier {
	return func(st *State) {
		st.Transform = st.Transform.Mul(m)
	}
}

// --- Style modifiers ---

// FillColor sets the shape and text fill color.
func FillColor(c Color) Modifier {
	return func(st *State) { st.Style.Fill = c }
}

// OutlineColor sets the outline color, also used by Grid lines.
func OutlineColor(c Color) Modifier {
	return func(st *State) { st.Style.Outline = c }
}

// OutlineThickness sets the outline width in local units. Zero disables outlines.
func OutlineThickness(v float64) Modifier {
	return func(st *State) { st.Style.OutlineThickness = v }
}

// Blend sets the blend mode.
func Blend(mode BlendMode) Modifier {
	return func(st *State) { st.Blend = mode }
}

// --- Text modifiers ---

// Font sets the font. The font is borrowed; it must outlive every draw that uses it.
func Font(f *Typeface) Modifier {
	return func(st *State) { st.Text.Font = f }
}

// FontSize sets the text size in pixels.
func FontSize(n float64) Modifier {
	return func(st *State) { st.Text.Size = n }
}

// LetterSpacing sets the glyph advance multiplier.
func LetterSpacing(v float64) Modifier {
	return func(st *State) { st.Text.LetterSpacing = v }
}

// LineSpacing sets the line height multiplier.
func LineSpacing(v float64) Modifier {
	return func(st *State) { st.Text.LineSpacing = v }
}

// TextStyleFlags replaces the text style flags.
func TextStyleFlags(flags TextFlags) Modifier {
	return func(st *State) { st.Text.Flags = flags }
}

// Bold adds TextBold to the text flags.
func Bold() Modifier {
	return func(st *State) { st.Text.Flags |= TextBold }
}

// Italic adds TextItalic to the text flags.
func Italic() Modifier {
	return func(st *State) { st.Text.Flags |= TextItalic }
}

// Underlined adds TextUnderlined to the text flags.
func Underlined() Modifier {
	return func(st *State) { st.Text.Flags |= TextUnderlined }
}

// StrikeThrough adds TextStrikeThrough to the text flags.
func StrikeThrough() Modifier {
	return func(st *State) { st.Text.Flags |= TextStrikeThrough }
}
