package canopy

// Style holds the fill and outline parameters inherited by shapes.
type Style struct {
	Fill             Color
	Outline          Color
	OutlineThickness float64
}

// TextStyle holds the parameters inherited by text primitives.
type TextStyle struct {
	Font          *Typeface // borrowed; nil uses the target's fallback, if any
	Size          float64
	LetterSpacing float64 // multiplier on glyph advance
	LineSpacing   float64 // multiplier on line height
	Flags         TextFlags
}

// State is the full set of drawing parameters visible to a canvas item at the
// point it executes. It is a plain value: every modified item works on its own
// copy, so siblings never observe each other's changes.
type State struct {
	Style     Style
	Text      TextStyle
	Transform Transform
	Blend     BlendMode
}

// Default style values.
const (
	DefaultFontSize         = 16
	DefaultOutlineThickness = 1
)

// DefaultState returns the state every frame starts from.
func DefaultState() State {
	return State{
		Style: Style{
			Fill:             ColorBlack,
			Outline:          ColorWhite,
			OutlineThickness: DefaultOutlineThickness,
		},
		Text: TextStyle{
			Size:          DefaultFontSize,
			LetterSpacing: 1,
			LineSpacing:   1,
		},
		Transform: Identity,
		Blend:     BlendNormal,
	}
}
