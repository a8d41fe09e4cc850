package app

import "github.com/hajimehoshi/ebiten/v2"

// Event is a window or timer occurrence delivered to a Program's Translate
// function. The set of events is closed; switch on the concrete type.
type Event interface {
	isEvent()
}

// Init is dispatched once, before the first Tick.
type Init struct{}

// Tick advances the program by one fixed step of Delta seconds.
type Tick struct {
	Delta float64
}

// KeyPressed reports a key that went down this step.
type KeyPressed struct {
	Key  ebiten.Key
	Mods KeyModifiers
}

// KeyReleased reports a key that went up this step.
type KeyReleased struct {
	Key  ebiten.Key
	Mods KeyModifiers
}

// MouseMoved reports a new cursor position in logical screen pixels.
type MouseMoved struct {
	X, Y float64
}

// MouseButtonPressed reports a button that went down at (X, Y).
type MouseButtonPressed struct {
	Button ebiten.MouseButton
	X, Y   float64
}

// MouseButtonReleased reports a button that went up at (X, Y).
type MouseButtonReleased struct {
	Button ebiten.MouseButton
	X, Y   float64
}

// MouseWheel reports scroll offsets; positive DY scrolls up.
type MouseWheel struct {
	DX, DY float64
}

func (Init) isEvent()                {}
func (Tick) isEvent()                {}
func (KeyPressed) isEvent()          {}
func (KeyReleased) isEvent()         {}
func (MouseMoved) isEvent()          {}
func (MouseButtonPressed) isEvent()  {}
func (MouseButtonReleased) isEvent() {}
func (MouseWheel) isEvent()          {}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether all modifiers in m are set.
func (k KeyModifiers) Has(m KeyModifiers) bool {
	return k&m == m
}
