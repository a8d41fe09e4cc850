package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseButtons = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// input turns Ebitengine's polled state into edge events.
type input struct {
	keys   []ebiten.Key
	cx, cy int
	seen   bool // cursor position recorded at least once
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// poll appends this step's events to dst: key presses, key releases, cursor
// motion, button presses, button releases, then the wheel.
func (in *input) poll(dst []Event) []Event {
	mods := readModifiers()

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		dst = append(dst, KeyPressed{Key: k, Mods: mods})
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		dst = append(dst, KeyReleased{Key: k, Mods: mods})
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if !in.seen || cx != in.cx || cy != in.cy {
		in.cx, in.cy, in.seen = cx, cy, true
		dst = append(dst, MouseMoved{X: x, Y: y})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			dst = append(dst, MouseButtonPressed{Button: b, X: x, Y: y})
		}
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b) {
			dst = append(dst, MouseButtonReleased{Button: b, X: x, Y: y})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		dst = append(dst, MouseWheel{DX: dx, DY: dy})
	}
	return dst
}
