// Package demo is the scene shown by the canopy command: a row of
// alternating shapes, a column of circles and a greeting, all rotating
// around the screen center at a speed controlled from the keyboard.
package demo

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/anim"
	"github.com/phanxgames/canopy/app"
	"github.com/phanxgames/canopy/ease"
	"github.com/phanxgames/canopy/internal/config"
	"github.com/phanxgames/canopy/widget"
)

var (
	center     = canopy.V(960, 540)
	shapeColor = canopy.RGB8(200, 120, 140)
)

const (
	shapeSize  = 100.0 // circle diameter and square side
	rowSpacing = 150.0
	rowY       = 500.0
	colSpacing = 125.0
	colCount   = 3
	pulseScale = 1.15
	pulseTime  = 0.75 // seconds for one half of the pulse
	tintTime   = 2.0
)

// MsgKind identifies a demo message.
type MsgKind uint8

const (
	MsgTick  MsgKind = iota // advance by Delta seconds
	MsgLeft                 // spin counter-clockwise
	MsgRight                // spin clockwise
	MsgStop                 // stop spinning
	MsgQuit
)

// Msg is the demo's update message.
type Msg struct {
	Kind  MsgKind
	Delta float64
}

// Options tunes the scene.
type Options struct {
	Velocity float64   // degrees per second applied by left/right
	Items    int       // shapes in the row
	Ease     ease.Func // pulse and tint easing
}

// OptionsFromConfig converts the demo section of the configuration. An
// unknown ease name falls back to quad-in-out.
func OptionsFromConfig(c config.DemoConfig) Options {
	fn, ok := ease.Lookup(c.Ease)
	if !ok {
		canopy.Logger().Warn("demo: unknown ease, using quad-in-out", "ease", c.Ease)
		fn = ease.QuadInOut
	}
	return Options{Velocity: c.Velocity, Items: c.Items, Ease: fn}
}

// Model is the demo state. It is a value; Update returns a new one.
type Model struct {
	Angle    float64 // degrees, in [0, 360)
	Velocity float64 // degrees per second
	Elapsed  float64 // seconds since start

	opts  Options
	pulse anim.Animation[float64]
	tint  anim.Animation[canopy.Color]
}

// New returns the initial model.
func New(opts Options) Model {
	if opts.Ease == nil {
		opts.Ease = ease.Linear
	}
	grow := anim.Gradual(1.0, pulseScale, pulseTime, opts.Ease)
	fade := anim.GradualFunc(canopy.ColorRed, canopy.ColorYellow, tintTime, opts.Ease,
		func(r float64, a, b canopy.Color) canopy.Color { return a.Lerp(b, r) })
	return Model{
		opts:  opts,
		pulse: anim.PingPong(grow, 2),
		tint:  anim.PingPong(fade, 2),
	}
}

// Options returns the options the model was built with.
func (m Model) Options() Options {
	return m.opts
}

// Pulse returns the current scale of the row shapes.
func (m Model) Pulse() float64 {
	return anim.Wrapped(m.pulse, m.Elapsed, 0)
}

// Tint returns the current color of the column circles.
func (m Model) Tint() canopy.Color {
	return anim.Wrapped(m.tint, m.Elapsed, 0)
}

// Update applies msg.
func Update(m Model, msg Msg) (Model, app.Command[Msg]) {
	switch msg.Kind {
	case MsgTick:
		m.Elapsed += msg.Delta
		m.Angle = math.Mod(m.Angle+m.Velocity*msg.Delta, 360)
		if m.Angle < 0 {
			m.Angle += 360
		}
	case MsgLeft:
		m.Velocity = -m.opts.Velocity
	case MsgRight:
		m.Velocity = m.opts.Velocity
	case MsgStop:
		m.Velocity = 0
	case MsgQuit:
		return m, app.Quit[Msg]()
	}
	return m, app.None[Msg]()
}

// Translate maps window events to demo messages.
func Translate(ev app.Event) (Msg, bool) {
	switch e := ev.(type) {
	case app.Tick:
		return Msg{Kind: MsgTick, Delta: e.Delta}, true
	case app.KeyPressed:
		switch e.Key {
		case ebiten.KeyEscape:
			return Msg{Kind: MsgQuit}, true
		case ebiten.KeyArrowLeft:
			return Msg{Kind: MsgLeft}, true
		case ebiten.KeyArrowRight:
			return Msg{Kind: MsgRight}, true
		case ebiten.KeySpace:
			return Msg{Kind: MsgStop}, true
		}
	}
	return Msg{}, false
}

// View describes the frame for m.
func View(m Model) canopy.Item {
	s := m.Pulse()
	mid := canopy.V(shapeSize/2, shapeSize/2)
	row := canopy.Generate(m.opts.Items, func(i int) canopy.Item {
		shape := canopy.Circle(shapeSize / 2)
		if i%2 == 1 {
			shape = canopy.Rect(canopy.V(shapeSize, shapeSize))
		}
		return shape.With(
			canopy.Translate(canopy.V(rowSpacing*float64(i), rowY)),
			canopy.ScaleAround(canopy.V(s, s), mid),
			canopy.FillColor(shapeColor),
		)
	})
	column := canopy.Repeat(canopy.Distribute(canopy.V(0, colSpacing)), canopy.Circle(shapeSize/2), colCount).
		With(canopy.FillColor(m.Tint()))
	hello := canopy.Text("Hello").With(
		canopy.FontSize(48),
		canopy.FillColor(canopy.ColorWhite),
		canopy.Translate(canopy.V(rowSpacing, rowY)),
	)
	label := widget.Text(fmt.Sprintf("velocity %.1f", m.Velocity), nil, 24).
		With(widget.Position(canopy.V(16, 16)), widget.Fill(canopy.ColorWhite))

	return canopy.Group(
		canopy.Group(row, column, hello).With(canopy.RotateAround(m.Angle, center)),
		label.Item(),
	)
}

// Program returns the demo as an app program.
func Program(opts Options) app.Program[Model, Msg] {
	return app.Program[Model, Msg]{
		Init:      func() Model { return New(opts) },
		Update:    Update,
		View:      View,
		Translate: Translate,
	}
}

// Advance runs seconds of simulated time in fixed steps of 1/tps, as the
// window loop would.
func Advance(m Model, seconds float64, tps int) Model {
	if tps <= 0 {
		tps = config.DefaultTPS
	}
	dt := 1 / float64(tps)
	steps := int(math.Round(seconds * float64(tps)))
	for range steps {
		m, _ = Update(m, Msg{Kind: MsgTick, Delta: dt})
	}
	return m
}
