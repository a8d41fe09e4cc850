// Package app runs a canopy scene as an Ebitengine game using a
// model/update/view loop with a fixed timestep.
//
// Each step polls input, translates the resulting events into program
// messages, appends a Tick, and hands the queued messages to Update in FIFO
// order. Draw renders View(model) through a canopy.Screen.
package app

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/canopy"
)

// Program describes an application in terms of a model M and the messages
// Msg that change it.
type Program[M, Msg any] struct {
	// Init returns the starting model.
	Init func() M
	// Update applies one message and may return a follow-up command.
	Update func(M, Msg) (M, Command[Msg])
	// View describes the frame for a model.
	View func(M) canopy.Item
	// Translate maps an event to a message. Returning false drops the event.
	Translate func(Event) (Msg, bool)
}

// RunConfig holds window and loop settings.
type RunConfig struct {
	Title         string
	Width, Height int
	TPS           int
	ClearColor    canopy.Color
	Font          *canopy.Typeface // fallback font; nil uses canopy.DefaultTypeface
	ShowFPS       bool
	ScreenshotDir string
	Script        *Script // optional scripted input, see SetScript
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "canopy"
	}
	if c.Width <= 0 {
		c.Width = 1920
	}
	if c.Height <= 0 {
		c.Height = 1080
	}
	if c.TPS <= 0 {
		c.TPS = ebiten.DefaultTPS
	}
	return c
}

// App drives a Program. It implements ebiten.Game.
type App[M, Msg any] struct {
	prog   Program[M, Msg]
	cfg    RunConfig
	model  M
	queue  []Msg
	quit   bool
	inited bool
	steps  int

	screen *canopy.Screen
	input  input
	events []Event
	fps    fpsOverlay
	script *Script
}

// New returns an App for prog with its model set to prog.Init().
func New[M, Msg any](prog Program[M, Msg], cfg RunConfig) *App[M, Msg] {
	cfg = cfg.withDefaults()
	a := &App[M, Msg]{prog: prog, cfg: cfg, script: cfg.Script}
	if prog.Init != nil {
		a.model = prog.Init()
	}
	a.screen = canopy.NewScreen(nil)
	a.screen.ScreenshotDir = cfg.ScreenshotDir
	if cfg.Font != nil {
		a.screen.SetFallbackFont(cfg.Font)
	} else {
		a.screen.SetFallbackFont(canopy.DefaultTypeface())
	}
	return a
}

// Model returns the current model.
func (a *App[M, Msg]) Model() M {
	return a.model
}

// Config returns the effective configuration.
func (a *App[M, Msg]) Config() RunConfig {
	return a.cfg
}

// Quitting reports whether a Quit command has been handled.
func (a *App[M, Msg]) Quitting() bool {
	return a.quit
}

// Steps returns the number of fixed steps run so far.
func (a *App[M, Msg]) Steps() int {
	return a.steps
}

// Dispatch translates ev and queues the resulting message, if any.
func (a *App[M, Msg]) Dispatch(ev Event) {
	if a.quit || a.prog.Translate == nil {
		return
	}
	if msg, ok := a.prog.Translate(ev); ok {
		a.queue = append(a.queue, msg)
	}
}

// Send queues msg directly, bypassing Translate.
func (a *App[M, Msg]) Send(msg Msg) {
	if a.quit {
		return
	}
	a.queue = append(a.queue, msg)
}

// Flush hands queued messages to Update in FIFO order until the queue is
// empty or a command quits. Messages emitted while flushing are handled in
// the same call.
func (a *App[M, Msg]) Flush() {
	for len(a.queue) > 0 && !a.quit {
		msg := a.queue[0]
		var zero Msg
		a.queue[0] = zero
		a.queue = a.queue[1:]

		var cmd Command[Msg]
		a.model, cmd = a.prog.Update(a.model, msg)
		if cmd.quit {
			a.quit = true
			canopy.Logger().Debug("app quit requested", "step", a.steps)
			break
		}
		a.queue = append(a.queue, cmd.emit...)
	}
	if a.quit {
		a.queue = nil
	}
}

// SetScript attaches a script whose events are injected ahead of real input
// on every step. A nil script detaches.
func (a *App[M, Msg]) SetScript(s *Script) {
	a.script = s
}

// Step runs one fixed step with events already gathered: Init on the first
// step, then scripted events, then events, then a Tick of 1/TPS seconds,
// then Flush.
func (a *App[M, Msg]) Step(events ...Event) {
	if a.quit {
		return
	}
	if !a.inited {
		a.inited = true
		a.Dispatch(Init{})
	}
	if a.script != nil {
		for _, ev := range a.script.step(a.Screenshot) {
			a.Dispatch(ev)
		}
	}
	for _, ev := range events {
		a.Dispatch(ev)
	}
	dt := 1 / float64(a.cfg.TPS)
	a.Dispatch(Tick{Delta: dt})
	a.Flush()
	a.fps.update(dt)
	a.steps++
	if a.script != nil && a.script.quit && !a.quit {
		a.quit = true
		a.queue = nil
		canopy.Logger().Debug("app quit by script", "step", a.steps)
	}
}

// Screenshot queues a capture of the next drawn frame.
func (a *App[M, Msg]) Screenshot(label string) {
	a.screen.Screenshot(label)
}

// Update implements ebiten.Game.
func (a *App[M, Msg]) Update() error {
	a.events = a.input.poll(a.events[:0])
	a.Step(a.events...)
	clear(a.events)
	if a.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App[M, Msg]) Draw(screen *ebiten.Image) {
	if a.cfg.ClearColor.A > 0 {
		screen.Fill(a.cfg.ClearColor)
	}
	a.screen.Begin(screen)
	if a.prog.View != nil {
		canopy.Frame(a.prog.View(a.model), a.screen)
	}
	if a.cfg.ShowFPS {
		a.fps.draw(screen)
	}
	a.screen.End()
}

// Layout implements ebiten.Game. The logical screen keeps the configured
// size regardless of the window size.
func (a *App[M, Msg]) Layout(_, _ int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// Run opens a window and runs prog until the window closes or a command
// quits. Quitting is not an error.
func Run[M, Msg any](cfg RunConfig, prog Program[M, Msg]) error {
	a := New(prog, cfg)
	cfg = a.cfg

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	canopy.Logger().Info("app starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS)
	err := ebiten.RunGame(a)
	canopy.Logger().Info("app stopped", "steps", a.steps)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("app: failed to run game: %w", err)
	}
	return nil
}
