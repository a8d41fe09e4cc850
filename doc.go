// Package canopy is a declarative 2D scene description layer for [Ebitengine].
//
// A frame is an immutable tree of [Item] values. Primitives such as [Rect],
// [Circle] and [Text] draw one shape each; [Group] draws several; and
// [Item.With] applies [Modifier] values (transforms, colors, text style) to a
// copy of the inherited [State] before drawing. Nothing is retained between
// frames: the application rebuilds the tree from its model every frame, and
// time-varying values come from the anim package.
//
// # Quick start
//
//	scene := canopy.Group(
//		canopy.Rect(canopy.V(200, 100)).With(canopy.FillColor(canopy.ColorBlue)),
//		canopy.Text("Hello").With(canopy.Translate(canopy.V(20, 30))),
//	).With(canopy.RotateAround(angle, canopy.V(100, 50)))
//
//	screen := canopy.NewScreen(img)
//	canopy.Frame(scene, screen)
//
// # Modifier order
//
// [Compose](m1, m2) applies m1 and then m2. item.With(m1, m2) is the same as
// item.With(Compose(m1, m2)). Nesting reverses the order in which the state
// sees the modifiers: item.With(m1).With(m2) equals item.With(Compose(m2, m1)),
// so the modifier written closest to the item has the last word. Transform
// modifiers post-multiply the accumulated matrix, so the innermost transform
// is applied to geometry first.
//
// # Targets
//
// Items draw into a [Target]. This package provides [Screen] (an Ebitengine
// image) and [Recorder] (an in-memory command list used by tests and for
// statistics). The raster sub-package provides a software target for
// headless snapshots.
//
// # Sub-packages
//
//   - ease: easing functions
//   - anim: time-varying values and their combinators
//   - widget: clone-on-modify drawable objects
//   - raster: software rendering and PNG snapshots
//   - app: a fixed-timestep model/update/view loop
//
// [Ebitengine]: https://ebitengine.org
package canopy
