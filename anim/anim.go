// Package anim describes values that vary over time.
//
// An [Animation] is an immutable function of time with a finite duration.
// Base animations ([Constant], [Gradual]) are combined with [Sequence],
// [Repeat], [Reverse], [PingPong], [Slice] and [Rescale] into new
// animations; inputs are never modified and may be shared freely.
//
// Time is measured in seconds from the animation's own origin. Evaluating
// outside [0, Duration()] is allowed and follows each combinator's rules.
//
// Operations that divide by a duration require it to be positive. A zero
// duration produces NaN or Inf values rather than an error.
package anim

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/phanxgames/canopy/ease"
)

// Animation is a time-varying value of type T.
type Animation[T any] interface {
	// Duration is the length of the animation in seconds, never negative.
	Duration() float64
	// Value returns the value at time t.
	Value(t float64) T
	// StartValue is the value the animation begins with.
	StartValue() T
	// EndValue is the value the animation finishes with.
	EndValue() T
}

// Number is the set of types that [Lerp] can interpolate.
type Number interface {
	constraints.Integer | constraints.Float
}

// LerpFunc interpolates between a and b by ratio r.
type LerpFunc[T any] func(r float64, a, b T) T

// Lerp returns (1-r)*a + r*b. Integer results are truncated toward zero.
func Lerp[T Number](r float64, a, b T) T {
	return T((1-r)*float64(a) + r*float64(b))
}

// --- constant ---

type constant[T any] struct {
	value    T
	duration float64
}

// Constant returns an animation that holds value for duration seconds.
func Constant[T any](value T, duration float64) Animation[T] {
	return constant[T]{value: value, duration: duration}
}

func (c constant[T]) Duration() float64 { return c.duration }
func (c constant[T]) Value(float64) T   { return c.value }
func (c constant[T]) StartValue() T     { return c.value }
func (c constant[T]) EndValue() T       { return c.value }

// --- gradual ---

type gradual[T any] struct {
	start, end T
	duration   float64
	ease       ease.Func
	lerp       LerpFunc[T]
}

// Gradual returns an animation moving from start to end over duration,
// shaped by fn. A nil fn is linear.
func Gradual[T Number](start, end T, duration float64, fn ease.Func) Animation[T] {
	return GradualFunc(start, end, duration, fn, Lerp[T])
}

// GradualFunc is [Gradual] for any type, using lerp to interpolate.
func GradualFunc[T any](start, end T, duration float64, fn ease.Func, lerp LerpFunc[T]) Animation[T] {
	if fn == nil {
		fn = ease.Linear
	}
	return gradual[T]{start: start, end: end, duration: duration, ease: fn, lerp: lerp}
}

func (g gradual[T]) Duration() float64 { return g.duration }

func (g gradual[T]) Value(t float64) T {
	return g.lerp(g.ease(t/g.duration), g.start, g.end)
}

func (g gradual[T]) StartValue() T { return g.start }
func (g gradual[T]) EndValue() T   { return g.end }

// --- sequence ---

type sequence[T any] struct {
	items    []Animation[T]
	duration float64
}

// Sequence plays the given animations one after another. Its duration is
// the sum of theirs. At a boundary between two children the earlier child
// is evaluated at its end. Empty input is a caller error.
func Sequence[T any](items ...Animation[T]) Animation[T] {
	if len(items) == 0 {
		panic("anim: Sequence requires at least one animation")
	}
	s := sequence[T]{items: make([]Animation[T], len(items))}
	copy(s.items, items)
	for _, a := range s.items {
		s.duration += a.Duration()
	}
	return s
}

func (s sequence[T]) Duration() float64 { return s.duration }

func (s sequence[T]) Value(t float64) T {
	if t < 0 {
		return s.StartValue()
	}
	if t >= s.duration {
		return s.EndValue()
	}
	for _, a := range s.items {
		if t > a.Duration() {
			t -= a.Duration()
			continue
		}
		return a.Value(t)
	}
	return s.EndValue()
}

func (s sequence[T]) StartValue() T { return s.items[0].StartValue() }
func (s sequence[T]) EndValue() T   { return s.items[len(s.items)-1].EndValue() }

// --- repeat ---

type repeat[T any] struct {
	inner      Animation[T]
	count      float64
	inflection float64
}

// Repeat plays inner count times in a row. A fractional count stops part
// way through the last cycle.
func Repeat[T any](inner Animation[T], count float64) Animation[T] {
	return RepeatFrom(inner, count, 0)
}

// RepeatFrom plays inner once and then loops the part from inflection to
// its end, for a total of count times inner's duration.
func RepeatFrom[T any](inner Animation[T], count, inflection float64) Animation[T] {
	return repeat[T]{inner: inner, count: count, inflection: inflection}
}

func (r repeat[T]) Duration() float64 { return r.inner.Duration() * r.count }

func (r repeat[T]) Value(t float64) T {
	return Wrapped(r.inner, t, r.inflection)
}

func (r repeat[T]) StartValue() T { return r.inner.StartValue() }
func (r repeat[T]) EndValue() T   { return r.Value(r.Duration()) }

// --- reverse ---

type reverse[T any] struct {
	inner Animation[T]
}

// Reverse plays inner backwards.
func Reverse[T any](inner Animation[T]) Animation[T] {
	return reverse[T]{inner: inner}
}

func (r reverse[T]) Duration() float64 { return r.inner.Duration() }
func (r reverse[T]) Value(t float64) T { return r.inner.Value(r.inner.Duration() - t) }
func (r reverse[T]) StartValue() T     { return r.inner.EndValue() }
func (r reverse[T]) EndValue() T       { return r.inner.StartValue() }

// --- ping pong ---

type pingPong[T any] struct {
	inner Animation[T]
	count float64
}

// PingPong plays inner forwards and backwards alternately, count times in
// total. An even count ends where inner starts.
func PingPong[T any](inner Animation[T], count float64) Animation[T] {
	return pingPong[T]{inner: inner, count: count}
}

// PingPongFrom is PingPong with an inflection point, matching RepeatFrom's
// signature. Both passes always cover the whole of inner, so the inflection
// point is ignored.
func PingPongFrom[T any](inner Animation[T], count, _ float64) Animation[T] {
	return PingPong(inner, count)
}

func (p pingPong[T]) Duration() float64 { return p.inner.Duration() * p.count }

func (p pingPong[T]) Value(t float64) T {
	d := p.inner.Duration()
	local := math.Mod(t, d)
	if int(math.Floor(t/d))%2 == 0 {
		return p.inner.Value(local)
	}
	return p.inner.Value(d - local)
}

func (p pingPong[T]) StartValue() T { return p.inner.StartValue() }
func (p pingPong[T]) EndValue() T   { return p.Value(p.Duration()) }

// --- slice ---

type slice[T any] struct {
	inner      Animation[T]
	start, end float64
}

// Slice returns the part of inner between start and end. Times past the
// slice, or past inner's own end, hold the last value.
func Slice[T any](inner Animation[T], start, end float64) Animation[T] {
	return slice[T]{inner: inner, start: start, end: end}
}

func (s slice[T]) Duration() float64 { return s.end - s.start }

func (s slice[T]) Value(t float64) T {
	return s.inner.Value(min(s.start+t, s.inner.Duration(), s.end))
}

func (s slice[T]) StartValue() T { return s.Value(0) }
func (s slice[T]) EndValue() T   { return s.Value(s.Duration()) }

// --- rescale ---

type rescale[T any] struct {
	inner    Animation[T]
	duration float64
}

// Rescale stretches or compresses inner to last duration seconds.
func Rescale[T any](inner Animation[T], duration float64) Animation[T] {
	return rescale[T]{inner: inner, duration: duration}
}

func (r rescale[T]) Duration() float64 { return r.duration }

func (r rescale[T]) Value(t float64) T {
	return r.inner.Value(t * r.inner.Duration() / r.duration)
}

func (r rescale[T]) StartValue() T { return r.Value(0) }
func (r rescale[T]) EndValue() T   { return r.Value(r.duration) }

// --- mapped ---

type mapped[T, U any] struct {
	inner Animation[T]
	fn    func(T) U
}

// Map returns an animation with the same timing as a whose values are
// passed through fn.
func Map[T, U any](a Animation[T], fn func(T) U) Animation[U] {
	return mapped[T, U]{inner: a, fn: fn}
}

func (m mapped[T, U]) Duration() float64 { return m.inner.Duration() }
func (m mapped[T, U]) Value(t float64) U { return m.fn(m.inner.Value(t)) }
func (m mapped[T, U]) StartValue() U     { return m.fn(m.inner.StartValue()) }
func (m mapped[T, U]) EndValue() U       { return m.fn(m.inner.EndValue()) }

// --- helpers ---

// Wrap folds t into [0, d]. Times up to d are returned unchanged; later
// times loop over [inflection, d).
func Wrap(t, d, inflection float64) float64 {
	if t > d {
		return inflection + math.Mod(t-inflection, d-inflection)
	}
	return t
}

// Wrapped evaluates a at t folded into its duration by [Wrap].
func Wrapped[T any](a Animation[T], t, inflection float64) T {
	return a.Value(Wrap(t, a.Duration(), inflection))
}

// DurationRatio returns t as a fraction of a's duration.
func DurationRatio[T any](a Animation[T], t float64) float64 {
	return t / a.Duration()
}
