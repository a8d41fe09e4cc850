// Package ease provides easing functions for shaping interpolation.
//
// A [Func] maps normalized progress in [0, 1] to an eased ratio with
// f(0) = 0 and f(1) = 1. Overshooting families (back, elastic) may leave
// [0, 1] in between.
//
// Each family comes in four directions: In accelerates from rest, Out
// decelerates to rest, InOut runs In over the first half and Out over the
// second, OutIn the reverse.
package ease

import "math"

// Func is an easing function over normalized progress.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// None is an alias for Linear.
var None Func = Linear

// Out derives the decelerating form of an accelerating function:
// Out(in)(t) = 1 - in(1 - t).
func Out(in Func) Func {
	return func(t float64) float64 { return 1 - in(1-t) }
}

// InOut runs in over the first half of the timeline and out over the second,
// each scaled to half the output range.
func InOut(in, out Func) Func {
	return func(t float64) float64 {
		if t < 0.5 {
			return 0.5 * in(2*t)
		}
		return 0.5*out(2*t-1) + 0.5
	}
}

// OutIn runs out over the first half and in over the second.
func OutIn(in, out Func) Func {
	return InOut(out, in)
}

// Reverse plays f backwards in time: Reverse(f)(t) = f(1 - t). The result
// runs from 1 to 0.
func Reverse(f Func) Func {
	return func(t float64) float64 { return f(1 - t) }
}

// --- quad ---

// QuadIn accelerates and QuadOut decelerates along t².
func QuadIn(t float64) float64  { return t * t }
func QuadOut(t float64) float64 { return -t * (t - 2) }

// QuadInOut and QuadOutIn join QuadIn and QuadOut at the midpoint.
var (
	QuadInOut = InOut(QuadIn, QuadOut)
	QuadOutIn = OutIn(QuadIn, QuadOut)
)

// --- cubic ---

// CubicIn accelerates and CubicOut decelerates along t³.
func CubicIn(t float64) float64 { return t * t * t }
func CubicOut(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// CubicInOut and CubicOutIn join CubicIn and CubicOut at the midpoint.
var (
	CubicInOut = InOut(CubicIn, CubicOut)
	CubicOutIn = OutIn(CubicIn, CubicOut)
)

// --- quart ---

// QuartIn accelerates and QuartOut decelerates along t⁴.
func QuartIn(t float64) float64 { return t * t * t * t }
func QuartOut(t float64) float64 {
	u := t - 1
	return -(u*u*u*u - 1)
}

// QuartInOut and QuartOutIn join QuartIn and QuartOut at the midpoint.
var (
	QuartInOut = InOut(QuartIn, QuartOut)
	QuartOutIn = OutIn(QuartIn, QuartOut)
)

// --- quint ---

// QuintIn accelerates and QuintOut decelerates along t⁵.
func QuintIn(t float64) float64 { return t * t * t * t * t }
func QuintOut(t float64) float64 {
	u := t - 1
	return u*u*u*u*u + 1
}

// QuintInOut and QuintOutIn join QuintIn and QuintOut at the midpoint.
var (
	QuintInOut = InOut(QuintIn, QuintOut)
	QuintOutIn = OutIn(QuintIn, QuintOut)
)

// --- sine ---

// SineIn accelerates and SineOut decelerates along a quarter sine wave.
func SineIn(t float64) float64  { return 1 - math.Cos(t*math.Pi/2) }
func SineOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }

// SineInOut and SineOutIn join SineIn and SineOut at the midpoint.
var (
	SineInOut = InOut(SineIn, SineOut)
	SineOutIn = OutIn(SineIn, SineOut)
)

// --- expo ---

// ExpoIn is exactly 0 at t = 0; the closed form only approaches it.
func ExpoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// ExpoOut is exactly 1 at t = 1.
func ExpoOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// ExpoInOut and ExpoOutIn join ExpoIn and ExpoOut at the midpoint.
var (
	ExpoInOut = InOut(ExpoIn, ExpoOut)
	ExpoOutIn = OutIn(ExpoIn, ExpoOut)
)

// --- circ ---

// CircIn accelerates and CircOut decelerates along a quarter circle.
func CircIn(t float64) float64 { return 1 - math.Sqrt(1-t*t) }
func CircOut(t float64) float64 {
	u := t - 1
	return math.Sqrt(1 - u*u)
}

// CircInOut and CircOutIn join CircIn and CircOut at the midpoint.
var (
	CircInOut = InOut(CircIn, CircOut)
	CircOutIn = OutIn(CircIn, CircOut)
)
