package anim

import (
	"math"
	"testing"

	"github.com/phanxgames/canopy/ease"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Lerp ---

func TestLerp(t *testing.T) {
	assertNear(t, "Lerp(0.25, 0, 8)", Lerp(0.25, 0.0, 8.0), 2)
	assertNear(t, "Lerp(0, 3, 9)", Lerp(0, 3.0, 9.0), 3)
	assertNear(t, "Lerp(1, 3, 9)", Lerp(1, 3.0, 9.0), 9)
	if got := Lerp(0.5, 0, 5); got != 2 {
		t.Errorf("Lerp[int](0.5, 0, 5) = %d, want 2", got)
	}
}

// --- Constant ---

func TestConstant(t *testing.T) {
	c := Constant("idle", 3)
	if c.Duration() != 3 {
		t.Errorf("Duration = %v, want 3", c.Duration())
	}
	for _, tm := range []float64{-1, 0, 1.5, 3, 10} {
		if got := c.Value(tm); got != "idle" {
			t.Errorf("Value(%v) = %q, want idle", tm, got)
		}
	}
	if c.StartValue() != "idle" || c.EndValue() != "idle" {
		t.Error("start/end should equal the constant value")
	}
}

// --- Gradual ---

func TestGradualLinear(t *testing.T) {
	g := Gradual(0.0, 10.0, 2, ease.Linear)
	assertNear(t, "Value(0)", g.Value(0), 0)
	assertNear(t, "Value(1)", g.Value(1), 5)
	assertNear(t, "Value(2)", g.Value(2), 10)
	assertNear(t, "StartValue", g.StartValue(), 0)
	assertNear(t, "EndValue", g.EndValue(), 10)
}

func TestGradualEndpointsWithEasing(t *testing.T) {
	for _, name := range ease.Names() {
		fn, _ := ease.Lookup(name)
		g := Gradual(-4.0, 6.0, 2.5, fn)
		if got := g.Value(0); math.Abs(got-g.StartValue()) > 1e-3 {
			t.Errorf("%s: Value(0) = %v, want %v", name, got, g.StartValue())
		}
		if got := g.Value(g.Duration()); math.Abs(got-g.EndValue()) > 1e-3 {
			t.Errorf("%s: Value(d) = %v, want %v", name, got, g.EndValue())
		}
	}
}

func TestGradualEased(t *testing.T) {
	g := Gradual(0.0, 100.0, 10, ease.QuadIn)
	assertNear(t, "Value(5)", g.Value(5), 25)
}

func TestGradualNilEaseIsLinear(t *testing.T) {
	g := Gradual(0.0, 1.0, 4, nil)
	assertNear(t, "Value(1)", g.Value(1), 0.25)
}

func TestGradualInt(t *testing.T) {
	g := Gradual(0, 100, 1, ease.Linear)
	if got := g.Value(0.5); got != 50 {
		t.Errorf("Value(0.5) = %d, want 50", got)
	}
}

func TestGradualFunc(t *testing.T) {
	type point struct{ x, y float64 }
	lerp := func(r float64, a, b point) point {
		return point{Lerp(r, a.x, b.x), Lerp(r, a.y, b.y)}
	}
	g := GradualFunc(point{0, 0}, point{10, 20}, 2, ease.Linear, lerp)
	if got := g.Value(1); got != (point{5, 10}) {
		t.Errorf("Value(1) = %v, want {5 10}", got)
	}
}

// --- Sequence ---

func TestSequenceBoundaryGoesToEarlierChild(t *testing.T) {
	s := Sequence(Constant(1, 5), Constant(2, 5))
	if s.Duration() != 10 {
		t.Errorf("Duration = %v, want 10", s.Duration())
	}
	tests := []struct {
		t    float64
		want int
	}{
		{-1, 1},
		{0, 1},
		{4.9, 1},
		{5, 1},
		{5.1, 2},
		{9.9, 2},
		{10, 2},
		{25, 2},
	}
	for _, tt := range tests {
		if got := s.Value(tt.t); got != tt.want {
			t.Errorf("Value(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestSequenceDelegatesLocalTime(t *testing.T) {
	s := Sequence(Gradual(0.0, 1.0, 1, nil), Gradual(10.0, 20.0, 2, nil))
	assertNear(t, "Value(0.5)", s.Value(0.5), 0.5)
	assertNear(t, "Value(2)", s.Value(2), 15)
	assertNear(t, "StartValue", s.StartValue(), 0)
	assertNear(t, "EndValue", s.EndValue(), 20)
}

func TestSequenceDoesNotAliasInput(t *testing.T) {
	items := []Animation[int]{Constant(1, 1), Constant(2, 1)}
	s := Sequence(items...)
	items[0] = Constant(9, 1)
	if got := s.Value(0.5); got != 1 {
		t.Errorf("Value(0.5) = %d after mutating input, want 1", got)
	}
}

func TestSequenceEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sequence() did not panic")
		}
	}()
	Sequence[int]()
}

// --- Repeat ---

func TestRepeatDuration(t *testing.T) {
	a := Gradual(0.0, 1.0, 2, nil)
	if got := Repeat(a, 3).Duration(); got != 6 {
		t.Errorf("Duration = %v, want 6", got)
	}
}

func TestRepeatOnceMatchesInner(t *testing.T) {
	a := Gradual(0.0, 8.0, 4, ease.CubicInOut)
	r := Repeat(a, 1)
	for _, tm := range []float64{0, 0.5, 1, 2.25, 3.75, 4} {
		assertNear(t, "Repeat(a, 1).Value", r.Value(tm), a.Value(tm))
	}
	assertNear(t, "EndValue", r.EndValue(), a.EndValue())
}

func TestRepeatWraps(t *testing.T) {
	a := Gradual(0.0, 10.0, 10, nil)
	r := Repeat(a, 3)
	assertNear(t, "Value(3)", r.Value(3), 3)
	assertNear(t, "Value(13)", r.Value(13), 3)
	assertNear(t, "Value(27)", r.Value(27), 7)
	// The end of a multi-cycle repeat lands on the start of a cycle.
	assertNear(t, "EndValue", r.EndValue(), 0)
}

func TestRepeatFractionalCount(t *testing.T) {
	a := Gradual(0.0, 100.0, 10, nil)
	r := Repeat(a, 1.5)
	assertNear(t, "Duration", r.Duration(), 15)
	assertNear(t, "Value(12)", r.Value(12), 20)
	assertNear(t, "EndValue", r.EndValue(), 50)
}

func TestRepeatFromInflection(t *testing.T) {
	a := Gradual(0.0, 10.0, 10, nil)
	r := RepeatFrom(a, 2, 4)
	assertNear(t, "Value(8)", r.Value(8), 8)
	// Past the end, loops over [4, 10).
	assertNear(t, "Value(11)", r.Value(11), 5)
	assertNear(t, "Value(17)", r.Value(17), 5)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		t, d, ip, want float64
	}{
		{3, 10, 0, 3},
		{10, 10, 0, 10},
		{12, 10, 0, 2},
		{25, 10, 0, 5},
		{12, 10, 4, 6},
		{17, 10, 4, 5},
	}
	for _, tt := range tests {
		assertNear(t, "Wrap", Wrap(tt.t, tt.d, tt.ip), tt.want)
	}
}

// --- Reverse ---

func TestReverse(t *testing.T) {
	a := Gradual(0.0, 10.0, 5, ease.QuadIn)
	r := Reverse(a)
	assertNear(t, "Duration", r.Duration(), 5)
	assertNear(t, "Value(0)", r.Value(0), 10)
	assertNear(t, "Value(5)", r.Value(5), 0)
	assertNear(t, "Value(1)", r.Value(1), a.Value(4))
	assertNear(t, "StartValue", r.StartValue(), a.EndValue())
	assertNear(t, "EndValue", r.EndValue(), a.StartValue())
}

func TestReverseReverseIsIdentity(t *testing.T) {
	a := Gradual(2.0, -3.0, 3, ease.SineOut)
	rr := Reverse(Reverse(a))
	for _, tm := range []float64{0, 0.7, 1.5, 2.9, 3} {
		assertNear(t, "Reverse(Reverse(a)).Value", rr.Value(tm), a.Value(tm))
	}
	assertNear(t, "StartValue", rr.StartValue(), a.StartValue())
	assertNear(t, "EndValue", rr.EndValue(), a.EndValue())
}

// --- PingPong ---

func TestPingPong(t *testing.T) {
	a := Gradual(0.0, 100.0, 10, ease.QuadIn)
	p := PingPong(a, 2)
	assertNear(t, "Duration", p.Duration(), 20)
	assertNear(t, "Value(3)", p.Value(3), a.Value(3))
	// Second half mirrors: t=15 is local 5 played backwards, i.e. a(10-5).
	assertNear(t, "Value(15)", p.Value(15), a.Value(5))
	assertNear(t, "Value(12)", p.Value(12), a.Value(8))
	assertNear(t, "EndValue", p.EndValue(), a.StartValue())
}

func TestPingPongOddCountEndsAtEnd(t *testing.T) {
	a := Gradual(0.0, 1.0, 1, nil)
	p := PingPong(a, 3)
	assertNear(t, "EndValue", p.EndValue(), 1)
}

func TestPingPongFractionalCount(t *testing.T) {
	a := Gradual(0.0, 100.0, 10, nil)
	p := PingPong(a, 1.5)
	assertNear(t, "Duration", p.Duration(), 15)
	// Half way into the reversed pass.
	assertNear(t, "EndValue", p.EndValue(), 50)
}

func TestPingPongFromIgnoresInflection(t *testing.T) {
	a := Gradual(0.0, 100.0, 10, nil)
	p, q := PingPongFrom(a, 2, 4), PingPong(a, 2)
	assertNear(t, "Duration", p.Duration(), q.Duration())
	for _, tm := range []float64{0, 3, 10, 12.5, 20} {
		assertNear(t, "Value", p.Value(tm), q.Value(tm))
	}
}

// --- Slice ---

func TestSlice(t *testing.T) {
	a := Gradual(0.0, 10.0, 10, nil)
	s := Slice(a, 2, 6)
	assertNear(t, "Duration", s.Duration(), 4)
	assertNear(t, "Value(0)", s.Value(0), 2)
	assertNear(t, "Value(3)", s.Value(3), 5)
	assertNear(t, "Value(100)", s.Value(100), 6)
	assertNear(t, "StartValue", s.StartValue(), 2)
	assertNear(t, "EndValue", s.EndValue(), 6)
}

func TestSliceClampsToInnerDuration(t *testing.T) {
	a := Gradual(0.0, 10.0, 10, nil)
	s := Slice(a, 8, 15)
	assertNear(t, "Value(5)", s.Value(5), 10)
}

// --- Rescale ---

func TestRescale(t *testing.T) {
	a := Gradual(0.0, 10.0, 10, nil)
	r := Rescale(a, 2)
	assertNear(t, "Duration", r.Duration(), 2)
	assertNear(t, "Value(1)", r.Value(1), 5)
	assertNear(t, "StartValue", r.StartValue(), 0)
	assertNear(t, "EndValue", r.EndValue(), 10)
}

// --- helpers ---

func TestDurationRatio(t *testing.T) {
	a := Constant(0, 8)
	assertNear(t, "DurationRatio", DurationRatio(a, 2), 0.25)
}

func TestWrapped(t *testing.T) {
	a := Gradual(0.0, 10.0, 10, nil)
	assertNear(t, "Wrapped", Wrapped(a, 14, 0), 4)
}

func TestMap(t *testing.T) {
	a := Gradual(0.0, 4.0, 2, nil)
	m := Map(a, func(v float64) int { return int(v) * 10 })
	if m.Duration() != 2 {
		t.Errorf("Duration = %v, want 2", m.Duration())
	}
	if got := m.Value(1); got != 20 {
		t.Errorf("Value(1) = %d, want 20", got)
	}
	if m.StartValue() != 0 || m.EndValue() != 40 {
		t.Errorf("start/end = %d/%d, want 0/40", m.StartValue(), m.EndValue())
	}
}

func TestCombinatorsDoNotMutateInputs(t *testing.T) {
	a := Gradual(0.0, 10.0, 10, ease.QuadOut)
	before := a.Value(3)
	_ = Sequence(a, Reverse(a), PingPong(a, 2), Repeat(a, 3), Slice(a, 1, 2), Rescale(a, 1)).Value(17)
	if a.Duration() != 10 || a.Value(3) != before {
		t.Error("combinators changed their input animation")
	}
}
