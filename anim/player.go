package anim

// Player advances an [Animation] in real time. Call Update(dt) each tick;
// the current value is written through OnValue when it is set. A Player is
// not safe for concurrent use.
//
// There is no global player manager; owners call Update themselves.
type Player[T any] struct {
	anim    Animation[T]
	elapsed float64

	// Loop restarts playback from the beginning instead of stopping.
	Loop bool
	// Done is true once a non-looping animation has reached its end.
	Done bool
	// OnValue, if set, receives the value after every Update.
	OnValue func(T)
}

// NewPlayer returns a Player positioned at the start of a.
func NewPlayer[T any](a Animation[T]) *Player[T] {
	return &Player[T]{anim: a}
}

// Update advances playback by dt seconds. It does nothing once Done.
func (p *Player[T]) Update(dt float64) {
	if p.Done {
		return
	}
	p.elapsed += dt
	d := p.anim.Duration()
	if p.elapsed >= d {
		if p.Loop && d > 0 {
			p.elapsed = Wrap(p.elapsed, d, 0)
			if p.elapsed == d {
				p.elapsed = 0
			}
		} else {
			p.elapsed = d
			p.Done = true
		}
	}
	if p.OnValue != nil {
		p.OnValue(p.Value())
	}
}

// Value returns the animation's value at the current playback time.
func (p *Player[T]) Value() T {
	return p.anim.Value(p.elapsed)
}

// Elapsed returns the current playback time in seconds.
func (p *Player[T]) Elapsed() float64 { return p.elapsed }

// Animation returns the animation being played.
func (p *Player[T]) Animation() Animation[T] { return p.anim }

// Seek moves playback to t, clamped to the animation's duration, and clears
// Done.
func (p *Player[T]) Seek(t float64) {
	p.elapsed = max(0, min(t, p.anim.Duration()))
	p.Done = false
}

// Reset rewinds to the start.
func (p *Player[T]) Reset() { p.Seek(0) }
