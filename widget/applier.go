package widget

// Applier receives a property's current value by reference and may
// overwrite it. Modifiers that touch several properties take one Applier
// per property and pass [Keep] for those they leave alone.
type Applier[T any] func(v *T)

// Set returns an Applier that overwrites the value with v.
func Set[T any](v T) Applier[T] {
	return func(p *T) { *p = v }
}

// Keep returns an Applier that leaves the value untouched.
func Keep[T any]() Applier[T] {
	return func(*T) {}
}

// Modify returns an Applier that replaces the value with fn(value).
func Modify[T any](fn func(T) T) Applier[T] {
	return func(p *T) { *p = fn(*p) }
}

func (a Applier[T]) apply(p *T) {
	if a != nil {
		a(p)
	}
}
