package canopy

// Item is a draw action parameterized by the inherited render state. Items
// are immutable and may be reused any number of times, in any number of trees.
type Item func(st State, dst Target)

// Modifier is a pure transformation of render state. It mutates only the copy
// it is handed.
type Modifier func(st *State)

// Nop is the identity modifier.
func Nop(*State) {}

// Compose returns a modifier that applies mods in order: Compose(m1, m2) is
// s -> m2(m1(s)). Compose() is Nop.
func Compose(mods ...Modifier) Modifier {
	switch len(mods) {
	case 0:
		return Nop
	case 1:
		return mods[0]
	}
	mods = append([]Modifier(nil), mods...)
	return func(st *State) {
		for _, m := range mods {
			m(st)
		}
	}
}

// Then returns Compose(m, next).
func (m Modifier) Then(next Modifier) Modifier {
	return Compose(m, next)
}

// With returns an item that copies the inherited state, applies mods to the
// copy in order, and draws i with it.
//
// i.With(m1, m2) is i.With(Compose(m1, m2)). Nesting reverses the order in
// which the state sees the modifiers: i.With(m1).With(m2) is
// i.With(Compose(m2, m1)), so the outermost modifier reaches the state first
// and the one written closest to the item has the last word.
func (i Item) With(mods ...Modifier) Item {
	m := Compose(mods...)
	return func(st State, dst Target) {
		m(&st)
		i(st, dst)
	}
}

// Draw invokes the item with the given state.
func (i Item) Draw(st State, dst Target) {
	i(st, dst)
}

// Empty is an item that draws nothing.
func Empty(State, Target) {}

// Group returns an item drawing every child in order against the same
// inherited state. Later children paint over earlier ones.
func Group(items ...Item) Item {
	items = append([]Item(nil), items...)
	return func(st State, dst Target) {
		for _, it := range items {
			it(st, dst)
		}
	}
}

// IndexFunc builds the item drawn at position index out of count from a base
// item.
type IndexFunc func(index, count int, item Item) Item

// Map applies fn to every item with its index and groups the results.
// fn runs at draw time, so it may be cheap closures over per-frame data.
func Map(fn IndexFunc, items []Item) Item {
	items = append([]Item(nil), items...)
	return func(st State, dst Target) {
		for i, it := range items {
			fn(i, len(items), it)(st, dst)
		}
	}
}

// Repeat maps fn over count copies of item.
func Repeat(fn IndexFunc, item Item, count int) Item {
	items := make([]Item, count)
	for i := range items {
		items[i] = item
	}
	return Map(fn, items)
}

// Distribute returns an IndexFunc translating item i by i*dist.
func Distribute(dist Vec2) IndexFunc {
	return func(index, _ int, item Item) Item {
		return item.With(Translate(dist.Mul(float64(index))))
	}
}

// Generate groups the items produced by fn for indices 0..count-1.
func Generate(count int, fn func(index int) Item) Item {
	items := make([]Item, count)
	for i := range items {
		items[i] = fn(i)
	}
	return Group(items...)
}

// Render evaluates item once against st.
func Render(item Item, dst Target, st State) {
	item(st, dst)
}

// Frame evaluates item once against a fresh DefaultState.
func Frame(item Item, dst Target) {
	item(DefaultState(), dst)
}
