package cell

// Pair is one step of a value's history: the value produced by the latest
// recomputation and the value held immediately before it. HasPrevious is
// false only on the very first run.
type Pair[T any] struct {
	Current     T
	Previous    T
	HasPrevious bool
}

// History projects a computation into (current, previous) pairs: each
// recomputation of fn yields the new value paired with the value the
// projection held before this recomputation. The projection subscribes to
// whatever fn reads, exactly like Derive.
func History[T any](fn func() T) *Derived[Pair[T]] {
	return HistoryEquals(fn, nil)
}

// HistoryEquals is History with a custom equality function for the
// element type. Both halves of the pair are compared with it when
// deciding whether a recomputation should notify subscribers.
func HistoryEquals[T any](fn func() T, equal func(T, T) bool) *Derived[Pair[T]] {
	eq := equal
	if eq == nil {
		eq = defaultEquals[T]
	}

	var prev T
	var has bool

	return DeriveEquals(func() Pair[T] {
		cur := fn()
		p := Pair[T]{Current: cur, Previous: prev, HasPrevious: has}
		prev, has = cur, true
		return p
	}, func(a, b Pair[T]) bool {
		if a.HasPrevious != b.HasPrevious {
			return false
		}
		if !eq(a.Current, b.Current) {
			return false
		}
		if a.HasPrevious && !eq(a.Previous, b.Previous) {
			return false
		}
		return true
	})
}
