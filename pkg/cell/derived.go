package cell

import (
	"sync"
	"sync/atomic"
)

// Derived is a reactive value computed from other values. The computation
// runs once, synchronously, when the derivation is created, and again every
// time a value it read during its last run changes. Derivations may be
// created inside another derivation's computation; the inner derivation
// tracks its own dependencies, not its creator's.
//
// A Derived with no meaningful value (fn performs side effects) is the
// runtime's effect primitive.
type Derived[T any] struct {
	base sourceBase

	// fn computes the value.
	fn func() T

	// value is the most recently computed value.
	value T

	// mu protects the value.
	mu sync.RWMutex

	// sources are the values this derivation read during its last run.
	sources   []*sourceBase
	sourcesMu sync.Mutex

	// detached marks the derivation as permanently removed from the graph.
	detached atomic.Bool

	// running guards against recursive recomputation through a cycle.
	running atomic.Bool

	// equal determines whether a recomputation changed the value.
	equal func(T, T) bool
}

// Derive creates a derivation and immediately runs its computation under
// dependency tracking.
func Derive[T any](fn func() T) *Derived[T] {
	return DeriveEquals(fn, nil)
}

// DeriveEquals is Derive with a custom equality function, used to decide
// whether a recomputation should notify subscribers.
func DeriveEquals[T any](fn func() T, equal func(T, T) bool) *Derived[T] {
	d := &Derived[T]{
		base: sourceBase{
			id: nextID(),
		},
		fn:    fn,
		equal: equal,
	}
	d.recompute()
	return d
}

// Get returns the current value and subscribes the current listener.
func (d *Derived[T]) Get() T {
	d.mu.RLock()
	value := d.value
	d.mu.RUnlock()

	d.base.track()

	return value
}

// Peek returns the current value without subscribing.
func (d *Derived[T]) Peek() T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value
}

// MarkDirty recomputes the derivation synchronously.
// Implements the Listener interface.
func (d *Derived[T]) MarkDirty() {
	if d.detached.Load() {
		return
	}
	d.recompute()
}

// ID returns the unique identifier for this derivation.
// Implements the Listener interface.
func (d *Derived[T]) ID() uint64 {
	return d.base.id
}

// SubscriberCount reports the number of currently subscribed listeners.
func (d *Derived[T]) SubscriberCount() int {
	return d.base.subscriberCount()
}

// Detach permanently removes the derivation from the graph: it releases
// every subscription the derivation holds and drops its own subscribers,
// so it neither recomputes nor propagates again. Safe to call multiple
// times, including from inside the derivation's own computation.
func (d *Derived[T]) Detach() {
	if d.detached.Swap(true) {
		return
	}
	d.releaseSources()

	d.base.subMu.Lock()
	d.base.subs = nil
	d.base.subMu.Unlock()
}

// Detached reports whether the derivation has been detached.
func (d *Derived[T]) Detached() bool {
	return d.detached.Load()
}

// addSource records a source subscription.
// Called by sources when they are read during this derivation's run.
func (d *Derived[T]) addSource(source *sourceBase) {
	d.sourcesMu.Lock()
	defer d.sourcesMu.Unlock()

	for _, s := range d.sources {
		if s == source {
			return
		}
	}
	d.sources = append(d.sources, source)
}

// releaseSources unsubscribes the derivation from everything it read.
func (d *Derived[T]) releaseSources() {
	d.sourcesMu.Lock()
	for _, source := range d.sources {
		source.unsubscribe(d)
	}
	d.sources = nil
	d.sourcesMu.Unlock()
}

// recompute runs the computation under dependency tracking and notifies
// subscribers if the value changed.
func (d *Derived[T]) recompute() {
	// A recomputation reached again through its own dependency cycle
	// is dropped rather than recursing forever.
	if d.running.Swap(true) {
		return
	}
	defer d.running.Store(false)

	// Re-tracking starts from a clean slate: the run below re-subscribes
	// to exactly the sources it still reads.
	d.releaseSources()

	old := setCurrentListener(d)
	newValue := d.fn()
	setCurrentListener(old)

	// The computation may have detached this derivation (or itself been
	// the teardown path). Subscriptions gained during the run are then
	// stale and the result is discarded.
	if d.detached.Load() {
		d.releaseSources()
		return
	}

	d.mu.Lock()
	changed := !d.equals(d.value, newValue)
	d.value = newValue
	d.mu.Unlock()

	if changed {
		d.base.notifySubscribers()
	}
}

func (d *Derived[T]) equals(a, b T) bool {
	if d.equal != nil {
		return d.equal(a, b)
	}
	return defaultEquals(a, b)
}
