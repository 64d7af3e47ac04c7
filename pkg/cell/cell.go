package cell

import "sync"

// Value is a readable reactive value: a Cell or a Derived.
// Get subscribes the current listener; Peek reads without subscribing.
type Value[T any] interface {
	Get() T
	Peek() T

	// ID returns the unique identifier of this value.
	ID() uint64

	// SubscriberCount reports how many listeners are currently subscribed.
	// Runtime logic never depends on it; it exists so callers and tests
	// can verify subscription hygiene.
	SubscriberCount() int
}

// Cell is a writable reactive storage location. Updating it triggers
// dependent recomputation before the update call returns.
type Cell[T any] struct {
	base sourceBase

	// value is the current cell value.
	value T

	// mu protects the value.
	mu sync.RWMutex

	// equal determines whether a write changed the value.
	// If nil, defaultEquals is used.
	equal func(T, T) bool
}

// New creates a cell holding the given initial value.
func New[T any](initial T) *Cell[T] {
	return &Cell[T]{
		base: sourceBase{
			id: nextID(),
		},
		value: initial,
	}
}

// Get returns the current value and subscribes the current listener.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	value := c.value
	c.mu.RUnlock()

	// Track dependency after releasing the value lock to prevent deadlock.
	c.base.track()

	return value
}

// Peek returns the current value without subscribing.
func (c *Cell[T]) Peek() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set updates the cell's value and, if it changed, synchronously runs all
// dependent recomputation before returning.
func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	changed := !c.equals(c.value, value)
	if changed {
		c.value = value
	}
	c.mu.Unlock()

	if changed {
		c.base.notifySubscribers()
	}
}

// Update atomically reads and updates the cell's value.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	oldValue := c.value
	newValue := fn(oldValue)
	changed := !c.equals(oldValue, newValue)
	if changed {
		c.value = newValue
	}
	c.mu.Unlock()

	if changed {
		c.base.notifySubscribers()
	}
}

// WithEquals configures a custom equality function and returns the cell.
// Useful where reflect.DeepEqual is too expensive or has the wrong
// semantics (node references, for example, compare by identity).
func (c *Cell[T]) WithEquals(fn func(T, T) bool) *Cell[T] {
	c.equal = fn
	return c
}

// ID returns the unique identifier for this cell.
func (c *Cell[T]) ID() uint64 {
	return c.base.id
}

// SubscriberCount reports the number of currently subscribed listeners.
func (c *Cell[T]) SubscriberCount() int {
	return c.base.subscriberCount()
}

func (c *Cell[T]) equals(a, b T) bool {
	if c.equal != nil {
		return c.equal(a, b)
	}
	return defaultEquals(a, b)
}
