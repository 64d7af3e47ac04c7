package cell

import "sync/atomic"

// Listener is anything that can be notified when a dependency changes.
// Derivations implement it; tests may supply their own.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	// For derivations this triggers a synchronous recomputation.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used for deduplication during batch processing.
	ID() uint64
}

// sourceTracker is implemented by listeners that keep a record of the
// sources they subscribed to, so the subscriptions can be released when
// the listener recomputes or detaches.
type sourceTracker interface {
	Listener
	addSource(*sourceBase)
}

// globalIDCounter is the source of unique IDs for all reactive primitives.
var globalIDCounter uint64

// nextID returns the next unique ID for a reactive primitive.
// IDs are monotonically increasing and never reused.
func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
