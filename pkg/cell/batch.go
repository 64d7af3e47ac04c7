package cell

// Batch groups multiple cell updates into a single notification phase.
// All updates within fn are collected, deduplicated by listener, and the
// affected listeners recompute once when the outermost batch completes.
//
// Batches can be nested; notifications fire only when the outermost batch
// returns.
func Batch(fn func()) {
	incrementBatchDepth()

	defer func() {
		if decrementBatchDepth() {
			processPendingUpdates()
		}
	}()

	fn()
}

// processPendingUpdates deduplicates and notifies all pending listeners.
func processPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	unique := make([]Listener, 0, len(updates))

	for _, listener := range updates {
		id := listener.ID()
		if !seen[id] {
			seen[id] = true
			unique = append(unique, listener)
		}
	}

	for _, listener := range unique {
		listener.MarkDirty()
	}
}

// Untracked runs fn without tracking reads as dependencies. Reads inside
// fn do not subscribe the current listener.
//
// For a single read, Peek is clearer and cheaper.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}
