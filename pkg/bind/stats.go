package bind

import "sync/atomic"

// Counters (atomic). Maintained for observability only; no binding logic
// reads them.
var (
	bindingsCreated atomic.Int64
	bindingsTorn    atomic.Int64
)

// BindingStats is a snapshot of binding lifecycle counters.
type BindingStats struct {
	// Created is the total number of child bindings ever created.
	Created int64

	// TornDown is the total number of bindings that detached themselves.
	TornDown int64

	// Active is Created minus TornDown: bindings still registered,
	// including stale ones that have not yet observed their staleness.
	Active int64
}

// Stats returns current binding lifecycle counters.
func Stats() BindingStats {
	created := bindingsCreated.Load()
	torn := bindingsTorn.Load()
	return BindingStats{
		Created:  created,
		TornDown: torn,
		Active:   created - torn,
	}
}
