// Package bind connects reactive values to the live node tree.
//
// The central entry point is Children, which keeps a container element's
// child list converged to an ordered list produced by a reactive value.
// Each recomputation of the list fully clears the container and rebuilds
// it: one fresh child binding per producer, in order. The rebuild is
// not incremental; it trades mutation efficiency for simplicity.
//
// A child binding pairs a producer with a history projection of its
// resolved node and an effect that applies the matching tree mutation:
// append on first resolution, replace in place when the resolution flips,
// remove when it resolves to nothing.
//
// The subtle part is subscription teardown. A producer that survives a
// list recomputation gets a fresh binding each time; the superseded
// bindings stay subscribed, because nothing about the producer itself
// changed. A stale binding discovers its own staleness reactively, the
// first time its producer fires again: it finds the node it previously
// managed no longer under its container (the rebuild evicted it) and
// responds by detaching its subscriptions entirely, applying no mutation.
// A node that is still in place is, by the same check, still live, so no
// binding ever evicts another binding's current node.
package bind
