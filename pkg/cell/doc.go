// Package cell implements the reactive runtime that drives graft bindings.
//
// A Cell is a writable reactive value. A Derived is a value computed from
// cells (or other derivations); it runs once when created and recomputes
// synchronously whenever any value it read during its last run changes.
// Dependency tracking is implicit: reading a value with Get during a
// derivation's run subscribes the derivation to that value.
//
// Scheduling is cooperative and push-based. A Set runs every dependent
// recomputation to completion before it returns, in subscription order,
// so callers observe a fully converged graph after each update. Batch
// groups several writes into a single notification phase.
//
// Every derivation can be permanently removed from the graph with Detach,
// which releases all of its subscriptions. Detach is idempotent.
package cell
