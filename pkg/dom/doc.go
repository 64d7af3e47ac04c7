// Package dom provides the live, mutable node tree that graft bindings
// converge. Unlike a virtual DOM, nodes here carry parent pointers and are
// mutated in place: an element owns an ordered child list and supports
// append, positional insert, replace, and remove.
//
// Structural misuse (appending a node that already has a parent, replacing
// or removing a node that is not a child) is a contract violation and
// panics; the panic propagates to whoever triggered the originating update.
//
// A tree is owned by a single goroutine at a time; the package performs no
// locking of its own.
package dom
