package bind

import (
	"github.com/graft-dev/graft/pkg/cell"
	"github.com/graft-dev/graft/pkg/dom"
)

// Children keeps container's child list converged to the ordered list the
// reactive value produces, for the lifetime of that value.
//
// On every recomputation of list, the container is fully cleared and
// rebuilt: each producer gets a fresh child binding whose first mutation,
// against the just-cleared container, degenerates to an append. When the
// triggering update returns, the container's children equal the current
// resolutions of the new list's producers, in list order.
//
// Consequences of the full-rebuild strategy, all deliberate:
//
//   - A recomputation that produces the same content still clears and
//     rebuilds; without keys there is no cheap way to detect "unchanged".
//   - A reactive producer that stays in the list accumulates one
//     subscription per recomputation. The superseded bindings release
//     themselves the next time the producer fires (see Node).
//   - An empty list leaves the container with no children and creates no
//     bindings.
//
// A producer appearing more than once in the same list is legal but gets
// no de-duplication: each occurrence has independent bookkeeping, both
// resolve to the same node, and the later occurrence's mutation decides
// where that node ends up. Callers who need duplicates to render twice
// must use distinct producers.
//
// The container's child set must not be mutated externally while the
// binding is live; that configuration is unsupported.
func Children(container *dom.Element, list cell.Value[[]Child]) {
	cell.Derive(func() struct{} {
		items := list.Get()

		container.RemoveChildren()
		for _, item := range items {
			attach(container, item)
		}
		return struct{}{}
	})
}
