package bind

import (
	"fmt"
	"sync/atomic"

	"github.com/graft-dev/graft/pkg/cell"
	"github.com/graft-dev/graft/pkg/dom"
)

// Child is a reactive node producer: either a static dom.Node or a
// cell.Value[dom.Node] whose resolution may change over time. Producer
// identity is the value's identity: the same reactive value appearing in
// consecutive list recomputations is the same producer; a distinct value,
// even one resolving to a structurally identical node, is unrelated.
type Child any

// Dyn creates a reactive child from fn. The derivation compares nodes by
// identity: resolving to a distinct node is always a change, even if the
// new node renders identically.
func Dyn(fn func() dom.Node) *cell.Derived[dom.Node] {
	return cell.DeriveEquals(fn, sameNode)
}

func sameNode(a, b dom.Node) bool { return a == b }

// normalize collapses typed nils so absence always reads as nil.
func normalize(n dom.Node) dom.Node {
	switch v := n.(type) {
	case *dom.Element:
		if v == nil {
			return nil
		}
	case *dom.Text:
		if v == nil {
			return nil
		}
	}
	return n
}

// Node installs a child binding for one producer on a container.
//
// The binding projects the producer's resolution into (current, previous)
// pairs and reacts to every change:
//
//	current, no previous  -> append current
//	current and previous  -> replace previous with current, in place
//	no current, previous  -> remove previous
//	neither               -> nothing
//
// Before mutating, the binding checks whether previous exists but is no
// longer attached to this container. That means some other force already
// evicted the node, typically a list rebuild, and this binding is stale:
// it detaches its subscriptions and applies no mutation. A node moved
// elsewhere by an outside actor also reads as stale here.
//
// Static children are appended once and carry no subscription.
func Node(container *dom.Element, child Child) {
	attach(container, child)
}

func attach(container *dom.Element, child Child) {
	switch c := child.(type) {
	case nil:
		return
	case *dom.Element:
		if c != nil {
			container.AppendChild(c)
		}
	case *dom.Text:
		if c != nil {
			container.AppendChild(c)
		}
	case dom.Node:
		container.AppendChild(c)
	case cell.Value[dom.Node]:
		newBinding(container, c)
	default:
		panic(fmt.Sprintf("bind: unsupported child type %T", child))
	}
}

// binding is the per-producer-per-registration record: a history
// projection of the producer's resolved node plus the mutation effect.
// Bindings are created freely, one per producer per list recomputation,
// and release themselves when they observe their own staleness.
type binding struct {
	container *dom.Element
	hist      *cell.Derived[cell.Pair[dom.Node]]
	eff       *cell.Derived[struct{}]
	torn      atomic.Bool
}

func newBinding(container *dom.Element, producer cell.Value[dom.Node]) *binding {
	b := &binding{container: container}

	// The history projection is this binding's one subscription to the
	// producer; the effect subscribes to the projection, not the producer.
	b.hist = cell.HistoryEquals(func() dom.Node {
		return normalize(producer.Get())
	}, sameNode)

	b.eff = cell.Derive(func() struct{} {
		b.apply()
		return struct{}{}
	})

	bindingsCreated.Add(1)
	return b
}

// apply runs the mutation table for the latest (current, previous) pair.
func (b *binding) apply() {
	p := b.hist.Get()

	cur := p.Current
	var prev dom.Node
	if p.HasPrevious {
		prev = p.Previous
	}

	// Staleness guard: a previous node no longer under this container was
	// evicted, or moved away, by something other than this binding.
	// Tear down, mutate nothing.
	if prev != nil && prev.Parent() != b.container {
		b.teardown()
		return
	}

	switch {
	case cur != nil && prev == nil:
		release(cur)
		b.container.AppendChild(cur)
	case cur != nil && prev != nil:
		release(cur)
		b.container.ReplaceChild(prev, cur)
	case cur == nil && prev != nil:
		b.container.RemoveChild(prev)
	}
}

// release frees n for adoption. A duplicate registration of one producer
// finds its node already placed by an earlier binding; the later mutation
// decides where the node ends up.
func release(n dom.Node) {
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
}

// teardown severs the binding from the graph. Idempotent: a stale binding
// may observe staleness more than once in degenerate timing.
func (b *binding) teardown() {
	if b.torn.Swap(true) {
		return
	}
	b.hist.Detach()
	b.eff.Detach()
	bindingsTorn.Add(1)
}
