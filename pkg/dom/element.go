package dom

import "fmt"

// Element is a tagged tree node with attributes and an ordered child list.
type Element struct {
	tag      string
	attrs    map[string]string
	children []Node
	parent   *Element

	// observer receives mutation records for the subtree rooted here.
	// Set via Observe, on tree roots only.
	observer func(Mutation)
}

// NewElement creates a detached element with the given tag and attributes.
func NewElement(tag string, attrs ...Attr) *Element {
	e := &Element{tag: tag}
	for _, a := range attrs {
		if a.Key != "" {
			e.SetAttr(a.Key, a.Value)
		}
	}
	return e
}

// Kind implements Node.
func (e *Element) Kind() Kind { return KindElement }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Parent implements Node.
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

// Attr returns the value of the named attribute and whether it is set.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(key, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	if v, ok := e.attrs[key]; ok && v == value {
		return
	}
	e.attrs[key] = value
	e.notify(Mutation{Op: MutSetAttr, Index: -1, Key: key, Value: value})
}

// RemoveAttr removes an attribute. Removing an absent attribute is a no-op.
func (e *Element) RemoveAttr(key string) {
	if _, ok := e.attrs[key]; !ok {
		return
	}
	delete(e.attrs, key)
	e.notify(Mutation{Op: MutRemoveAttr, Index: -1, Key: key})
}

// Children returns a copy of the ordered child list.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return len(e.children) }

// ChildAt returns the child at index i, or nil if out of range.
func (e *Element) ChildAt(i int) Node {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// Contains reports whether n is a direct child of e.
func (e *Element) Contains(n Node) bool {
	return e.childIndex(n) >= 0
}

// AppendChild attaches n as the last child of e.
// Panics if n is nil, already attached, or an ancestor of e.
func (e *Element) AppendChild(n Node) {
	e.adopt(n)
	e.children = append(e.children, n)
	e.notify(Mutation{Op: MutAppend, Index: len(e.children) - 1, HTML: n.HTML()})
}

// InsertChild attaches n at position i, shifting later children right.
// Panics on an out-of-range index or an unattachable node.
func (e *Element) InsertChild(i int, n Node) {
	if i < 0 || i > len(e.children) {
		panic(fmt.Sprintf("dom: insert index %d out of range [0,%d]", i, len(e.children)))
	}
	e.adopt(n)
	e.children = append(e.children, nil)
	copy(e.children[i+1:], e.children[i:])
	e.children[i] = n
	e.notify(Mutation{Op: MutInsert, Index: i, HTML: n.HTML()})
}

// ReplaceChild swaps old for new at old's position.
// Panics if old is not a child of e or new cannot be attached.
func (e *Element) ReplaceChild(old, new Node) {
	i := e.childIndex(old)
	if i < 0 {
		panic("dom: replaced node is not a child of this element")
	}
	if old == new {
		return
	}
	e.adopt(new)
	old.setParent(nil)
	e.children[i] = new
	e.notify(Mutation{Op: MutReplace, Index: i, HTML: new.HTML()})
}

// RemoveChild detaches n from e.
// Panics if n is not a child of e.
func (e *Element) RemoveChild(n Node) {
	i := e.childIndex(n)
	if i < 0 {
		panic("dom: removed node is not a child of this element")
	}
	n.setParent(nil)
	e.children = append(e.children[:i], e.children[i+1:]...)
	e.notify(Mutation{Op: MutRemove, Index: i})
}

// RemoveChildren detaches every child of e.
func (e *Element) RemoveChildren() {
	if len(e.children) == 0 {
		return
	}
	for _, c := range e.children {
		c.setParent(nil)
	}
	e.children = e.children[:0]
	e.notify(Mutation{Op: MutClear, Index: -1})
}

// adopt validates that n can become a child of e and links its parent.
func (e *Element) adopt(n Node) {
	if n == nil {
		panic("dom: cannot attach a nil node")
	}
	if n.Parent() != nil {
		panic("dom: node already has a parent")
	}
	if el, ok := n.(*Element); ok {
		for a := e; a != nil; a = a.parent {
			if a == el {
				panic("dom: node cannot contain itself")
			}
		}
	}
	n.setParent(e)
}

// childIndex returns the position of n in e's child list, or -1.
func (e *Element) childIndex(n Node) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}
