package dom

// MutationOp identifies a kind of tree edit.
type MutationOp uint8

const (
	MutAppend     MutationOp = 0x01 // Append rendered node to element
	MutInsert     MutationOp = 0x02 // Insert rendered node at index
	MutReplace    MutationOp = 0x03 // Replace child at index with rendered node
	MutRemove     MutationOp = 0x04 // Remove child at index
	MutClear      MutationOp = 0x05 // Remove all children
	MutSetText    MutationOp = 0x06 // Update text data of child at index
	MutSetAttr    MutationOp = 0x07 // Set attribute on element
	MutRemoveAttr MutationOp = 0x08 // Remove attribute from element
)

// String returns the string representation of the MutationOp.
func (op MutationOp) String() string {
	switch op {
	case MutAppend:
		return "Append"
	case MutInsert:
		return "Insert"
	case MutReplace:
		return "Replace"
	case MutRemove:
		return "Remove"
	case MutClear:
		return "Clear"
	case MutSetText:
		return "SetText"
	case MutSetAttr:
		return "SetAttr"
	case MutRemoveAttr:
		return "RemoveAttr"
	default:
		return "Unknown"
	}
}

// Mutation describes a single edit applied to an observed tree.
type Mutation struct {
	// Op is the edit kind.
	Op MutationOp

	// Path is the child-index path from the observed root to the element
	// the edit targets. Empty means the root itself.
	Path []int

	// Index is the child position the edit applies to, or -1 for edits
	// that target the element as a whole (Clear, SetAttr, RemoveAttr).
	Index int

	// HTML is the rendered markup of the attached node, for Append,
	// Insert, and Replace.
	HTML string

	// Key is the attribute name for SetAttr and RemoveAttr.
	Key string

	// Value is the attribute value or text data.
	Value string
}

// Observe installs fn as the mutation observer for the tree rooted at
// root. Every structural or attribute edit anywhere under root is reported
// as a Mutation, synchronously, after the edit is applied. Passing nil
// removes the observer.
//
// Observing a non-root element only reports edits while the element
// remains a root; an observer does not follow a node that is attached
// elsewhere.
func Observe(root *Element, fn func(Mutation)) {
	root.observer = fn
}

// notify delivers m to the observer of this element's root, if any,
// filling in the path from the root to e.
func (e *Element) notify(m Mutation) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	if root.observer == nil {
		return
	}

	// Build the index path root -> e.
	var rev []int
	for n := e; n.parent != nil; n = n.parent {
		rev = append(rev, n.parent.childIndex(n))
	}
	path := make([]int, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = idx
	}
	m.Path = path

	root.observer(m)
}
