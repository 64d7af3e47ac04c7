package dom

import "strings"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is a member of the live tree. The set of implementations is closed:
// *Element and *Text.
type Node interface {
	// Kind returns the node type.
	Kind() Kind

	// Parent returns the element this node is currently attached to,
	// or nil if the node is detached.
	Parent() *Element

	// HTML renders the node as markup.
	HTML() string

	setParent(*Element)
	writeHTML(b *strings.Builder)
}

// Attr is a single attribute, as accepted by element constructors.
type Attr struct {
	Key   string
	Value string
}
