package dom

// Text is a leaf node holding character data.
type Text struct {
	data   string
	parent *Element
}

// NewText creates a detached text node.
func NewText(data string) *Text {
	return &Text{data: data}
}

// Kind implements Node.
func (t *Text) Kind() Kind { return KindText }

// Parent implements Node.
func (t *Text) Parent() *Element { return t.parent }

func (t *Text) setParent(p *Element) { t.parent = p }

// Data returns the character data.
func (t *Text) Data() string { return t.data }

// SetData replaces the character data.
func (t *Text) SetData(data string) {
	if t.data == data {
		return
	}
	t.data = data
	if t.parent != nil {
		t.parent.notify(Mutation{
			Op:    MutSetText,
			Index: t.parent.childIndex(t),
			Value: data,
		})
	}
}
