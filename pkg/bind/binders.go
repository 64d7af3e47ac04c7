package bind

import (
	"github.com/graft-dev/graft/pkg/cell"
	"github.com/graft-dev/graft/pkg/dom"
)

// One-way property binders. Each installs a derivation that pushes the
// reactive value into the node whenever it changes. Absent values are
// tolerated everywhere: an empty string removes the attribute rather
// than writing an empty one.

// Text binds a text node's data to a reactive string.
func Text(t *dom.Text, v cell.Value[string]) {
	cell.Derive(func() struct{} {
		t.SetData(v.Get())
		return struct{}{}
	})
}

// Attr binds a named attribute to a reactive string.
// An empty value removes the attribute.
func Attr(el *dom.Element, name string, v cell.Value[string]) {
	cell.Derive(func() struct{} {
		if s := v.Get(); s != "" {
			el.SetAttr(name, s)
		} else {
			el.RemoveAttr(name)
		}
		return struct{}{}
	})
}

// Class binds the class attribute to a reactive string.
func Class(el *dom.Element, v cell.Value[string]) {
	Attr(el, "class", v)
}

// Style binds the style attribute to a reactive string.
func Style(el *dom.Element, v cell.Value[string]) {
	Attr(el, "style", v)
}

// Value binds an input's value attribute to a reactive string.
func Value(el *dom.Element, v cell.Value[string]) {
	cell.Derive(func() struct{} {
		el.SetAttr("value", v.Get())
		return struct{}{}
	})
}

// Checked binds the checked flag to a reactive bool.
func Checked(el *dom.Element, v cell.Value[bool]) {
	flag(el, "checked", v)
}

// Disabled binds the disabled flag to a reactive bool.
func Disabled(el *dom.Element, v cell.Value[bool]) {
	flag(el, "disabled", v)
}

// flag binds a boolean attribute: present when true, absent when false.
func flag(el *dom.Element, name string, v cell.Value[bool]) {
	cell.Derive(func() struct{} {
		if v.Get() {
			el.SetAttr(name, "")
		} else {
			el.RemoveAttr(name)
		}
		return struct{}{}
	})
}
