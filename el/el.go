package el

import (
	"fmt"

	"github.com/graft-dev/graft/pkg/bind"
	"github.com/graft-dev/graft/pkg/cell"
	"github.com/graft-dev/graft/pkg/dom"
)

// createElement creates an element with the given tag and arguments.
// See the package doc for accepted argument kinds.
func createElement(tag string, args []any) *dom.Element {
	e := dom.NewElement(tag)

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional arguments).
			continue

		case dom.Attr:
			if v.Key != "" {
				e.SetAttr(v.Key, v.Value)
			}

		case []dom.Attr:
			for _, a := range v {
				if a.Key != "" {
					e.SetAttr(a.Key, a.Value)
				}
			}

		case *dom.Element:
			if v != nil {
				e.AppendChild(v)
			}

		case *dom.Text:
			if v != nil {
				e.AppendChild(v)
			}

		case dom.Node:
			e.AppendChild(v)

		case string:
			e.AppendChild(dom.NewText(v))

		case cell.Value[dom.Node]:
			bind.Node(e, v)

		case cell.Value[string]:
			t := dom.NewText("")
			e.AppendChild(t)
			bind.Text(t, v)

		case func() dom.Node:
			bind.Node(e, bind.Dyn(v))

		default:
			panic(fmt.Sprintf("el: unsupported argument type %T", arg))
		}
	}

	return e
}

// A creates an attribute.
func A(key, value string) dom.Attr {
	return dom.Attr{Key: key, Value: value}
}

// Class is shorthand for a class attribute.
func Class(value string) dom.Attr {
	return dom.Attr{Key: "class", Value: value}
}

// ID is shorthand for an id attribute.
func ID(value string) dom.Attr {
	return dom.Attr{Key: "id", Value: value}
}

// Text creates a text node.
func Text(content string) *dom.Text {
	return dom.NewText(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *dom.Text {
	return Text(fmt.Sprintf(format, args...))
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node dom.Node) dom.Node {
	if condition {
		return node
	}
	return nil
}
