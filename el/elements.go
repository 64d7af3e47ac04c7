package el

import "github.com/graft-dev/graft/pkg/dom"

func Div(args ...any) *dom.Element {
	return createElement("div", args)
}
func Span(args ...any) *dom.Element {
	return createElement("span", args)
}
func P(args ...any) *dom.Element {
	return createElement("p", args)
}
func H1(args ...any) *dom.Element {
	return createElement("h1", args)
}
func H2(args ...any) *dom.Element {
	return createElement("h2", args)
}
func H3(args ...any) *dom.Element {
	return createElement("h3", args)
}
func Ul(args ...any) *dom.Element {
	return createElement("ul", args)
}
func Ol(args ...any) *dom.Element {
	return createElement("ol", args)
}
func Li(args ...any) *dom.Element {
	return createElement("li", args)
}
func Button(args ...any) *dom.Element {
	return createElement("button", args)
}
func Input(args ...any) *dom.Element {
	return createElement("input", args)
}
func Label(args ...any) *dom.Element {
	return createElement("label", args)
}
func Form(args ...any) *dom.Element {
	return createElement("form", args)
}
func Anchor(args ...any) *dom.Element {
	return createElement("a", args)
}
func Section(args ...any) *dom.Element {
	return createElement("section", args)
}
func Header(args ...any) *dom.Element {
	return createElement("header", args)
}
func Footer(args ...any) *dom.Element {
	return createElement("footer", args)
}
func Main(args ...any) *dom.Element {
	return createElement("main", args)
}
func Nav(args ...any) *dom.Element {
	return createElement("nav", args)
}
func Strong(args ...any) *dom.Element {
	return createElement("strong", args)
}
func Em(args ...any) *dom.Element {
	return createElement("em", args)
}
func Pre(args ...any) *dom.Element {
	return createElement("pre", args)
}
func Code(args ...any) *dom.Element {
	return createElement("code", args)
}
func Img(args ...any) *dom.Element {
	return createElement("img", args)
}
func Br(args ...any) *dom.Element {
	return createElement("br", args)
}
func Hr(args ...any) *dom.Element {
	return createElement("hr", args)
}
