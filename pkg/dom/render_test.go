package dom

import "testing"

func TestRenderElement(t *testing.T) {
	e := NewElement("div", Attr{Key: "class", Value: "box"})
	e.AppendChild(NewText("hello"))

	want := `<div class="box">hello</div>`
	if got := e.HTML(); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestRenderNested(t *testing.T) {
	ul := NewElement("ul")
	for _, s := range []string{"a", "b"} {
		li := NewElement("li")
		li.AppendChild(NewText(s))
		ul.AppendChild(li)
	}

	want := `<ul><li>a</li><li>b</li></ul>`
	if got := ul.HTML(); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestRenderAttrsSorted(t *testing.T) {
	e := NewElement("input")
	e.SetAttr("type", "text")
	e.SetAttr("id", "name")
	e.SetAttr("class", "field")

	want := `<input class="field" id="name" type="text">`
	if got := e.HTML(); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestRenderVoidElement(t *testing.T) {
	e := NewElement("br")
	if got := e.HTML(); got != "<br>" {
		t.Errorf("HTML() = %q, want <br>", got)
	}

	if !IsVoidElement("img") {
		t.Error("IsVoidElement(img) = false")
	}
	if IsVoidElement("div") {
		t.Error("IsVoidElement(div) = true")
	}
}

func TestRenderEscapesText(t *testing.T) {
	e := NewElement("p")
	e.AppendChild(NewText(`<script>alert("x")</script>`))

	want := `<p>&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;</p>`
	if got := e.HTML(); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestRenderEscapesAttrs(t *testing.T) {
	e := NewElement("div")
	e.SetAttr("title", "a\"b\nc")

	want := "<div title=\"a&quot;b&#10;c\"></div>"
	if got := e.HTML(); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	if got := KindElement.String(); got != "Element" {
		t.Errorf("KindElement.String() = %q", got)
	}
	if got := KindText.String(); got != "Text" {
		t.Errorf("KindText.String() = %q", got)
	}
}
