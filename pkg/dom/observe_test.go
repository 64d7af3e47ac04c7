package dom

import (
	"reflect"
	"testing"
)

func TestObserveAppend(t *testing.T) {
	root := NewElement("div")
	var muts []Mutation
	Observe(root, func(m Mutation) { muts = append(muts, m) })

	child := NewElement("span")
	child.AppendChild(NewText("hi"))
	root.AppendChild(child)

	if len(muts) != 1 {
		t.Fatalf("got %d mutations, want 1", len(muts))
	}
	m := muts[0]
	if m.Op != MutAppend {
		t.Errorf("Op = %v, want Append", m.Op)
	}
	if len(m.Path) != 0 {
		t.Errorf("Path = %v, want empty (root target)", m.Path)
	}
	if m.Index != 0 {
		t.Errorf("Index = %d, want 0", m.Index)
	}
	if m.HTML != "<span>hi</span>" {
		t.Errorf("HTML = %q", m.HTML)
	}
}

func TestObserveDeepPath(t *testing.T) {
	root := NewElement("div")
	mid := NewElement("section")
	inner := NewElement("ul")
	root.AppendChild(NewText("lead"))
	root.AppendChild(mid)
	mid.AppendChild(inner)

	var muts []Mutation
	Observe(root, func(m Mutation) { muts = append(muts, m) })

	inner.AppendChild(NewElement("li"))

	if len(muts) != 1 {
		t.Fatalf("got %d mutations, want 1", len(muts))
	}
	if want := []int{1, 0}; !reflect.DeepEqual(muts[0].Path, want) {
		t.Errorf("Path = %v, want %v", muts[0].Path, want)
	}
}

func TestObserveAttrEdits(t *testing.T) {
	root := NewElement("div")
	var muts []Mutation
	Observe(root, func(m Mutation) { muts = append(muts, m) })

	root.SetAttr("class", "on")
	root.SetAttr("class", "on") // unchanged, no mutation
	root.RemoveAttr("class")

	if len(muts) != 2 {
		t.Fatalf("got %d mutations, want 2", len(muts))
	}
	if muts[0].Op != MutSetAttr || muts[0].Key != "class" || muts[0].Value != "on" {
		t.Errorf("first mutation = %+v", muts[0])
	}
	if muts[1].Op != MutRemoveAttr || muts[1].Key != "class" {
		t.Errorf("second mutation = %+v", muts[1])
	}
}

func TestObserveTextEdits(t *testing.T) {
	root := NewElement("p")
	txt := NewText("old")
	root.AppendChild(txt)

	var muts []Mutation
	Observe(root, func(m Mutation) { muts = append(muts, m) })

	txt.SetData("new")
	txt.SetData("new") // unchanged, no mutation

	if len(muts) != 1 {
		t.Fatalf("got %d mutations, want 1", len(muts))
	}
	m := muts[0]
	if m.Op != MutSetText || m.Index != 0 || m.Value != "new" {
		t.Errorf("mutation = %+v", m)
	}
}

func TestObserveStructuralSequence(t *testing.T) {
	root := NewElement("ul")
	a := NewElement("li")
	b := NewElement("li")
	root.AppendChild(a)
	root.AppendChild(b)

	var ops []MutationOp
	Observe(root, func(m Mutation) { ops = append(ops, m.Op) })

	root.InsertChild(1, NewElement("li"))
	root.ReplaceChild(a, NewElement("li"))
	root.RemoveChild(b)
	root.RemoveChildren()

	want := []MutationOp{MutInsert, MutReplace, MutRemove, MutClear}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("ops = %v, want %v", ops, want)
	}
}

func TestObserveNilRemoves(t *testing.T) {
	root := NewElement("div")
	called := false
	Observe(root, func(Mutation) { called = true })
	Observe(root, nil)

	root.AppendChild(NewText("x"))

	if called {
		t.Error("observer fired after removal")
	}
}

func TestDetachedSubtreeStopsReporting(t *testing.T) {
	root := NewElement("div")
	child := NewElement("span")
	root.AppendChild(child)

	var muts []Mutation
	Observe(root, func(m Mutation) { muts = append(muts, m) })

	root.RemoveChild(child)
	muts = nil

	// child is now its own root with no observer.
	child.AppendChild(NewText("x"))

	if len(muts) != 0 {
		t.Errorf("detached subtree reported %d mutations", len(muts))
	}
}

func TestMutationOpString(t *testing.T) {
	cases := map[MutationOp]string{
		MutAppend:     "Append",
		MutClear:      "Clear",
		MutRemoveAttr: "RemoveAttr",
		MutationOp(0): "Unknown",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}
