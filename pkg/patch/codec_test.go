package patch

import (
	"errors"
	"testing"

	"github.com/graft-dev/graft/pkg/dom"
)

func mutEq(a, b dom.Mutation) bool {
	if a.Op != b.Op || a.Index != b.Index || a.HTML != b.HTML || a.Key != b.Key || a.Value != b.Value {
		return false
	}
	if len(a.Path) != len(b.Path) {
		return false
	}
	for i := range a.Path {
		if a.Path[i] != b.Path[i] {
			return false
		}
	}
	return true
}

func TestEncodeDecodeFrame(t *testing.T) {
	ms := []dom.Mutation{
		{Op: dom.MutAppend, Index: 0, HTML: "<li>a</li>"},
		{Op: dom.MutInsert, Path: []int{1}, Index: 2, HTML: "<b>x</b>"},
		{Op: dom.MutReplace, Path: []int{0, 3}, Index: 1, HTML: "<i>y</i>"},
		{Op: dom.MutRemove, Path: []int{2}, Index: 0},
		{Op: dom.MutClear, Index: -1},
		{Op: dom.MutSetText, Path: []int{1, 0}, Index: 4, Value: "hello & <world>"},
		{Op: dom.MutSetAttr, Index: -1, Key: "class", Value: "on"},
		{Op: dom.MutRemoveAttr, Path: []int{5}, Index: -1, Key: "hidden"},
	}

	got, err := Decode(Encode(ms))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(got) != len(ms) {
		t.Fatalf("decoded %d mutations, want %d", len(got), len(ms))
	}
	for i := range ms {
		if !mutEq(got[i], ms[i]) {
			t.Errorf("mutation %d: got %+v, want %+v", i, got[i], ms[i])
		}
	}
}

func TestEncodeDecodeObservedMutations(t *testing.T) {
	root := dom.NewElement("div")
	var observed []dom.Mutation
	dom.Observe(root, func(m dom.Mutation) { observed = append(observed, m) })

	ul := dom.NewElement("ul")
	root.AppendChild(ul)
	item := dom.NewElement("li")
	item.AppendChild(dom.NewText("first"))
	ul.AppendChild(item)
	ul.SetAttr("class", "feed")
	item.ChildAt(0).(*dom.Text).SetData("edited")
	ul.RemoveChild(item)

	got, err := Decode(Encode(observed))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(got) != len(observed) {
		t.Fatalf("decoded %d mutations, want %d", len(got), len(observed))
	}
	for i := range observed {
		if !mutEq(got[i], observed[i]) {
			t.Errorf("mutation %d: got %+v, want %+v", i, got[i], observed[i])
		}
	}
}

func TestDecodeEmptyFrame(t *testing.T) {
	got, err := Decode(Encode(nil))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("decoded %d mutations from empty frame", len(got))
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrTruncated) {
		t.Errorf("Decode(nil) error = %v, want ErrTruncated", err)
	}
}

func TestDecodeTruncatedFrame(t *testing.T) {
	frame := Encode([]dom.Mutation{
		{Op: dom.MutAppend, Index: 0, HTML: "<li>long enough payload</li>"},
	})

	for _, cut := range []int{2, 4, len(frame) - 1} {
		if _, err := Decode(frame[:cut]); err == nil {
			t.Errorf("Decode(frame[:%d]) succeeded, want error", cut)
		}
	}
}

func TestDecodeUnknownOp(t *testing.T) {
	frame := appendUvarint(nil, 1)
	frame = append(frame, 0xFF, 0x00)

	if _, err := Decode(frame); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("error = %v, want ErrUnknownOp", err)
	}
}

func TestDecodeAbsurdCount(t *testing.T) {
	frame := appendUvarint(nil, 1<<40)
	if _, err := Decode(frame); !errors.Is(err, ErrOverflow) {
		t.Errorf("error = %v, want ErrOverflow", err)
	}
}

func TestDecodeOverlongStringLength(t *testing.T) {
	// SetAttr whose key claims more bytes than remain.
	frame := appendUvarint(nil, 1)
	frame = append(frame, byte(dom.MutSetAttr))
	frame = appendUvarint(frame, 0)   // empty path
	frame = appendUvarint(frame, 100) // key length far beyond the buffer
	frame = append(frame, 'x')

	if _, err := Decode(frame); !errors.Is(err, ErrOverflow) {
		t.Errorf("error = %v, want ErrOverflow", err)
	}
}

func TestEncodeUnknownOpPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic encoding an unknown op")
		}
	}()
	Append(nil, dom.Mutation{Op: dom.MutationOp(0xEE)})
}
