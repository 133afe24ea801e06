package markup

import "testing"

func TestBaseDefaults(t *testing.T) {
	var n Node = emptyNode{}

	if n.Kind() != KindElement {
		t.Errorf("got %v, want Element", n.Kind())
	}
	if n.Tag() != "" {
		t.Errorf("got %q, want empty tag", n.Tag())
	}
	if len(n.Attributes()) != 0 {
		t.Errorf("got %d attributes, want 0", len(n.Attributes()))
	}
	if len(n.Children()) != 0 {
		t.Errorf("got %d children, want 0", len(n.Children()))
	}
}

func TestTextNode(t *testing.T) {
	var n Node = Text("hi")

	if n.Kind() != KindText {
		t.Errorf("got %v, want Text", n.Kind())
	}
	if n.Tag() != "" || n.Attributes() != nil || n.Children() != nil {
		t.Error("text node should have no tag, attributes or children")
	}
}

func TestKindString(t *testing.T) {
	if KindElement.String() != "Element" || KindText.String() != "Text" {
		t.Error("unexpected kind names")
	}
	if Kind(9).String() != "Unknown" {
		t.Errorf("got %q, want Unknown", Kind(9).String())
	}
}

func TestElArguments(t *testing.T) {
	var missing *Element
	e := El("div",
		nil,
		Attr("id", "a"),
		[]Attribute{Attr("class", "b"), Flag("hidden")},
		"text",
		El("span"),
		missing,
		[]Node{Text("x"), nil},
		42,
	)

	if got := len(e.Attributes()); got != 3 {
		t.Fatalf("got %d attributes, want 3", got)
	}
	if e.Attributes()[1] != Attr("class", "b") {
		t.Errorf("attribute order not kept: %v", e.Attributes())
	}
	if got := len(e.Children()); got != 3 {
		t.Fatalf("got %d children, want 3", got)
	}
	if e.Children()[0] != Text("text") {
		t.Errorf("string should become Text, got %#v", e.Children()[0])
	}
}

func TestElSkipsNilElementsInSlices(t *testing.T) {
	var missing *Element
	e := El("div", []Node{missing, Text("x"), (*Element)(nil)}, Node(missing))

	if got := len(e.Children()); got != 1 {
		t.Fatalf("got %d children, want 1", got)
	}
	if got, want := RawMarkup(e), "<div > x </div>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderSkipsNilElementChildren(t *testing.T) {
	var missing *Element
	n := nilChildren{kids: []Node{Text("a"), missing}}

	if got, want := RawMarkup(n), "<ul > a </ul>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := RawMarkup(missing); got != "" {
		t.Errorf("got %q for nil element, want empty", got)
	}
}

type nilChildren struct {
	Base
	kids []Node
}

func (nilChildren) Tag() string        { return "ul" }
func (n nilChildren) Children() []Node { return n.kids }

func TestElementWithCopies(t *testing.T) {
	base := El("p", Attr("class", "a"), "one")
	more := base.With(Attr("id", "x"), "two")

	if len(base.Attributes()) != 1 || len(base.Children()) != 1 {
		t.Error("With must not modify the receiver")
	}
	if len(more.Attributes()) != 2 || len(more.Children()) != 2 {
		t.Errorf("got %d attrs / %d children, want 2/2", len(more.Attributes()), len(more.Children()))
	}
}

func TestWalk(t *testing.T) {
	tree := El("div", El("p", "a"), Text("b"))

	var kinds []Kind
	var depths []int
	Walk(tree, func(n Node, depth int) bool {
		kinds = append(kinds, n.Kind())
		depths = append(depths, depth)
		return true
	})

	wantDepths := []int{0, 1, 2, 1}
	if len(depths) != len(wantDepths) {
		t.Fatalf("got %v, want %v", depths, wantDepths)
	}
	for i := range depths {
		if depths[i] != wantDepths[i] {
			t.Errorf("depth[%d] = %d, want %d", i, depths[i], wantDepths[i])
		}
	}
	if kinds[3] != KindText {
		t.Errorf("got %v, want Text", kinds[3])
	}

	count := 0
	Walk(tree, func(n Node, depth int) bool {
		count++
		return depth == 0
	})
	if count != 3 {
		t.Errorf("skipping should visit 3 nodes, got %d", count)
	}
}
