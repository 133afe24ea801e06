package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFuncComponent(t *testing.T) {
	called := false
	c := Func(func() *VNode {
		called = true
		return Div()
	})

	node := Mount(c)
	if node.Kind != KindComponent {
		t.Fatalf("got %v, want Component", node.Kind)
	}
	if out := node.Comp.Render(); out.Tag != "div" {
		t.Errorf("got %q, want div", out.Tag)
	}
	if !called {
		t.Error("render function should be called")
	}
}

func TestCreateElementArgs(t *testing.T) {
	comp := Func(func() *VNode { return Span() })
	node := Div(
		nil,
		Class("a", "b"),
		[]Attr{ID("main"), {}},
		Key("k1"),
		P("text"),
		[]*VNode{Li(), nil},
		comp,
		"tail",
	)

	if node.Props["class"] != "a b" {
		t.Errorf("class = %v, want %q", node.Props["class"], "a b")
	}
	if node.Props["id"] != "main" {
		t.Errorf("id = %v, want main", node.Props["id"])
	}
	if node.Key != "k1" {
		t.Errorf("key = %q, want k1", node.Key)
	}
	if len(node.Children) != 4 {
		t.Fatalf("got %d children, want 4", len(node.Children))
	}
	if node.Children[2].Kind != KindComponent {
		t.Errorf("got %v, want Component", node.Children[2].Kind)
	}
	if node.Children[3].Kind != KindText || node.Children[3].Text != "tail" {
		t.Errorf("string should become a text node, got %+v", node.Children[3])
	}
}

func TestFragmentAndHelpers(t *testing.T) {
	frag := Fragment(nil, Text("a"), []*VNode{Raw("<b>"), nil}, "c")
	if len(frag.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(frag.Children))
	}
	if frag.Children[1].Kind != KindRaw {
		t.Errorf("got %v, want Raw", frag.Children[1].Kind)
	}

	if If(false, Div()) != nil {
		t.Error("If(false) should return nil")
	}
	items := Range([]string{"x", "y"}, func(s string, i int) *VNode { return Li(s) })
	if len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}
	if !IsVoidElement("br") || IsVoidElement("div") {
		t.Error("unexpected void element classification")
	}
}
