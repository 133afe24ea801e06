package rawhtml

import (
	"errors"
	"testing"

	"github.com/vango-dev/htmlify/pkg/dom"
	"github.com/vango-dev/htmlify/pkg/dom/htmldoc"
	"github.com/vango-dev/htmlify/pkg/markup"
	"github.com/vango-dev/htmlify/pkg/render"
	"github.com/vango-dev/htmlify/pkg/vdom"
)

func TestPropsEqual(t *testing.T) {
	base := Props{Tag: "div", Attributes: []markup.Attribute{markup.Attr("a", "1")}, HTML: "x"}

	tests := []struct {
		name  string
		other Props
		want  bool
	}{
		{"same", Props{Tag: "div", Attributes: []markup.Attribute{markup.Attr("a", "1")}, HTML: "x"}, true},
		{"tag differs", Props{Tag: "p", Attributes: base.Attributes, HTML: "x"}, false},
		{"html differs", Props{Tag: "div", Attributes: base.Attributes, HTML: "y"}, false},
		{"attribute order", Props{Tag: "div", Attributes: []markup.Attribute{markup.Attr("a", "2")}, HTML: "x"}, false},
		{"missing attributes", Props{Tag: "div", HTML: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropsOfFlattensDescendants(t *testing.T) {
	node := markup.El("section", markup.Attr("id", "s"),
		markup.El("p", "one"),
		markup.Text("two"),
	)

	props := PropsOf(node)
	if props.Tag != "section" {
		t.Errorf("got %q, want section", props.Tag)
	}
	if props.HTML != "<p > one </p>two" {
		t.Errorf("got %q", props.HTML)
	}
	if len(props.Attributes) != 1 || props.Attributes[0] != markup.Attr("id", "s") {
		t.Errorf("got %v", props.Attributes)
	}
}

func TestRenderIsOpaqueRawNode(t *testing.T) {
	c := New(Props{
		Tag:        "div",
		Attributes: []markup.Attribute{markup.Attr("z", "1"), markup.Flag("hidden"), markup.Attr("a", "2")},
		HTML:       "<b>hi</b>",
	})

	node := c.Render()
	if node.Kind != vdom.KindRaw {
		t.Fatalf("got %v, want Raw", node.Kind)
	}
	want := `<div z="1" hidden a="2"><b>hi</b></div>`
	if node.Text != want {
		t.Errorf("got %q, want %q", node.Text, want)
	}
}

func TestFromRendersInsideFramework(t *testing.T) {
	node := markup.El("article", markup.Attr("class", "post"), markup.El("h1", "T"))
	page := vdom.Main(vdom.Class("wrap"), From(node))

	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<main class="wrap"><article class="post"><h1 > T </h1></article></main>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestMount(t *testing.T) {
	doc := htmldoc.New()
	c := New(PropsOf(markup.El("ul", markup.Attr("id", "l"), markup.El("li", "a"))))

	el, err := c.Mount(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := el.(*htmldoc.Element).OuterHTML()
	want := `<ul id="l"><li> a </li></ul>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMountErrors(t *testing.T) {
	if _, err := New(Props{Tag: "div"}).Mount(nil); !errors.Is(err, dom.ErrUnavailable) {
		t.Errorf("got %v, want ErrUnavailable", err)
	}

	doc := htmldoc.New()
	if _, err := New(Props{Tag: ""}).Mount(doc); !errors.Is(err, htmldoc.ErrInvalidCharacter) {
		t.Errorf("got %v, want ErrInvalidCharacter", err)
	}

	c := New(Props{Tag: "div", Attributes: []markup.Attribute{markup.Attr("bad name", "x")}})
	if _, err := c.Mount(doc); err == nil {
		t.Error("expected attribute error")
	}
}
