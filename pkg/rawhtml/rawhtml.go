// Package rawhtml bridges markup nodes into the framework.
//
// A Component carries a tag, attributes and a pre-rendered HTML string. The
// framework only ever sees one opaque raw node; the nested markup structure
// is flattened before hand-off and never reconciled by the framework.
package rawhtml

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vango-dev/htmlify/pkg/dom"
	"github.com/vango-dev/htmlify/pkg/markup"
	"github.com/vango-dev/htmlify/pkg/vdom"
)

// Props configures a Component.
type Props struct {
	Tag        string
	Attributes []markup.Attribute
	HTML       string
}

// Equal reports whether p and other have the same tag, attributes (in
// order) and HTML.
func (p Props) Equal(other Props) bool {
	return p.Tag == other.Tag &&
		p.HTML == other.HTML &&
		slices.Equal(p.Attributes, other.Attributes)
}

// Component renders its Props as an element whose content is set directly
// from the HTML string.
type Component struct {
	Props Props
}

// New creates a component.
func New(props Props) *Component {
	return &Component{Props: props}
}

// Render implements vdom.Component. The result is a single vdom.KindRaw node
// holding the complete element; attributes keep their order and duplicates.
func (c *Component) Render() *vdom.VNode {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(c.Props.Tag)
	for _, attr := range c.Props.Attributes {
		sb.WriteString(" ")
		sb.WriteString(attr.String())
	}
	sb.WriteString(">")
	sb.WriteString(c.Props.HTML)
	sb.WriteString("</")
	sb.WriteString(c.Props.Tag)
	sb.WriteString(">")
	return vdom.Raw(sb.String())
}

// Mount creates the component's element in a live document: the element is
// created, each attribute set in order, and its content set from HTML.
func (c *Component) Mount(doc dom.Document) (dom.Element, error) {
	if doc == nil {
		return nil, dom.ErrUnavailable
	}
	el, err := doc.CreateElement(c.Props.Tag)
	if err != nil {
		return nil, fmt.Errorf("rawhtml: create %q: %w", c.Props.Tag, err)
	}
	for _, attr := range c.Props.Attributes {
		if err := el.SetAttribute(attr.Name, attr.Value); err != nil {
			return nil, fmt.Errorf("rawhtml: set attribute %q: %w", attr.Name, err)
		}
	}
	if err := el.SetInnerHTML(c.Props.HTML); err != nil {
		return nil, fmt.Errorf("rawhtml: set inner html: %w", err)
	}
	return el, nil
}

// PropsOf captures n's tag and attributes and renders all of its
// descendants into one HTML string.
func PropsOf(n markup.Node) Props {
	props, _ := RenderProps(n)
	return props
}

// RenderProps is PropsOf that reports render failures. On error HTML is
// empty.
func RenderProps(n markup.Node) (Props, error) {
	html, err := markupRenderer.RenderInner(n)
	return Props{
		Tag:        n.Tag(),
		Attributes: slices.Clone(n.Attributes()),
		HTML:       html,
	}, err
}

var markupRenderer = markup.NewRenderer(markup.RendererConfig{})

// From wraps n in a framework node backed by a Component.
func From(n markup.Node) *vdom.VNode {
	return vdom.Mount(New(PropsOf(n)))
}
