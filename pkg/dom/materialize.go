package dom

import (
	"fmt"

	"github.com/vango-dev/htmlify/pkg/markup"
)

// DocumentOf returns the host's current document.
func DocumentOf(h Host) (Document, bool) {
	if h == nil {
		return nil, false
	}
	win, ok := h.Window()
	if !ok || win == nil {
		return nil, false
	}
	doc, ok := win.Document()
	if !ok || doc == nil {
		return nil, false
	}
	return doc, true
}

// Materialize creates a host element for n and its descendants.
//
// Raw text children are appended as text using their raw markup. Raw text
// nodes cannot be materialized on their own: Materialize(h, markup.Text(..))
// returns false. On failure the partially built element is discarded but any
// host-side allocation is left as is.
func Materialize(h Host, n markup.Node) (Element, bool) {
	doc, ok := DocumentOf(h)
	if !ok {
		return nil, false
	}
	return materialize(doc, n)
}

// MaterializeIn is like Materialize but uses doc directly.
func MaterializeIn(doc Document, n markup.Node) (Element, bool) {
	if doc == nil {
		return nil, false
	}
	return materialize(doc, n)
}

func materialize(doc Document, n markup.Node) (Element, bool) {
	if isNil(n) || n.Kind() == markup.KindText {
		return nil, false
	}

	el, err := doc.CreateElement(n.Tag())
	if err != nil {
		return nil, false
	}
	for _, attr := range n.Attributes() {
		if err := el.SetAttribute(attr.Name, attr.Value); err != nil {
			return nil, false
		}
	}

	for _, child := range n.Children() {
		if isNil(child) {
			continue
		}
		if child.Kind() == markup.KindText {
			if err := el.AppendText(markup.RawMarkup(child)); err != nil {
				return nil, false
			}
			continue
		}
		childEl, ok := materialize(doc, child)
		if !ok {
			return nil, false
		}
		if err := el.AppendChild(childEl); err != nil {
			return nil, false
		}
	}

	return el, true
}

func isNil(n markup.Node) bool {
	el, ok := n.(*markup.Element)
	return n == nil || ok && el == nil
}

// AppendToBody materializes n and appends it to the document body.
func AppendToBody(h Host, n markup.Node) error {
	doc, ok := DocumentOf(h)
	if !ok {
		return ErrUnavailable
	}
	body, ok := doc.Body()
	if !ok || body == nil {
		return ErrUnavailable
	}
	el, ok := materialize(doc, n)
	if !ok {
		return ErrUnavailable
	}
	if err := body.AppendChild(el); err != nil {
		return fmt.Errorf("dom: append to body: %w", err)
	}
	return nil
}
