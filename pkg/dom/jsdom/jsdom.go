//go:build js && wasm

// Package jsdom is the browser DOM host for js/wasm builds.
package jsdom

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/vango-dev/htmlify/pkg/dom"
	"github.com/vango-dev/htmlify/pkg/markup"
)

// ErrForeignNode is returned when appending an element not created by this host.
var ErrForeignNode = errors.New("jsdom: node is not a browser element")

// Host is the browser environment reached through the JavaScript global object.
type Host struct{}

// Window implements dom.Host.
func (Host) Window() (dom.Window, bool) {
	win := js.Global().Get("window")
	if !present(win) {
		return nil, false
	}
	return window{v: win}, true
}

type window struct{ v js.Value }

func (w window) Document() (dom.Document, bool) {
	doc := w.v.Get("document")
	if !present(doc) {
		return nil, false
	}
	return Document{v: doc}, true
}

// Document wraps a browser document.
type Document struct{ v js.Value }

// CreateElement implements dom.Document.
func (d Document) CreateElement(tag string) (el dom.Element, err error) {
	defer recoverJS(&err)
	return &Element{v: d.v.Call("createElement", tag)}, nil
}

// Body implements dom.Document.
func (d Document) Body() (dom.Element, bool) {
	body := d.v.Get("body")
	if !present(body) {
		return nil, false
	}
	return &Element{v: body}, true
}

// Element wraps a browser element.
type Element struct{ v js.Value }

// Value returns the underlying JavaScript value.
func (e *Element) Value() js.Value {
	return e.v
}

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) (err error) {
	defer recoverJS(&err)
	e.v.Call("setAttribute", name, value)
	return nil
}

// AppendChild implements dom.Element.
func (e *Element) AppendChild(child dom.Element) (err error) {
	c, ok := child.(*Element)
	if !ok || c == nil {
		return ErrForeignNode
	}
	defer recoverJS(&err)
	e.v.Call("append", c.v)
	return nil
}

// AppendText implements dom.Element.
func (e *Element) AppendText(text string) (err error) {
	defer recoverJS(&err)
	e.v.Call("append", text)
	return nil
}

// SetInnerHTML implements dom.Element.
func (e *Element) SetInnerHTML(html string) (err error) {
	defer recoverJS(&err)
	e.v.Set("innerHTML", html)
	return nil
}

// AppendToDocumentBody materializes n and appends it to the page body.
func AppendToDocumentBody(n markup.Node) error {
	return dom.AppendToBody(Host{}, n)
}

func present(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

// recoverJS turns a thrown JavaScript exception into an error.
func recoverJS(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = jsErr
			return
		}
		*err = fmt.Errorf("jsdom: %v", r)
	}
}
