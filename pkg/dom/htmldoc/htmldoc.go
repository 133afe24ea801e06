// Package htmldoc is an in-memory DOM host backed by golang.org/x/net/html.
//
// It lets markup trees be materialized without a browser, for server-side
// checks and tests. Element and attribute names are validated the way a
// browser's createElement and setAttribute do.
package htmldoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/htmlify/pkg/dom"
)

// ErrInvalidCharacter mirrors the DOM InvalidCharacterError.
var ErrInvalidCharacter = errors.New("htmldoc: invalid character in name")

// ErrForeignNode is returned when appending an element from another host.
var ErrForeignNode = errors.New("htmldoc: node does not belong to this document")

const skeleton = "<!DOCTYPE html><html><head></head><body></body></html>"

// Option configures a Document.
type Option func(*Document)

// WithoutWindow makes the host report no window.
func WithoutWindow() Option {
	return func(d *Document) { d.noWindow = true }
}

// WithoutDocument makes the window report no document.
func WithoutDocument() Option {
	return func(d *Document) { d.noDocument = true }
}

// WithoutBody makes the document report no body.
func WithoutBody() Option {
	return func(d *Document) { d.noBody = true }
}

// WithAttributeCheck adds a check run on every SetAttribute call after name
// validation. A non-nil error rejects the attribute.
func WithAttributeCheck(check func(name, value string) error) Option {
	return func(d *Document) { d.attrCheck = check }
}

// WithCreateCheck adds a check run on every CreateElement call after name
// validation.
func WithCreateCheck(check func(tag string) error) Option {
	return func(d *Document) { d.createCheck = check }
}

// WithAppendCheck adds a check run before every AppendChild and AppendText
// call. child is the appended element's tag, or "#text" for text.
func WithAppendCheck(check func(parent, child string) error) Option {
	return func(d *Document) { d.appendCheck = check }
}

// Document is an in-memory HTML document. It is also its own dom.Host.
type Document struct {
	root        *html.Node
	body        *html.Node
	noWindow    bool
	noDocument  bool
	noBody      bool
	attrCheck   func(name, value string) error
	createCheck func(tag string) error
	appendCheck func(parent, child string) error
	created     int
}

// New creates an empty HTML document with a head and a body.
func New(opts ...Option) *Document {
	root, err := html.Parse(strings.NewReader(skeleton))
	if err != nil {
		// The skeleton is constant; the parser does not fail on it.
		panic(err)
	}
	d := &Document{root: root, body: findBody(root)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Window implements dom.Host.
func (d *Document) Window() (dom.Window, bool) {
	if d.noWindow {
		return nil, false
	}
	return window{d: d}, true
}

type window struct{ d *Document }

func (w window) Document() (dom.Document, bool) {
	if w.d.noDocument {
		return nil, false
	}
	return w.d, true
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) (dom.Element, error) {
	if !validName(tag) {
		return nil, fmt.Errorf("%w: createElement(%q)", ErrInvalidCharacter, tag)
	}
	if d.createCheck != nil {
		if err := d.createCheck(tag); err != nil {
			return nil, err
		}
	}
	d.created++
	name := strings.ToLower(tag)
	return &Element{
		doc: d,
		node: &html.Node{
			Type:     html.ElementNode,
			Data:     name,
			DataAtom: atom.Lookup([]byte(name)),
		},
	}, nil
}

// Body implements dom.Document.
func (d *Document) Body() (dom.Element, bool) {
	if d.noBody || d.body == nil {
		return nil, false
	}
	return &Element{doc: d, node: d.body}, true
}

// Created returns how many elements have been created, attached or not.
func (d *Document) Created() int {
	return d.created
}

// Render writes the whole document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// BodyHTML returns the serialized children of the body.
func (d *Document) BodyHTML() string {
	if d.body == nil {
		return ""
	}
	return innerHTML(d.body)
}

// Element is an element of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// Node returns the underlying html node.
func (e *Element) Node() *html.Node {
	return e.node
}

// SetAttribute implements dom.Element. Setting an existing attribute
// replaces its value.
func (e *Element) SetAttribute(name, value string) error {
	if !validName(name) {
		return fmt.Errorf("%w: setAttribute(%q)", ErrInvalidCharacter, name)
	}
	if e.doc.attrCheck != nil {
		if err := e.doc.attrCheck(name, value); err != nil {
			return err
		}
	}
	key := strings.ToLower(name)
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == key {
			e.node.Attr[i].Val = value
			return nil
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
	return nil
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	key := strings.ToLower(name)
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AppendChild implements dom.Element. A child that already has a parent is
// moved.
func (e *Element) AppendChild(child dom.Element) error {
	c, ok := child.(*Element)
	if !ok || c == nil || c.doc != e.doc {
		return ErrForeignNode
	}
	if err := e.checkAppend(c.node.Data); err != nil {
		return err
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
	return nil
}

// AppendText implements dom.Element.
func (e *Element) AppendText(text string) error {
	if err := e.checkAppend("#text"); err != nil {
		return err
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return nil
}

func (e *Element) checkAppend(child string) error {
	if e.doc.appendCheck == nil {
		return nil
	}
	return e.doc.appendCheck(e.node.Data, child)
}

// SetInnerHTML implements dom.Element. The markup is parsed in the context
// of this element and replaces its children.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return err
	}
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// OuterHTML serializes the element and its descendants.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() string {
	return innerHTML(e.node)
}

func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}

// validName reports whether s is accepted as an element or attribute name.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f':
			return false
		case r == '"' || r == '\'' || r == '>' || r == '<' || r == '/' || r == '=':
			return false
		case i == 0 && (r == '-' || r == '.' || (r >= '0' && r <= '9')):
			return false
		}
	}
	return true
}
