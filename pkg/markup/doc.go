// Package markup converts Go values into HTML markup.
//
// Any value implementing Node can be serialized. Node is a small capability
// set (kind, tag, attributes, children); embedding Base supplies the defaults
// so a type only overrides what it needs:
//
//	type Card struct {
//	    markup.Base
//	    Title string
//	}
//
//	func (c Card) Tag() string { return "div" }
//
//	func (c Card) Attributes() []markup.Attribute {
//	    return []markup.Attribute{markup.Attr("class", "card")}
//	}
//
//	func (c Card) Children() []markup.Node {
//	    return []markup.Node{markup.Text(c.Title)}
//	}
//
// # Serialization
//
// RawMarkup renders a node and its descendants depth-first:
//
//	markup.RawMarkup(Card{Title: "hi"}) // <div class="card"> hi </div>
//
// The default FormatCompat layout emits a space after the tag name, between
// the attribute list and '>', and around the inner content, whether or not
// the tag or the attribute list is empty. FormatCompact drops those spaces:
//
//	r := markup.NewRenderer(markup.RendererConfig{Format: markup.FormatCompact})
//	s, _ := r.RenderToString(Card{Title: "hi"}) // <div class="card">hi</div>
//
// # Raw text
//
// Text is the raw-text node. It is never wrapped in a tag and its content is
// written unchanged. No escaping is performed anywhere in this package; use
// the tree package's sanitizer for untrusted input.
//
// Trees are expected to be acyclic. There is no cycle detection.
package markup
