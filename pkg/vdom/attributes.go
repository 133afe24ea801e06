package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the element id.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute; multiple classes are space joined.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Lang sets the language of the html element.
func Lang(lang string) Attr { return attr("lang", lang) }

// Key sets the sibling identity key. It is not rendered.
func Key(key string) Attr { return attr("key", key) }

func Href(url string) Attr   { return attr("href", url) }
func Rel(rel string) Attr    { return attr("rel", rel) }
func Charset(cs string) Attr { return attr("charset", cs) }
func Name(name string) Attr  { return attr("name", name) }
func Content(c string) Attr  { return attr("content", c) }
func Type(t string) Attr     { return attr("type", t) }
func Disabled() Attr         { return attr("disabled", true) }
func Checked() Attr          { return attr("checked", true) }

// DangerouslySetInnerHTML sets the element's content to unescaped HTML.
// Children are ignored when it is set.
func DangerouslySetInnerHTML(html string) Attr {
	return attr("dangerouslySetInnerHTML", html)
}

// Attribute creates an attribute with an arbitrary key.
func Attribute(key string, value any) Attr { return attr(key, value) }
