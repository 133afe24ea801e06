package vdom

// voidElements cannot have children and are written without a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement builds an element from Attr, []Attr and the child forms
// accepted by appendChildren.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			node.setAttr(v)
		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}
		default:
			node.Children = appendChildren(node.Children, arg)
		}
	}
	return node
}

// appendChildren appends arg to children. nil, nil nodes and unknown
// types are skipped; strings become text nodes.
func appendChildren(children []*VNode, arg any) []*VNode {
	switch v := arg.(type) {
	case *VNode:
		if v != nil {
			children = append(children, v)
		}
	case []*VNode:
		for _, child := range v {
			if child != nil {
				children = append(children, child)
			}
		}
	case Component:
		children = append(children, Mount(v))
	case string:
		children = append(children, Text(v))
	}
	return children
}

func (v *VNode) setAttr(a Attr) {
	if a.IsEmpty() {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	}
	v.Props[a.Key] = a.Value
}

// Page structure

func Html(args ...any) *VNode   { return createElement("html", args) }
func Head(args ...any) *VNode   { return createElement("head", args) }
func Body(args ...any) *VNode   { return createElement("body", args) }
func Title(args ...any) *VNode  { return createElement("title", args) }
func Meta(args ...any) *VNode   { return createElement("meta", args) }
func Link(args ...any) *VNode   { return createElement("link", args) }
func Script(args ...any) *VNode { return createElement("script", args) }

// Content

func Main(args ...any) *VNode  { return createElement("main", args) }
func Div(args ...any) *VNode   { return createElement("div", args) }
func Span(args ...any) *VNode  { return createElement("span", args) }
func P(args ...any) *VNode     { return createElement("p", args) }
func H1(args ...any) *VNode    { return createElement("h1", args) }
func Li(args ...any) *VNode    { return createElement("li", args) }
func Br(args ...any) *VNode    { return createElement("br", args) }
func Input(args ...any) *VNode { return createElement("input", args) }
