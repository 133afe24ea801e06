package markup

// Element is a general purpose Node holding its tag, attributes and
// children directly.
type Element struct {
	tag      string
	attrs    []Attribute
	children []Node
}

// El creates an element with the given tag.
// Arguments can be: nil, Attribute, []Attribute, Node, []Node, string.
// Strings become Text children. Anything else is ignored.
func El(tag string, args ...any) *Element {
	e := &Element{tag: tag}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Allows conditional arguments
			continue
		case Attribute:
			e.attrs = append(e.attrs, v)
		case []Attribute:
			e.attrs = append(e.attrs, v...)
		case string:
			e.children = append(e.children, Text(v))
		case []Node:
			for _, child := range v {
				if !isNilNode(child) {
					e.children = append(e.children, child)
				}
			}
		case Node:
			if !isNilNode(v) {
				e.children = append(e.children, v)
			}
		}
	}
	return e
}

// isNilNode reports whether n is nil or wraps a nil *Element.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	el, ok := n.(*Element)
	return ok && el == nil
}

// Group creates an element with an empty tag holding the given children.
func Group(children ...Node) *Element {
	return El("", children)
}

// Kind implements Node.
func (e *Element) Kind() Kind { return KindElement }

// Tag implements Node.
func (e *Element) Tag() string { return e.tag }

// Attributes implements Node.
func (e *Element) Attributes() []Attribute { return e.attrs }

// Children implements Node.
func (e *Element) Children() []Node { return e.children }

// With returns a copy of e with more arguments applied, as accepted by El.
func (e *Element) With(args ...any) *Element {
	next := &Element{
		tag:      e.tag,
		attrs:    append([]Attribute(nil), e.attrs...),
		children: append([]Node(nil), e.children...),
	}
	more := El(e.tag, args...)
	next.attrs = append(next.attrs, more.attrs...)
	next.children = append(next.children, more.children...)
	return next
}
