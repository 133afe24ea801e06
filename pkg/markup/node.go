package markup

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // Wrapped in Tag() with attributes
	KindText                // Raw text, written as-is
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is anything that can be converted to markup.
type Node interface {
	// Kind reports whether the node is an element or raw text.
	Kind() Kind

	// Tag is the element name. Empty is valid and renders as an empty tag.
	Tag() string

	// Attributes are rendered in order. Duplicates are kept.
	Attributes() []Attribute

	// Children are serialized in order after the opening tag.
	Children() []Node
}

// RawMarkuper is implemented by nodes that produce their own serialization.
// RawMarkup uses it instead of the element template.
type RawMarkuper interface {
	RawMarkup() string
}

// Base provides the default Node behaviour: an element with no tag, no
// attributes and no children. Embed it and override what you need.
type Base struct{}

// Kind implements Node.
func (Base) Kind() Kind { return KindElement }

// Tag implements Node.
func (Base) Tag() string { return "" }

// Attributes implements Node.
func (Base) Attributes() []Attribute { return nil }

// Children implements Node.
func (Base) Children() []Node { return nil }

// Text is a raw text node. It has no tag, attributes or children and
// serializes to its own content unchanged.
type Text string

// Kind implements Node.
func (Text) Kind() Kind { return KindText }

// Tag implements Node.
func (Text) Tag() string { return "" }

// Attributes implements Node.
func (Text) Attributes() []Attribute { return nil }

// Children implements Node.
func (Text) Children() []Node { return nil }

// RawMarkup implements RawMarkuper.
func (t Text) RawMarkup() string { return string(t) }

// Walk calls fn for n and each descendant in pre-order. Returning false from
// fn skips the node's children.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if isNilNode(n) {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children() {
		walk(child, depth+1, fn)
	}
}
