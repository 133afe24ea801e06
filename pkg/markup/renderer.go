package markup

import (
	"fmt"
	"io"
	"strings"
)

// Format selects the whitespace layout of serialized elements.
type Format uint8

const (
	// FormatCompat renders "<TAG ATTRS> INNER </TAG>" with the spaces kept
	// even when TAG, ATTRS or INNER are empty. Existing consumers depend on
	// this exact layout.
	FormatCompat Format = iota

	// FormatCompact renders "<TAG ATTRS>INNER</TAG>", with the space before
	// ATTRS only when there are attributes. An element with neither tag nor
	// attributes renders INNER alone.
	FormatCompact
)

// String returns the string representation of the Format.
func (f Format) String() string {
	switch f {
	case FormatCompat:
		return "compat"
	case FormatCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as accepted on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compat":
		return FormatCompat, nil
	case "compact":
		return FormatCompact, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want compat or compact)", s)
	}
}

// RendererConfig configures the markup renderer.
type RendererConfig struct {
	// Format selects the element layout. Defaults to FormatCompat.
	Format Format
}

// Renderer serializes Node trees. A Renderer holds no per-call state and
// may be shared between goroutines.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{config: config}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

var defaultRenderer = NewRenderer(RendererConfig{})

// RawMarkup renders n with the default FormatCompat layout.
func RawMarkup(n Node) string {
	s, _ := defaultRenderer.RenderToString(n)
	return s
}

// InnerMarkup renders the children of n, in order, with no separator.
func InnerMarkup(n Node) string {
	s, _ := defaultRenderer.RenderInner(n)
	return s
}

// RenderToString renders a Node tree to a string.
func (r *Renderer) RenderToString(n Node) (string, error) {
	var sb strings.Builder
	if err := r.RenderToWriter(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderInner renders only the children of n.
func (r *Renderer) RenderInner(n Node) (string, error) {
	var sb strings.Builder
	if err := r.renderChildren(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderToWriter streams a Node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, n Node) error {
	return r.renderNode(w, n)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, n Node) error {
	if isNilNode(n) {
		return nil
	}
	if raw, ok := n.(RawMarkuper); ok {
		_, err := io.WriteString(w, raw.RawMarkup())
		return err
	}
	switch n.Kind() {
	case KindText:
		// A text node without its own RawMarkup has nothing to write.
		return nil
	case KindElement:
		return r.renderElement(w, n)
	default:
		return fmt.Errorf("unknown node kind: %d", n.Kind())
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, n Node) error {
	tag := n.Tag()
	attrs := joinAttributes(n.Attributes())

	if r.config.Format == FormatCompact && tag == "" && attrs == "" {
		return r.renderChildren(w, n)
	}

	// Opening tag
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if r.config.Format == FormatCompat || attrs != "" {
		if _, err := io.WriteString(w, " "+attrs); err != nil {
			return err
		}
	}
	open := ">"
	if r.config.Format == FormatCompat {
		open = "> "
	}
	if _, err := io.WriteString(w, open); err != nil {
		return err
	}

	if err := r.renderChildren(w, n); err != nil {
		return err
	}

	// Closing tag
	closing := "</" + tag + ">"
	if r.config.Format == FormatCompat {
		closing = " " + closing
	}
	_, err := io.WriteString(w, closing)
	return err
}

// renderChildren renders each child in order with no separator.
func (r *Renderer) renderChildren(w io.Writer, n Node) error {
	if isNilNode(n) {
		return nil
	}
	for _, child := range n.Children() {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

// joinAttributes renders attributes space separated, in order.
func joinAttributes(attrs []Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}
