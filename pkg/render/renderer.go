package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/htmlify/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty adds a newline after each block-level closing tag.
	Pretty bool
}

// Renderer handles rendering of VNode trees to HTML. It holds no per-call
// state and may be shared.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		return r.renderChildren(w, node)
	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render())
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("element without tag")
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	// Void elements have no closing tag
	if vdom.IsVoidElement(tag) {
		return nil
	}

	if rawHTML, ok := node.Props["dangerouslySetInnerHTML"].(string); ok {
		if _, err := io.WriteString(w, rawHTML); err != nil {
			return err
		}
	} else if err := r.renderChildren(w, node); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty && len(node.Children) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderChildren(w io.Writer, node *vdom.VNode) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

// renderAttributes renders all attributes for an element, sorted by name
// for deterministic output.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Skip internal props
		if strings.HasPrefix(key, "_") {
			continue
		}

		switch key {
		case "className":
			key = "class"
		case "htmlFor":
			key = "for"
		case "dangerouslySetInnerHTML", "key":
			continue
		}

		// Boolean attributes
		if b, ok := value.(bool); ok && isBooleanAttr(key) {
			if b {
				if _, err := io.WriteString(w, " "+key); err != nil {
					return err
				}
			}
			continue
		}

		strValue := attrToString(value)
		if strValue == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(strValue)); err != nil {
			return err
		}
	}

	return nil
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
