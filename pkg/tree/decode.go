package tree

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/htmlify/pkg/markup"
)

// nodeDoc is the document form of a node.
type nodeDoc struct {
	Tag        *string   `yaml:"tag"`
	Attributes []attrDoc `yaml:"attributes"`
	Children   []nodeDoc `yaml:"children"`
	Text       *string   `yaml:"text"`
	Markdown   *string   `yaml:"markdown"`
}

type attrDoc struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// UnmarshalYAML accepts either {name, value} or a bare flag name.
func (a *attrDoc) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		a.Name = value.Value
		return nil
	}
	type plain attrDoc
	return value.Decode((*plain)(a))
}

// Decode reads one document from r.
func Decode(r io.Reader, opts ...Option) (markup.Node, error) {
	var doc nodeDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("tree: decode: %w", err)
	}

	o := decodeOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.markdown == nil {
		o.markdown = goldmark.New()
	}

	return build(&doc, "root", &o)
}

// DecodeBytes decodes a document held in memory.
func DecodeBytes(data []byte, opts ...Option) (markup.Node, error) {
	return Decode(bytes.NewReader(data), opts...)
}

func build(doc *nodeDoc, path string, o *decodeOptions) (markup.Node, error) {
	isElement := doc.Tag != nil || len(doc.Attributes) > 0 || len(doc.Children) > 0
	set := 0
	for _, b := range []bool{isElement, doc.Text != nil, doc.Markdown != nil} {
		if b {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("%w at %s: use only one of tag/attributes/children, text or markdown", ErrInvalidNode, path)
	}

	switch {
	case doc.Text != nil:
		return markup.Text(o.sanitize(*doc.Text)), nil

	case doc.Markdown != nil:
		var buf bytes.Buffer
		if err := o.markdown.Convert([]byte(*doc.Markdown), &buf); err != nil {
			return nil, fmt.Errorf("%w at %s: %v", ErrMarkdown, path, err)
		}
		return markup.Text(o.sanitize(buf.String())), nil
	}

	tag := ""
	if doc.Tag != nil {
		tag = *doc.Tag
	}

	attrs := make([]markup.Attribute, 0, len(doc.Attributes))
	for i, a := range doc.Attributes {
		if a.Name == "" {
			return nil, fmt.Errorf("%w at %s.attributes[%d]: missing name", ErrInvalidNode, path, i)
		}
		attrs = append(attrs, markup.Attr(a.Name, a.Value))
	}

	children := make([]markup.Node, 0, len(doc.Children))
	for i := range doc.Children {
		child, err := build(&doc.Children[i], fmt.Sprintf("%s.children[%d]", path, i), o)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return markup.El(tag, attrs, children), nil
}

func (o *decodeOptions) sanitize(s string) string {
	if o.policy == nil {
		return s
	}
	return o.policy.Sanitize(s)
}
