package tree_test

import (
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/htmlify/pkg/markup"
	"github.com/vango-dev/htmlify/pkg/tree"
)

func TestDecodeElement(t *testing.T) {
	t.Parallel()

	doc := `
tag: div
attributes:
  - {name: class, value: box}
  - hidden
children:
  - text: hi
`
	node, err := tree.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, markup.KindElement, node.Kind())
	assert.Equal(t, "div", node.Tag())
	assert.Equal(t, []markup.Attribute{markup.Attr("class", "box"), markup.Flag("hidden")}, node.Attributes())
	assert.Equal(t, `<div class="box" hidden> hi </div>`, markup.RawMarkup(node))
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	doc := `{"tag": "ul", "children": [{"tag": "li", "children": [{"text": "a"}]}, {"text": "<b>"}]}`
	node, err := tree.DecodeBytes([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "<ul > <li > a </li><b> </ul>", markup.RawMarkup(node))
}

func TestDecodeEmptyElement(t *testing.T) {
	t.Parallel()

	node, err := tree.DecodeBytes([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, "< >  </>", markup.RawMarkup(node))
}

func TestDecodeMarkdown(t *testing.T) {
	t.Parallel()

	node, err := tree.DecodeBytes([]byte("tag: article\nchildren:\n  - markdown: \"**bold**\"\n"))
	require.NoError(t, err)

	children := node.Children()
	require.Len(t, children, 1)
	assert.Equal(t, markup.KindText, children[0].Kind())
	assert.Equal(t, "<p><strong>bold</strong></p>\n", markup.RawMarkup(children[0]))
}

func TestDecodeSanitizer(t *testing.T) {
	t.Parallel()

	doc := "tag: div\nchildren:\n  - text: \"<script>alert(1)</script><b>ok</b>\"\n"

	node, err := tree.DecodeBytes([]byte(doc), tree.WithUGCSanitizer())
	require.NoError(t, err)
	assert.Equal(t, "<b>ok</b>", markup.InnerMarkup(node))

	node, err = tree.DecodeBytes([]byte(doc), tree.WithSanitizer(bluemonday.StrictPolicy()))
	require.NoError(t, err)
	assert.Equal(t, "ok", markup.InnerMarkup(node))

	node, err = tree.DecodeBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "<script>alert(1)</script><b>ok</b>", markup.InnerMarkup(node))
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
		wantMsg string
	}{
		{"empty", "", tree.ErrEmptyDocument, ""},
		{"text and tag", "tag: p\ntext: x\n", tree.ErrInvalidNode, "at root"},
		{"nested mix", "tag: p\nchildren:\n  - {text: a}\n  - {text: b, markdown: c}\n", tree.ErrInvalidNode, "root.children[1]"},
		{"attribute without name", "tag: p\nattributes:\n  - {value: x}\n", tree.ErrInvalidNode, "attributes[0]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tree.DecodeBytes([]byte(tt.doc))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecodeMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := tree.DecodeBytes([]byte("tag: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tree: decode")
}

func TestMeasure(t *testing.T) {
	t.Parallel()

	node := markup.El("div", markup.Attr("id", "a"),
		markup.El("p", markup.Flag("hidden"), "x"),
		markup.Text("y"),
	)

	assert.Equal(t, tree.Stats{Nodes: 4, Elements: 2, Texts: 2, Attributes: 2, Depth: 3}, tree.Measure(node))
}
