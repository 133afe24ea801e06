package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Attribute values additionally escape whitespace that could break
// attribute parsing.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeAttr escapes text for inclusion in a quoted attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
