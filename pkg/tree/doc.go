// Package tree decodes declarative documents into markup nodes.
//
// Documents are YAML (JSON works too, being a YAML subset):
//
//	tag: div
//	attributes:
//	  - {name: class, value: box}
//	  - hidden
//	children:
//	  - text: hi
//	  - markdown: "**bold**"
//
// A node is an element (tag, attributes, children), raw text (text) or
// markdown rendered to HTML with goldmark (markdown). An attribute given as a
// plain string is a flag. Text and markdown output can be passed through a
// bluemonday policy with WithSanitizer.
package tree
