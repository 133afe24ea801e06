package tree

import "errors"

var (
	// ErrEmptyDocument is returned when the input holds no document.
	ErrEmptyDocument = errors.New("tree: empty document")

	// ErrInvalidNode is returned when a node mixes text, markdown and
	// element fields.
	ErrInvalidNode = errors.New("tree: invalid node")

	// ErrMarkdown is returned when markdown conversion fails.
	ErrMarkdown = errors.New("tree: markdown conversion failed")
)
