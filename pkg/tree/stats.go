package tree

import "github.com/vango-dev/htmlify/pkg/markup"

// Stats summarizes a node tree.
type Stats struct {
	Nodes      int
	Elements   int
	Texts      int
	Attributes int
	Depth      int
}

// Measure walks n and counts its nodes.
func Measure(n markup.Node) Stats {
	var s Stats
	markup.Walk(n, func(node markup.Node, depth int) bool {
		s.Nodes++
		if depth+1 > s.Depth {
			s.Depth = depth + 1
		}
		switch node.Kind() {
		case markup.KindText:
			s.Texts++
		default:
			s.Elements++
			s.Attributes += len(node.Attributes())
		}
		return true
	})
	return s
}
