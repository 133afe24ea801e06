package vdom

// Text creates an escaped text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Raw creates a node whose HTML is written unescaped.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element. It accepts the same
// child forms as the element functions.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment}
	for _, child := range children {
		node.Children = appendChildren(node.Children, child)
	}
	return node
}

// If returns node when cond holds and nil otherwise. Element functions
// skip nil children.
func If(cond bool, node *VNode) *VNode {
	if !cond {
		return nil
	}
	return node
}

// Range maps items to nodes, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
