// Package vdom is the framework's node model.
//
// A page is described as a tree of VNodes: elements, text, fragments,
// components and raw HTML. The render package turns the tree into HTML.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Components
//
// Anything with a Render() *VNode method is a Component and can be passed as
// a child. Components are rendered lazily by the renderer.
package vdom
