// Package render turns framework VNode trees into HTML.
//
// Text content and attribute values are escaped. Raw nodes (vdom.KindRaw)
// and the dangerouslySetInnerHTML prop are written as-is; the rawhtml adapter
// uses them to embed markup produced outside the framework.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	page := render.PageData{
//	    Body:  bodyNode,
//	    Title: "Preview",
//	}
//	err := renderer.RenderPage(w, page)
package render
