package render

import (
	"io"

	"github.com/vango-dev/htmlify/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Meta contains name/content meta tags
	Meta map[string]string

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Scripts contains inline scripts appended to the body
	Scripts []string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified
	Lang string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, pageNode(page)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// pageNode lays out page as an html element tree.
func pageNode(page PageData) *vdom.VNode {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.If(page.Title != "", vdom.Title(page.Title)),
		vdom.Range(sortedKeys(page.Meta), func(name string, _ int) *vdom.VNode {
			return vdom.Meta(vdom.Name(name), vdom.Content(page.Meta[name]))
		}),
		vdom.Range(page.StyleSheets, func(href string, _ int) *vdom.VNode {
			return vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href))
		}),
	)

	body := vdom.Body(
		page.Body,
		vdom.Range(page.Scripts, func(src string, _ int) *vdom.VNode {
			return vdom.Script(vdom.Raw(src))
		}),
	)

	return vdom.Html(vdom.Lang(lang), head, body)
}
