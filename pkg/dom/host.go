package dom

// Host is the environment that owns the DOM.
type Host interface {
	// Window returns the current window, if any.
	Window() (Window, bool)
}

// Window gives access to the document.
type Window interface {
	Document() (Document, bool)
}

// Document creates elements and exposes the body.
type Document interface {
	// CreateElement creates a detached element with the given tag.
	CreateElement(tag string) (Element, error)

	// Body returns the document body, if any.
	Body() (Element, bool)
}

// Element is a live host element.
type Element interface {
	SetAttribute(name, value string) error
	AppendChild(child Element) error
	AppendText(text string) error
	SetInnerHTML(html string) error
}
