package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryDocument Category = "document"
	CategoryRender   Category = "render"
	CategoryPublish  Category = "publish"
	CategoryServer   Category = "server"
	CategoryCLI      Category = "cli"
)

// HtmlifyError is a structured error with a code, detail and suggestion.
type HtmlifyError struct {
	// Code is a unique error identifier (e.g., "H100").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HtmlifyError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error.
func (e *HtmlifyError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion sets the suggestion.
func (e *HtmlifyError) WithSuggestion(s string) *HtmlifyError {
	e.Suggestion = s
	return e
}

// WithDetail sets the detail text.
func (e *HtmlifyError) WithDetail(d string) *HtmlifyError {
	e.Detail = d
	return e
}

// Wrap sets the underlying error.
func (e *HtmlifyError) Wrap(err error) *HtmlifyError {
	e.Wrapped = err
	return e
}

// New creates an HtmlifyError from a registered error code.
func New(code string) *HtmlifyError {
	template, ok := registry[code]
	if !ok {
		return &HtmlifyError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &HtmlifyError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new HtmlifyError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *HtmlifyError {
	return &HtmlifyError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an HtmlifyError. Errors that already
// are HtmlifyErrors are returned unchanged.
func FromError(err error, code string) *HtmlifyError {
	if err == nil {
		return nil
	}
	if he, ok := err.(*HtmlifyError); ok {
		return he
	}
	return New(code).Wrap(err)
}
