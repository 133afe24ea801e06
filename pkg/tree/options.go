package tree

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

type decodeOptions struct {
	policy   *bluemonday.Policy
	markdown goldmark.Markdown
}

// Option configures decoding.
type Option func(*decodeOptions)

// WithSanitizer runs text and markdown output through policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(o *decodeOptions) {
		o.policy = policy
	}
}

// WithUGCSanitizer sanitizes with bluemonday's user generated content policy.
func WithUGCSanitizer() Option {
	return WithSanitizer(bluemonday.UGCPolicy())
}

// WithMarkdown sets the markdown converter. Defaults to goldmark.New().
func WithMarkdown(md goldmark.Markdown) Option {
	return func(o *decodeOptions) {
		o.markdown = md
	}
}
