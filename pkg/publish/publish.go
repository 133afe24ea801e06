// Package publish stores rendered markup on disk or in S3-compatible
// object storage.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/vango-dev/htmlify/pkg/markup"
)

// ContentType is attached to every published object.
const ContentType = "text/html; charset=utf-8"

// ErrInvalidKey is returned for empty keys or keys that escape the store root.
var ErrInvalidKey = errors.New("publish: invalid key")

// ErrUploadFailed is returned when the backend rejects the object.
var ErrUploadFailed = errors.New("publish: upload failed")

// Store is the interface for publishing backends.
type Store interface {
	// Put stores data under key and returns where it was written.
	Put(ctx context.Context, key string, data []byte) (location string, err error)
}

// Publish renders n with r and stores the result under key.
func Publish(ctx context.Context, store Store, key string, n markup.Node, r *markup.Renderer) (string, error) {
	if r == nil {
		r = markup.NewRenderer(markup.RendererConfig{})
	}
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, n); err != nil {
		return "", fmt.Errorf("publish: render: %w", err)
	}
	return store.Put(ctx, key, buf.Bytes())
}

// cleanKey normalizes key to a slash separated relative path.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	if key == "" {
		return "", ErrInvalidKey
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	cleaned := path.Clean("/" + key)
	if cleaned == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}
