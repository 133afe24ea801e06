package dom

import "errors"

// ErrUnavailable is returned when the host has no window, document or body,
// or when the node could not be materialized.
var ErrUnavailable = errors.New("dom: host unavailable")
