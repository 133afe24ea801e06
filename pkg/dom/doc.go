// Package dom materializes markup nodes into live DOM elements.
//
// The host environment is reached through the narrow Host, Window, Document
// and Element interfaces. Two hosts are provided: htmldoc, an in-memory
// document backed by golang.org/x/net/html, and jsdom, the browser DOM for
// js/wasm builds.
//
// Materialization is best effort. Any failure (no window, no document,
// element creation or attribute rejected by the host) makes the whole
// operation return an absent result. Mutations already applied to the host
// are not rolled back.
package dom
