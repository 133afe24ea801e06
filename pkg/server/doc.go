// Package server provides the htmlify preview server.
//
// The server holds one current document and exposes it over HTTP:
//
//	GET  /          full page with the document and the live script
//	POST /render    render a tree document to markup
//	PUT  /document  replace the current document
//	GET  /live      WebSocket feed of document replacements
//	GET  /healthz   liveness probe
//	GET  /metrics   Prometheus metrics
//
// Live clients receive JSON messages of the form
//
//	{"type": "replace", "html": "..."}
//
// whenever the document changes. The page script swaps the content of the
// #htmlify-root element with the received HTML.
package server
