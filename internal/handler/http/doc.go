// Package http implements the HTTP transport layer of the portal backend.
//
// It wires the chi router, the collection, document, login, registration
// and session handlers, and the middleware chain: panic recovery, request
// tracing, access logging, Prometheus metrics, response compression and the
// optional session guard. Every JSON response carries the same headers and
// every error body has the shape {"message": "..."}.
package http
