// Package server runs the application's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling, graceful
// shutdown bounded by the configured timeout and release of the storage
// connections once the last request has drained.
package server
