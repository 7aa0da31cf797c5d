// Package server runs the HTTP server of the application.
//
// It owns the server lifecycle: binding the listener, serving, and
// graceful shutdown bounded by the configured timeout once the run
// context is cancelled.
package server
