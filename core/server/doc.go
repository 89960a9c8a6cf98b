// Package server holds the HTTP server configuration.
//
// The start command owns the server lifecycle; this package only defines the
// settings it reads: listen port, API key, body limit and shutdown timeout.
// An empty API key leaves the API unauthenticated, which is meant for local use.
package server
