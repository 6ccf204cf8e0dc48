// Package server runs the HTTP server and the background workers.
//
// It handles startup, stop signals and graceful shutdown: on SIGINT,
// SIGTERM or SIGQUIT the listener stops accepting connections, in-flight
// requests get a bounded time to finish and workers are cancelled.
package server
