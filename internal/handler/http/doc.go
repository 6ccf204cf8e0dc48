// Package http implements the REST transport of the WittyWhiz backend.
//
// It exposes route wiring, request handlers and middleware. Authentication,
// request tracing, access logging, CORS and response compression are handled
// here before requests reach the service layer. Every error body has the
// shape {"message": "..."}.
package http
