// Package http implements the HTTP transport layer of the notes server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as panic recovery, request tracing,
// access logging, CORS, compression and token authentication are handled in
// this package before requests are delegated to the service layer.
package http
