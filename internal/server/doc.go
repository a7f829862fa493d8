// Package server runs the HTTP and gRPC listeners of the notes server.
//
// [NewServer] creates one listener per configured address. RunServer binds
// them, serves until the context ends or a termination signal arrives, and
// drains both before returning. While it runs, a background worker keeps the
// gRPC health status in step with the storage.
package server
