// Package server runs the HTTP and gRPC transports of the credential
// service.
//
// Both listeners are bound up front; they then serve until the caller's
// context ends or a stop signal arrives, and are shut down gracefully within
// the configured shutdown timeout.
package server
