// Package integration holds end-to-end tests that run the tracker behind its
// real gRPC and HTTP transports.
package integration
