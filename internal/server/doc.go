// Package server wires and runs the drive emulator's transport server.
//
// It provides orchestration for the HTTP server lifecycle, including startup,
// signal handling, and graceful shutdown.
package server
