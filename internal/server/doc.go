// Package server runs the application's HTTP transport.
//
// It binds the listener up front so that bind failures surface as errors,
// serves until the context is cancelled or a stop signal arrives, and then
// shuts the server down gracefully.
package server
