// Package utils provides general-purpose helpers shared by the server and
// the probe: trace ID generation and HTTP client construction.
package utils
