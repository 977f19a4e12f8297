// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Arteiii

// Package adapter provides the client side of the authly HTTP surface.
//
// The primary abstraction is [ServerProbe], which checks that a running
// server answers its landing page and link redirects as expected. It backs
// the authly-probe command used for container health checks.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrRequestTimeout] for 408).
package adapter

import "context"

// ServerProbe checks the public HTTP surface of an authly server.
type ServerProbe interface {
	// Index fetches the landing page and verifies that it is served as HTML
	// with status 200.
	Index(ctx context.Context) error

	// Link requests path without following redirects and returns the
	// Location of the 301 response.
	Link(ctx context.Context, path string) (string, error)

	// Check runs Index and verifies every link redirect against its
	// expected target. All mismatches are joined into the returned error.
	Check(ctx context.Context) error
}
