// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Arteiii

package server

import "errors"

var (
	// ErrListen wraps failures to bind the configured address.
	ErrListen = errors.New("error binding listener")

	errEmptyAddress = errors.New("no server address configured")
)
