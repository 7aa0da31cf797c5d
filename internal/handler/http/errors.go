// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrUserNotInContext is logged when a gated handler runs without the
	// user the gate should have attached.
	ErrUserNotInContext = errors.New("authenticated user is missing from request context")

	// ErrInvalidGzipBody is returned for a request announcing gzip
	// Content-Encoding whose body is not valid gzip.
	ErrInvalidGzipBody = errors.New("invalid gzip request body")

	// ErrTrailingJSON is logged when a request body holds more than one
	// JSON value.
	ErrTrailingJSON = errors.New("unexpected data after JSON body")
)
