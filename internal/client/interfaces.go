// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand named by args[0] and blocks until it
	// completes.
	Run(ctx context.Context, args []string) error
}

// TokenStore persists the bearer token between client invocations.
type TokenStore interface {
	// Load returns the stored token, or "" if none is stored.
	Load() (string, error)
	// Save replaces the stored token.
	Save(token string) error
	// Delete removes the stored token. Deleting a missing token is not an error.
	Delete() error
}

// Prompter reads interactive input.
type Prompter interface {
	Line(label string) (string, error)
	// Password reads a secret without echoing it.
	Password(label string) (string, error)
}
