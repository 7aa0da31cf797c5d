// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the cpoint REST API.
//
// [ServerAdapter] hides the transport from the command-line client. The
// HTTP implementation ([NewHTTPServerAdapter]) is built on resty.
//
// Failure responses are mapped to the sentinel errors in errors.go so that
// callers can branch with [errors.Is] (e.g. [ErrUnauthorized] for 401,
// [ErrTooManyRequests] for 429) while [*APIError] keeps the server's
// message for display.
package adapter

import (
	"context"

	"github.com/MKhiriev/cpoint/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the cpoint server.
// Implementations attach the bearer token to gated requests and map
// failure responses to the errors of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent gated
	// requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "" if none.
	Token() string

	// Register creates an account. On success the issued token is stored
	// via SetToken and the public user is returned.
	Register(ctx context.Context, request models.RegisterRequest) (models.UserView, error)

	// Login exchanges credentials for a token, stored via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.UserView, error)

	// Me returns the user owning the current token.
	Me(ctx context.Context) (models.UserView, error)

	// UpdateProfile changes the names of the current user.
	UpdateProfile(ctx context.Context, request models.ProfileUpdateRequest) (models.UserView, error)

	// Logout notifies the server and forgets the token, even if the server
	// rejected it.
	Logout(ctx context.Context) error

	// Health reports server liveness.
	Health(ctx context.Context) (models.Response, error)
}
