// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the cpoint API.
//
// The server writes them into the "message" field of the JSON response
// envelope; the command-line client compares against some of them to
// react to specific outcomes. Keeping them in one place keeps the wording
// identical on both sides.
package app

// Success messages.
const (
	MsgUserRegistered   = "User registered successfully"
	MsgLoginSuccessful  = "Login successful"
	MsgProfileUpdated   = "Profile updated successfully"
	MsgLogoutSuccessful = "Logout successful"

	// MsgHealthy is the message of GET /api/health.
	MsgHealthy = "CPoint API is running"
)

// Failure messages.
const (
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidCredentials is returned for an unknown email and for a
	// wrong password alike.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgAccessTokenRequired is returned when the Authorization header is
	// missing or does not carry a Bearer token.
	MsgAccessTokenRequired = "Access token required"

	MsgInvalidToken      = "Invalid token"
	MsgTokenExpired      = "Token expired"
	MsgTokenUserNotFound = "Invalid token - user not found"

	MsgTooManyAttempts = "Too many authentication attempts, please try again later"
	MsgRouteNotFound   = "Route not found"
	MsgInvalidJSON     = "Invalid JSON was passed"
	MsgRequestTooLarge = "Request entity too large"

	// MsgInternalServerError hides the cause of any unexpected failure.
	MsgInternalServerError = "Internal server error"
)
