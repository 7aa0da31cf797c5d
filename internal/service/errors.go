package service

import "errors"

// Failure taxonomy of the auth flow. Every error returned by [AuthService]
// matches one of these via [errors.Is]; anything else is internal.
var (
	// ErrInvalidInput wraps the [*validators.FieldError] describing the
	// first violated rule.
	ErrInvalidInput = errors.New("invalid input")

	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrMissingToken = errors.New("access token required")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenSubjectNotFound is returned wrapped together with
	// [ErrInvalidToken] when a well-formed token names a user that no
	// longer exists.
	ErrTokenSubjectNotFound = errors.New("token subject does not resolve to a user")
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
