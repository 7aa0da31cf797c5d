// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
)

// ErrNoBearerToken is returned when an Authorization header is absent or
// does not carry a Bearer credential.
var ErrNoBearerToken = errors.New("authorization header does not carry a bearer token")

const bearerScheme = "bearer"

// ParseBearerToken extracts the credential from an "Authorization: Bearer
// <token>" header value. The scheme is matched case-insensitively and the
// value must consist of exactly two space-separated parts.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrNoBearerToken
	}
	return parts[1], nil
}
