// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tokens

import "errors"

// Rejection kinds returned by [Manager.Verify]. They are distinguishable so
// callers can answer with different messages.
var (
	// ErrTokenMalformed covers every token that cannot be parsed or whose
	// signature, algorithm, issuer or subject does not check out.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenExpired is returned for a correctly signed token whose "exp"
	// claim has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrInvalidIssueParams is returned by Issue when the manager or the
	// subject is not usable for signing.
	ErrInvalidIssueParams = errors.New("invalid params for issuing token")
)
