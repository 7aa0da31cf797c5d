// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side password hashing primitives.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable digests and checks
// candidates against them.
//
// Hash is randomized: the same plaintext yields a different digest on every
// call because a fresh salt is embedded in each digest. Verify re-derives
// the digest with that embedded salt and compares in constant time.
type PasswordHasher interface {
	// Hash returns the salted digest of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed digest
	// is a mismatch, never an error.
	Verify(plaintext, digest string) bool
}
