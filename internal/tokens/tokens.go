// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tokens

//go:generate mockgen -source=tokens.go -destination=../mock/token_manager_mock.go -package=mock

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cpoint/internal/config"
	"github.com/MKhiriev/cpoint/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager issues tokens bound to a subject and verifies presented tokens.
type Manager interface {
	// Issue creates a signed token for subject that expires after the
	// configured lifetime.
	Issue(subject string) (models.Token, error)

	// Verify checks the signature, issuer and expiry of tokenString and
	// returns its subject. Failures wrap [ErrTokenMalformed] or
	// [ErrTokenExpired].
	Verify(tokenString string) (string, error)
}

// Option customises a manager built by [NewJWTManager].
type Option func(*jwtManager)

// WithClock replaces time.Now as the source of the current time for both
// issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(m *jwtManager) {
		if now != nil {
			m.now = now
		}
	}
}

type jwtManager struct {
	signKey  []byte
	issuer   string
	duration time.Duration
	now      func() time.Time
}

// NewJWTManager builds a [Manager] signing with HMAC-SHA256 using the key,
// issuer and lifetime from cfg.
func NewJWTManager(cfg config.App, opts ...Option) Manager {
	m := &jwtManager{
		signKey:  []byte(cfg.TokenSignKey),
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Issue implements [Manager].
func (m *jwtManager) Issue(subject string) (models.Token, error) {
	if subject == "" || len(m.signKey) == 0 || m.duration <= 0 {
		return models.Token{}, ErrInvalidIssueParams
	}

	now := m.now()
	expiresAt := now.Add(m.duration)
	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    m.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		Subject:      subject,
		IssuedAt:     claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// Verify implements [Manager].
func (m *jwtManager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return m.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return "", fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrTokenMalformed)
	}

	return claims.Subject, nil
}
