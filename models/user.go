// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user (UUIDv7).
	// It is immutable after creation.
	ID string `json:"id"`

	// Email is the unique, lower-cased e-mail address used to log in.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It is never serialised and never echoed back to clients.
	PasswordHash string `json:"-"`

	// FirstName is the user's given name.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every profile update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserView is the public projection of a [User] returned by the API.
// Timestamps are optional because different endpoints expose different ones.
type UserView struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// View returns the projection of u without any timestamps.
func (u User) View() UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// ViewWithCreatedAt returns the projection of u including CreatedAt.
func (u User) ViewWithCreatedAt() UserView {
	v := u.View()
	createdAt := u.CreatedAt
	v.CreatedAt = &createdAt
	return v
}

// ViewWithUpdatedAt returns the projection of u including UpdatedAt.
func (u User) ViewWithUpdatedAt() UserView {
	v := u.View()
	updatedAt := u.UpdatedAt
	v.UpdatedAt = &updatedAt
	return v
}
