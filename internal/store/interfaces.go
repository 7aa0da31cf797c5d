package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/cpoint/models"
)

// UserRepository is the credential store. Email arguments are matched
// case-insensitively; implementations store them lower-cased.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record with its
	// server-assigned ID and timestamps. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrUserNotFound] when no account uses email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when no account has id.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	EmailExists(ctx context.Context, email string) (bool, error)

	// UpdateProfile overwrites first and last name of user.ID, refreshes
	// updated_at and returns the updated record. Email and password digest
	// are left untouched.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
