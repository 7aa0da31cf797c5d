package service

import (
	"context"
	"time"

	"github.com/MKhiriev/cpoint/models"
)

// AuthService runs the account flows: registration, login, token
// resolution and profile edits.
type AuthService interface {
	// Register creates an account and logs it in.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)

	// Login checks credentials and issues a fresh token. Earlier tokens of
	// the same user stay valid.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)

	// Authenticate verifies rawToken and resolves its subject to a live
	// user.
	Authenticate(ctx context.Context, rawToken string) (models.User, error)

	GetUser(ctx context.Context, userID string) (models.User, error)

	// UpdateProfile changes the names of userID. Email and password are
	// immutable here.
	UpdateProfile(ctx context.Context, userID string, request models.ProfileUpdateRequest) (models.User, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// AppInfoService reports build metadata and liveness.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
	Now(ctx context.Context) time.Time
}
