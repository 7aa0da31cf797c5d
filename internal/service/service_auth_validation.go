package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/cpoint/internal/validators"
	"github.com/MKhiriev/cpoint/models"
)

// AuthValidationService checks request shape before handing the call to
// the wrapped AuthService, so no store access happens for malformed input.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.Register(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, rawToken string) (models.User, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return models.User{}, ErrMissingToken
	}

	return v.inner.Authenticate(ctx, rawToken)
}

func (v *AuthValidationService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *AuthValidationService) UpdateProfile(ctx context.Context, userID string, request models.ProfileUpdateRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.UpdateProfile(ctx, userID, request)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
