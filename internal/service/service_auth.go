package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/cpoint/internal/crypto"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/store"
	"github.com/MKhiriev/cpoint/internal/tokens"
	"github.com/MKhiriev/cpoint/internal/validators"
	"github.com/MKhiriev/cpoint/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and token
// resolution using a UserRepository for persistence, a PasswordHasher for
// digests and a token Manager for bearer tokens.
//
// Input shape is not checked here; see [NewAuthValidationService].
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks password digests.
	hasher crypto.PasswordHasher

	// tokens issues and verifies bearer tokens.
	tokens tokens.Manager

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger

	// unknownUserDigest is compared against on logins for unknown emails so
	// they cost as much as a wrong password. Hashed on first use.
	unknownUserDigest     string
	unknownUserDigestOnce sync.Once
}

// unknownUserPassword is the plaintext behind unknownUserDigest.
const unknownUserPassword = "cpoint-unknown-user"

// NewAuthService constructs a new AuthService wired to the given
// collaborators.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenManager tokens.Manager, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokenManager,
		logger:         logger,
	}
}

// Register creates a new user account and issues its first token.
//
// The existence check gives the common duplicate case a clean answer; the
// unique index behind CreateUser settles concurrent registrations of the
// same email, and both paths end in ErrDuplicateEmail.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	exists, err := a.userRepository.EmailExists(ctx, request.Email)
	if err != nil {
		log.Err(err).Msg("email existence check failed")
		return models.AuthResult{}, fmt.Errorf("email existence check failed: %w", err)
	}
	if exists {
		return models.AuthResult{}, ErrDuplicateEmail
	}

	digest, err := a.hasher.Hash(request.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, &validators.FieldError{
				Field:   validators.FieldPassword,
				Message: err.Error(),
			})
		}
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		PasswordHash: digest,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.AuthResult{}, ErrDuplicateEmail
		}
		log.Err(err).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueToken(user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token creation after registration failed")
		return models.AuthResult{}, err
	}

	return models.AuthResult{Token: token, User: user}, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both end in ErrInvalidCredentials,
// so the response does not reveal whether the email is registered.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.hasher.Verify(request.Password, a.dummyDigest(ctx))
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(request.Password, user.PasswordHash) {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	token, err := a.issueToken(user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token creation after login failed")
		return models.AuthResult{}, err
	}

	return models.AuthResult{Token: token, User: user}, nil
}

// dummyDigest returns a digest at the hasher's cost that no real password
// is checked against.
func (a *authService) dummyDigest(ctx context.Context) string {
	a.unknownUserDigestOnce.Do(func() {
		digest, err := a.hasher.Hash(unknownUserPassword)
		if err != nil {
			logger.FromContext(ctx).Err(err).Msg("hashing unknown-user digest failed")
			return
		}
		a.unknownUserDigest = digest
	})
	return a.unknownUserDigest
}

// Authenticate verifies rawToken and loads the user named by its subject.
//
// Returns ErrMissingToken for an empty token, ErrInvalidToken for a token
// that fails verification, ErrTokenExpired for a correctly signed but
// expired token, and ErrInvalidToken wrapped with ErrTokenSubjectNotFound
// when the user is gone.
func (a *authService) Authenticate(ctx context.Context, rawToken string) (models.User, error) {
	if rawToken == "" {
		return models.User{}, ErrMissingToken
	}

	subject, err := a.tokens.Verify(rawToken)
	if err != nil {
		if errors.Is(err, tokens.ErrTokenExpired) {
			return models.User{}, ErrTokenExpired
		}
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.User{}, ErrInvalidToken
	}

	user, err := a.GetUser(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenSubjectNotFound)
		}
		return models.User{}, err
	}

	return user, nil
}

// GetUser loads a user by ID. A missing user is reported as
// store.ErrUserNotFound.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, err
		}
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateProfile writes the new names and returns the updated user.
func (a *authService) UpdateProfile(ctx context.Context, userID string, request models.ProfileUpdateRequest) (models.User, error) {
	user, err := a.userRepository.UpdateProfile(ctx, models.User{
		ID:        userID,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenSubjectNotFound)
		}
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user, nil
}

func (a *authService) issueToken(user models.User) (models.Token, error) {
	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
