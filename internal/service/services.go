package service

import (
	"fmt"

	"github.com/MKhiriev/cpoint/internal/config"
	"github.com/MKhiriev/cpoint/internal/crypto"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/internal/store"
	"github.com/MKhiriev/cpoint/internal/tokens"
	"github.com/MKhiriev/cpoint/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages. AuthService is
// returned already wrapped with input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.BuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(
		storages.UserRepository,
		crypto.NewBcryptHasher(cfg.App.BcryptCost),
		tokens.NewJWTManager(cfg.App),
		logger,
	)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		AppInfoService: appInfoService,
	}, nil
}
