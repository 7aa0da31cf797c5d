package service

import (
	"context"
	"time"

	"github.com/MKhiriev/cpoint/internal/config"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.BuildInfo
	now        func() time.Time

	logger *logger.Logger
}

// NewAppInfoService builds an [AppInfoService]. A version configured in cfg
// takes precedence over the one linked into the binary.
func NewAppInfoService(cfg config.App, buildInfo models.BuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" || version == models.NotAvailable {
		version = buildInfo.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		buildInfo:  buildInfo,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	info := s.buildInfo
	info.Version = s.appVersion
	return info
}

// Now returns the server time in UTC.
func (s *appInfoService) Now(ctx context.Context) time.Time {
	return s.now().UTC()
}
