package service

import (
	"context"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

type appInfoService struct {
	appVersion  string
	pinger      store.Pinger
	storageKind string

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version, falling back to the linker-injected
// build version when the config leaves it empty.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, pinger store.Pinger, storageKind string, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	return &appInfoService{
		appVersion:  version,
		pinger:      pinger,
		storageKind: storageKind,
		logger:      logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health pings storage. A failed ping reports HealthStatusUnavailable.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	response := models.HealthResponse{
		Status:  HealthStatusOK,
		Version: s.appVersion,
		Storage: s.storageKind,
	}

	if s.pinger == nil {
		return response
	}

	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "appInfoService.Health").Msg("storage ping failed")
		response.Status = HealthStatusUnavailable
	}

	return response
}
