package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/mock"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

func TestGetAppVersion_ConfiguredVersionWins(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "3.1.4"}, models.NewAppBuildInfo("9.9.9", "", ""), nil, "memory", logger.Nop())

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_FallsBackToBuildVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("v1.2.3-beta+build.42", "", ""), nil, "memory", logger.Nop())

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestHealth(t *testing.T) {
	t.Run("storage reachable", func(t *testing.T) {
		pinger := mock.NewMockPinger(gomock.NewController(t))
		pinger.EXPECT().Ping(gomock.Any()).Return(nil)
		svc := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, pinger, "postgres", logger.Nop())

		assert.Equal(t, models.HealthResponse{Status: HealthStatusOK, Version: "1.0.0", Storage: "postgres"}, svc.Health(context.Background()))
	})

	t.Run("storage down", func(t *testing.T) {
		pinger := mock.NewMockPinger(gomock.NewController(t))
		pinger.EXPECT().Ping(gomock.Any()).Return(errors.New("conn refused"))
		svc := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, pinger, "postgres", logger.Nop())

		assert.Equal(t, HealthStatusUnavailable, svc.Health(context.Background()).Status)
	})

	t.Run("memory store with cancelled context", func(t *testing.T) {
		storages := store.NewMemoryStorages()
		svc := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, storages.Pinger, storages.Kind, logger.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		health := svc.Health(ctx)
		assert.Equal(t, HealthStatusUnavailable, health.Status)
		assert.Equal(t, "memory", health.Storage)
	})
}
