// Package service holds the business rules of the WittyWhiz backend:
// OTP-gated registration, password login, session tokens, post management
// and the like/dislike toggle. Services depend on store repositories and
// never on transport types.
package service

import (
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/adapter"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

type Services struct {
	AuthService       AuthService
	OTPService        OTPService
	SessionService    SessionService
	PostService       PostService
	EngagementService EngagementService
	AppInfoService    AppInfoService
}

func NewServices(
	storages *store.Storages,
	notifier adapter.Notifier,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	clock utils.Clock,
	logger *logger.Logger,
) *Services {
	otpService := NewOTPService(storages.OTPRepository, storages.UserRepository, notifier, cfg.App.OTPLength, cfg.App.OTPTTL, clock, logger)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, otpService, cfg.App.PasswordHashCost, logger),
		OTPService:        otpService,
		SessionService:    NewSessionService(cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.TokenDuration, clock, logger),
		PostService:       NewPostService(storages.PostRepository, storages.UserRepository, logger),
		EngagementService: NewEngagementService(storages.PostRepository, storages.UserRepository, logger),
		AppInfoService:    NewAppInfoService(cfg.App, buildInfo, storages.Pinger, storages.Kind, logger),
	}
}
