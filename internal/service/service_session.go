package service

import (
	"context"
	"fmt"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

type sessionService struct {
	signKey  string
	issuer   string
	duration time.Duration
	clock    utils.Clock

	logger *logger.Logger
}

func NewSessionService(signKey, issuer string, duration time.Duration, clock utils.Clock, logger *logger.Logger) SessionService {
	return &sessionService{
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
		clock:    clock,
		logger:   logger,
	}
}

// Issue signs a token for user that expires after the configured duration.
// Tokens are not refreshed on use.
func (s *sessionService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, user, s.clock.NowUtc(), s.duration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.Issue").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks signature, issuer and expiry of tokenString. Every failure is
// reported as ErrInvalidToken.
func (s *sessionService) Verify(ctx context.Context, tokenString string) (models.Identity, error) {
	identity, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.clock.NowUtc())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "sessionService.Verify").Msg("token rejected")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return identity, nil
}
