package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/adapter"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/validators"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

// otpService keeps at most one live code per email. Codes expire after ttl
// and are deleted as soon as they are found expired.
type otpService struct {
	otpRepository  store.OTPRepository
	userRepository store.UserRepository
	notifier       adapter.Notifier
	validator      validators.Validator

	codeLength int
	ttl        time.Duration
	clock      utils.Clock

	logger *logger.Logger
}

func NewOTPService(
	otpRepository store.OTPRepository,
	userRepository store.UserRepository,
	notifier adapter.Notifier,
	codeLength int,
	ttl time.Duration,
	clock utils.Clock,
	logger *logger.Logger,
) OTPService {
	return &otpService{
		otpRepository:  otpRepository,
		userRepository: userRepository,
		notifier:       notifier,
		validator:      validators.NewUserValidator(),
		codeLength:     codeLength,
		ttl:            ttl,
		clock:          clock,
		logger:         logger,
	}
}

func (s *otpService) Issue(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.OTPRequest{Email: email}); err != nil {
		return validationError(err)
	}

	_, err := s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "otpService.Issue").Msg("error looking up user by email")
		return fmt.Errorf("error looking up user by email: %w", err)
	}

	previous, err := s.otpRepository.GetOTP(ctx, email)
	hadPrevious := err == nil
	if err != nil && !errors.Is(err, store.ErrOTPNotFound) {
		log.Err(err).Str("func", "otpService.Issue").Msg("error reading pending otp")
		return fmt.Errorf("error reading pending otp: %w", err)
	}

	code, err := utils.GenerateNumericCode(s.codeLength)
	if err != nil {
		log.Err(err).Str("func", "otpService.Issue").Msg("error generating otp")
		return fmt.Errorf("error generating otp: %w", err)
	}

	entry := models.OTPEntry{
		Email:     email,
		Code:      code,
		ExpiresAt: s.clock.NowUtc().Add(s.ttl),
	}
	if err = s.otpRepository.UpsertOTP(ctx, entry); err != nil {
		log.Err(err).Str("func", "otpService.Issue").Msg("error saving otp")
		return fmt.Errorf("error saving otp: %w", err)
	}

	if err = s.notifier.SendOTP(ctx, email, code); err != nil {
		log.Err(err).Str("func", "otpService.Issue").Str("email", email).Msg("error sending otp")
		s.rollback(ctx, email, previous, hadPrevious)
		return fmt.Errorf("%w: %w", ErrOTPDeliveryFailed, err)
	}

	return nil
}

// rollback restores the entry that was live before a failed Issue so that
// an undelivered code never replaces a delivered one.
func (s *otpService) rollback(ctx context.Context, email string, previous models.OTPEntry, hadPrevious bool) {
	log := logger.FromContext(ctx)

	var err error
	if hadPrevious {
		err = s.otpRepository.UpsertOTP(ctx, previous)
	} else {
		err = s.otpRepository.DeleteOTP(ctx, email)
	}
	if err != nil && !errors.Is(err, store.ErrOTPNotFound) {
		log.Err(err).Str("func", "otpService.rollback").Msg("error restoring pending otp")
	}
}

func (s *otpService) Verify(ctx context.Context, email, code string) error {
	log := logger.FromContext(ctx)

	entry, err := s.otpRepository.GetOTP(ctx, email)
	if errors.Is(err, store.ErrOTPNotFound) {
		return ErrOTPNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "otpService.Verify").Msg("error reading otp")
		return fmt.Errorf("error reading otp: %w", err)
	}

	if entry.Expired(s.clock.NowUtc()) {
		if err = s.otpRepository.DeleteOTP(ctx, email); err != nil && !errors.Is(err, store.ErrOTPNotFound) {
			log.Err(err).Str("func", "otpService.Verify").Msg("error deleting expired otp")
		}
		return ErrOTPNotFound
	}

	if subtle.ConstantTimeCompare([]byte(entry.Code), []byte(code)) != 1 {
		return ErrInvalidOTP
	}

	return nil
}

func (s *otpService) Consume(ctx context.Context, email string) error {
	err := s.otpRepository.DeleteOTP(ctx, email)
	if err != nil && !errors.Is(err, store.ErrOTPNotFound) {
		return fmt.Errorf("error consuming otp: %w", err)
	}
	return nil
}
