package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/validators"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

// authService handles account registration, password login and account
// deletion. Passwords are stored as bcrypt hashes only.
type authService struct {
	userRepository store.UserRepository
	otpService     OTPService
	validator      validators.Validator

	// hashCost is the bcrypt cost factor used for new hashes. Existing hashes
	// carry their own cost.
	hashCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. Registration is gated by
// otpService; a code is consumed only after the account is stored.
func NewAuthService(userRepository store.UserRepository, otpService OTPService, hashCost int, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		otpService:     otpService,
		validator:      validators.NewUserValidator(),
		hashCost:       hashCost,
		logger:         logger,
	}
}

// Register creates an account for a caller holding a valid one-time code.
//
// Returns the stored user or:
//   - ErrMissingFields / ErrInvalidEmail / ErrInvalidDataProvided on bad input.
//   - ErrOTPNotFound if no live code exists for the email.
//   - ErrInvalidOTP if the code does not match. The code stays usable.
//   - ErrAlreadyExists if the email is already registered.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("func", "authService.Register").Msg("invalid register request")
		return models.User{}, validationError(err)
	}

	if err := a.otpService.Verify(ctx, request.Email, request.OTP); err != nil {
		return models.User{}, err
	}

	_, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		return models.User{}, ErrAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "authService.Register").Msg("error looking up user by email")
		return models.User{}, fmt.Errorf("error looking up user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: string(hash),
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, ErrAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// the account exists at this point; a stale code expires on its own
	if err = a.otpService.Consume(ctx, request.Email); err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("error consuming otp after registration")
	}

	return user, nil
}

// Login checks an email and password pair. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, validationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		log.Debug().Int64("id", user.UserID).Str("func", "authService.Login").Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// DeleteAccount removes the account of the authenticated caller. The account
// is looked up by the token's user id, so a token that outlived its account
// cannot remove a newer account registered under the same email. Posts the
// user authored are kept.
func (a *authService) DeleteAccount(ctx context.Context, identity models.Identity) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, identity.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.DeleteAccount").Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	err = a.userRepository.DeleteUserByEmail(ctx, user.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.DeleteAccount").Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}
