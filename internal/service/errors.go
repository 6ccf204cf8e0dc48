package service

import (
	"errors"
	"fmt"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/validators"
)

// Validation errors. Each validator failure is wrapped by one of these.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrMissingFields       = fmt.Errorf("%w: required fields are missing", ErrInvalidDataProvided)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email", ErrInvalidDataProvided)
	ErrInvalidPostID       = fmt.Errorf("%w: invalid post id", ErrInvalidDataProvided)
	ErrInvalidReaction     = fmt.Errorf("%w: unknown reaction", ErrInvalidDataProvided)
)

// Identity and authorisation errors.
var (
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidToken covers every token verification failure: bad signature,
	// wrong issuer, expiry or malformed input.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrForbidden = errors.New("forbidden")
)

// Registration errors.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrOTPNotFound   = errors.New("otp expired or not found")
	ErrInvalidOTP    = errors.New("invalid otp")
)

var (
	ErrNotFound = errors.New("not found")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrOTPDeliveryFailed   = errors.New("otp delivery failed")
	ErrHashingPassword     = errors.New("error hashing password")
)

// validationError maps a validator failure to the service error class the
// transport layer understands, keeping the original error in the chain.
func validationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrMissingField):
		return fmt.Errorf("%w: %w", ErrMissingFields, err)
	case errors.Is(err, validators.ErrInvalidEmail):
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	case errors.Is(err, validators.ErrInvalidPostID):
		return fmt.Errorf("%w: %w", ErrInvalidPostID, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
