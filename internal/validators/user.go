package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

// Field names accepted by [UserValidator].
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldOTP      = "otp"
)

const (
	// bcrypt ignores everything after the 72nd byte.
	maxPasswordBytes = 72
	maxUsernameRunes = 64
)

// UserValidator checks account request bodies. It accepts
// [models.OTPRequest], [models.RegisterRequest] and [models.LoginRequest],
// as values or pointers.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OTPRequest:
		return v.validateOTPRequest(value, fields...)
	case *models.OTPRequest:
		return v.validateOTPRequest(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateOTPRequest(request models.OTPRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldOTP}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(request.Username) == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(request.Username) > maxUsernameRunes {
				return ErrUsernameTooLong
			}
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
			if len(request.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldOTP:
			if strings.TrimSpace(request.OTP) == "" {
				return ErrEmptyOTP
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest only checks presence. A malformed email simply never
// matches an account.
func (v *UserValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare address only: display names and angle
// brackets are rejected.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	return nil
}
