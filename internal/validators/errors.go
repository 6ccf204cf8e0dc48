package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingField is wrapped by every "field is empty" error so callers
	// can treat them as one class.
	ErrMissingField = errors.New("required field is missing")

	ErrEmptyUsername = fmt.Errorf("%w: username", ErrMissingField)
	ErrEmptyEmail    = fmt.Errorf("%w: email", ErrMissingField)
	ErrEmptyPassword = fmt.Errorf("%w: password", ErrMissingField)
	ErrEmptyOTP      = fmt.Errorf("%w: otp", ErrMissingField)
	ErrEmptyTitle    = fmt.Errorf("%w: title", ErrMissingField)
	ErrEmptyContent  = fmt.Errorf("%w: content", ErrMissingField)
	ErrEmptyKeywords = fmt.Errorf("%w: keywords", ErrMissingField)

	ErrInvalidEmail    = errors.New("invalid email address")
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
	ErrUsernameTooLong = errors.New("username is too long")
	ErrInvalidPostID   = errors.New("invalid post id")
	ErrBlankKeyword    = errors.New("keywords must not contain blank entries")
)
