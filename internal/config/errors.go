package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or a weak bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMailerConfigs indicates invalid mail relay settings
	// (for example, a relay URL without a sender address).
	ErrInvalidMailerConfigs = errors.New("invalid mailer configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative purge interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
