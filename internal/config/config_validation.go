// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer      = "wittywhiz"
	defaultTokenDuration    = 24 * time.Hour
	defaultPasswordHashCost = bcrypt.DefaultCost
	defaultOTPLength        = 6
	defaultOTPTTL           = 5 * time.Minute
	defaultHTTPAddress      = ":5000"
	defaultRequestTimeout   = 30 * time.Second
	defaultMailerTimeout    = 10 * time.Second

	minOTPLength = 4
	maxOTPLength = 9
)

var defaultAllowedOrigins = []string{"*"}

// applyDefaults fills every field left at its zero value by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = defaultPasswordHashCost
	}
	if cfg.App.OTPLength == 0 {
		cfg.App.OTPLength = defaultOTPLength
	}
	if cfg.App.OTPTTL == 0 {
		cfg.App.OTPTTL = defaultOTPTTL
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = defaultAllowedOrigins
	}
	if cfg.Mailer.RelayURL != "" && cfg.Mailer.Timeout == 0 {
		cfg.Mailer.Timeout = defaultMailerTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.App.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case cfg.App.TokenDuration < 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case cfg.App.PasswordHashCost < bcrypt.DefaultCost || cfg.App.PasswordHashCost > bcrypt.MaxCost:
		return fmt.Errorf("%w: password hash cost must be within [%d, %d]", ErrInvalidAppConfigs, bcrypt.DefaultCost, bcrypt.MaxCost)
	case cfg.App.OTPLength < minOTPLength || cfg.App.OTPLength > maxOTPLength:
		return fmt.Errorf("%w: otp length must be within [%d, %d]", ErrInvalidAppConfigs, minOTPLength, maxOTPLength)
	case cfg.App.OTPTTL < 0:
		return fmt.Errorf("%w: otp ttl must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Mailer.RelayURL != "" && cfg.Mailer.From == "" {
		return fmt.Errorf("%w: sender address is required with a relay url", ErrInvalidMailerConfigs)
	}

	if cfg.Workers.OTPPurgeInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
