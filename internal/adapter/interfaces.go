// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

// Package adapter delivers one-time codes to users.
//
// The service layer depends only on [Notifier]. Two implementations ship
// with the package: an HTTP mail relay client built on resty
// ([NewRelayNotifier]) and a log-only notifier for local development
// ([NewLogNotifier]). [NewNotifier] picks one from the mailer config.
//
// Relay failures are mapped by mapHTTPError to [ErrDeliveryFailed] so callers
// can use [errors.Is] regardless of the status code.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Notifier sends a one-time code to an email address.
type Notifier interface {
	// SendOTP delivers code to email. An error means the user did not get
	// the code and the issuing operation must be rolled back.
	SendOTP(ctx context.Context, email, code string) error
}
