// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

// Package validators checks request bodies before they reach storage.
//
// Services hold a Validator per request family: [UserValidator] for the OTP,
// registration and login bodies and [PostValidator] for post creation and
// edits. Errors wrap [ErrMissingField], [ErrInvalidEmail],
// [ErrInvalidPostID] or [ErrBlankKeyword] so callers can map them to a
// client-facing class.
package validators

import "context"

type Validator interface {
	// Validate checks obj. When fields is empty every field of obj is
	// checked; otherwise only the named ones are.
	Validate(ctx context.Context, obj any, fields ...string) error
}
