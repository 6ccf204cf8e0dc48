// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

package http

import "errors"

// Sentinel errors used by the auth middleware when parsing the
// "Authorization" header. All of them are answered with 401.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header does not use
	// the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the Bearer scheme is present but the
	// token itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

var (
	ErrInvalidJSON   = errors.New("invalid JSON was passed")
	ErrInvalidPostID = errors.New("invalid post id")
)
