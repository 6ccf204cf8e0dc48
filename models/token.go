// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every session token.
//
// The standard "sub" claim holds the user ID in base 10; Email duplicates the
// account email so that handlers can resolve the caller without a lookup.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// UserID parses the "sub" claim as an int64 user identifier.
func (c *Claims) UserID() (int64, error) {
	subject, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting subject from claims: %w", err)
	}
	if subject == "" {
		return 0, fmt.Errorf("empty subject claim")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject to user id: %w", err)
	}

	return userID, nil
}

// Token is a freshly signed session token.
type Token struct {
	// SignedString is the compact JWS form sent to clients as the bearer
	// credential.
	SignedString string `json:"-"`

	// ExpiresAt is the absolute expiry embedded in the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
