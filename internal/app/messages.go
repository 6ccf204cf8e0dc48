// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

// Package app holds the response wording shared by the WittyWhiz HTTP
// handlers and middleware.
//
// Every Msg* constant is written verbatim into the {"message": ...} body of
// a response. Clients match on some of them, so they are part of the API.
package app

// Success messages.
const (
	MsgOTPSent         = "OTP sent to email"
	MsgUserRegistered  = "User registered successfully"
	MsgLoginSuccessful = "Login successful"
	MsgAccountDeleted  = "Account deleted successfully"
	MsgPostCreated     = "Post created successfully"
	MsgPostUpdated     = "Post updated successfully"
	MsgPostDeleted     = "Post deleted successfully"
)

// Client error messages.
const (
	MsgInvalidJSON         = "Invalid JSON was passed"
	MsgInvalidPostID       = "Invalid post id"
	MsgMissingFields       = "All fields are required"
	MsgInvalidEmail        = "Invalid email"
	MsgUnknownReaction     = "Unknown reaction"
	MsgInvalidDataProvided = "Invalid data provided"

	MsgUserAlreadyExists = "User already exists"
	MsgOTPNotFound       = "OTP expired or not found"
	MsgInvalidOTP        = "Invalid OTP"

	// MsgInvalidCredentials covers both an unknown email and a wrong
	// password.
	MsgInvalidCredentials = "Invalid credentials"
	MsgAuthRequired       = "Authentication required"
	MsgInvalidToken       = "Invalid or expired token"
	MsgForbidden          = "Forbidden"
	MsgNotFound           = "Not found"
	MsgUserNotFound       = "User not found"
	MsgPostNotFound       = "Post not found"
	MsgRouteNotFound      = "Route not found"
	MsgMethodNotAllowed   = "Method not allowed"
)

// Server error messages.
const (
	MsgOTPDeliveryFailed   = "Error sending OTP"
	MsgInternalServerError = "Internal server error"
)
