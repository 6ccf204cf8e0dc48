package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/service"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"missing fields wins over generic invalid", fmt.Errorf("%w: %w", service.ErrMissingFields, validators.ErrEmptyEmail), http.StatusBadRequest, "All fields are required"},
		{"invalid email", service.ErrInvalidEmail, http.StatusBadRequest, "Invalid email"},
		{"generic invalid", fmt.Errorf("%w: x", service.ErrInvalidDataProvided), http.StatusBadRequest, "Invalid data provided"},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"token", fmt.Errorf("%w: expired", service.ErrInvalidToken), http.StatusForbidden, "Invalid or expired token"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"not found", fmt.Errorf("%w: %w", service.ErrNotFound, store.ErrPostNotFound), http.StatusNotFound, "Not found"},
		{"store post not found", store.ErrPostNotFound, http.StatusNotFound, "Post not found"},
		{"otp", service.ErrInvalidOTP, http.StatusBadRequest, "Invalid OTP"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		{"low level store error is hidden", store.ErrExecutingQuery, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
