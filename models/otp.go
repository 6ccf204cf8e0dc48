package models

import "time"

// OTPEntry is the single live one-time code issued for an email address.
// Issuing a new code for the same email replaces the previous entry.
type OTPEntry struct {
	Email     string    `json:"email"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the entry is no longer usable at now.
// An entry is still valid at exactly ExpiresAt.
func (e OTPEntry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
