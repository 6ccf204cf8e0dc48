package models

import "time"

// User is a registered account. Accounts are never edited after creation,
// only deleted.
type User struct {
	// UserID is the storage-assigned identifier. It is the subject of every
	// session token issued to the user.
	UserID int64 `json:"-"`

	// Username is the public display name shown as the author of posts.
	Username string `json:"username"`

	// Email is unique across all accounts and is the login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. The plaintext
	// password is never stored.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
