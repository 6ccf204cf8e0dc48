package store

import (
	"context"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Emails are unique.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrUserNotFound when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// DeleteUserByEmail returns ErrUserNotFound when no account matches.
	DeleteUserByEmail(ctx context.Context, email string) error
}

// OTPRepository holds at most one pending one-time code per email.
type OTPRepository interface {
	// UpsertOTP stores entry, replacing any previous code of the same email.
	UpsertOTP(ctx context.Context, entry models.OTPEntry) error
	// GetOTP returns ErrOTPNotFound when no code is pending for email.
	// Expired entries are returned as-is; the caller decides.
	GetOTP(ctx context.Context, email string) (models.OTPEntry, error)
	// DeleteOTP removes the pending code of email. Missing entries are not an error.
	DeleteOTP(ctx context.Context, email string) error
	// DeleteExpiredOTPs removes every entry that expired before now and
	// reports how many were removed.
	DeleteExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
}

// PostRepository persists posts together with their reaction sets.
type PostRepository interface {
	// CreatePost inserts post and returns it with PostID and timestamps set.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// GetPost returns the post as seen by viewerID (0 for anonymous).
	GetPost(ctx context.Context, postID, viewerID int64) (models.PostView, error)
	// ListPosts returns every post as seen by viewerID, newest first.
	ListPosts(ctx context.Context, viewerID int64) ([]models.PostView, error)
	// UpdatePost applies the non-nil fields of update and bumps UpdatedAt.
	UpdatePost(ctx context.Context, update models.PostUpdate) error
	// DeletePost returns ErrPostNotFound when no post matches.
	DeletePost(ctx context.Context, postID int64) error
	// React applies action for userID atomically and returns the new counts.
	React(ctx context.Context, postID, userID int64, action models.ReactionAction) (models.ReactionCounts, error)
}

// ErrorClassificator decides whether a failed database call is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Pinger reports whether the backing storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
