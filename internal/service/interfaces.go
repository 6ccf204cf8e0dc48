package service

import (
	"context"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

// OTPService is the one-time code ledger guarding registration.
type OTPService interface {
	// Issue generates a fresh code for email, replaces any pending one and
	// sends it through the notifier. Fails with ErrAlreadyExists when the
	// email is registered.
	Issue(ctx context.Context, email string) error
	// Verify checks code against the pending entry of email without
	// consuming it. Missing and expired entries yield ErrOTPNotFound.
	Verify(ctx context.Context, email, code string) error
	// Consume removes the pending entry of email.
	Consume(ctx context.Context, email string) error
}

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	DeleteAccount(ctx context.Context, identity models.Identity) error
}

type SessionService interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)
	Verify(ctx context.Context, tokenString string) (models.Identity, error)
}

// PostService manages posts. viewerID 0 is an anonymous reader.
type PostService interface {
	Create(ctx context.Context, identity models.Identity, request models.PostRequest) (models.Post, error)
	Get(ctx context.Context, postID, viewerID int64) (models.PostView, error)
	List(ctx context.Context, viewerID int64) ([]models.PostView, error)
	Update(ctx context.Context, identity models.Identity, update models.PostUpdate) error
	Delete(ctx context.Context, identity models.Identity, postID int64) error
}

type EngagementService interface {
	React(ctx context.Context, identity models.Identity, postID int64, action models.ReactionAction) (models.ReactionCounts, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}
