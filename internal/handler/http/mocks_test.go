package http

import (
	"context"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/service"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

// Service mocks. Each method delegates to an overridable function field;
// calling a method whose field is nil panics, which fails the test.

type mockOTPService struct {
	issueFn   func(ctx context.Context, email string) error
	verifyFn  func(ctx context.Context, email, code string) error
	consumeFn func(ctx context.Context, email string) error
}

func (m *mockOTPService) Issue(ctx context.Context, email string) error { return m.issueFn(ctx, email) }
func (m *mockOTPService) Verify(ctx context.Context, email, code string) error {
	return m.verifyFn(ctx, email, code)
}
func (m *mockOTPService) Consume(ctx context.Context, email string) error {
	return m.consumeFn(ctx, email)
}

type mockAuthService struct {
	registerFn      func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn         func(ctx context.Context, request models.LoginRequest) (models.User, error)
	deleteAccountFn func(ctx context.Context, identity models.Identity) error
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, identity models.Identity) error {
	return m.deleteAccountFn(ctx, identity)
}

type mockSessionService struct {
	issueFn  func(ctx context.Context, user models.User) (models.Token, error)
	verifyFn func(ctx context.Context, tokenString string) (models.Identity, error)
}

func (m *mockSessionService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	return m.issueFn(ctx, user)
}

func (m *mockSessionService) Verify(ctx context.Context, tokenString string) (models.Identity, error) {
	return m.verifyFn(ctx, tokenString)
}

type mockPostService struct {
	createFn func(ctx context.Context, identity models.Identity, request models.PostRequest) (models.Post, error)
	getFn    func(ctx context.Context, postID, viewerID int64) (models.PostView, error)
	listFn   func(ctx context.Context, viewerID int64) ([]models.PostView, error)
	updateFn func(ctx context.Context, identity models.Identity, update models.PostUpdate) error
	deleteFn func(ctx context.Context, identity models.Identity, postID int64) error
}

func (m *mockPostService) Create(ctx context.Context, identity models.Identity, request models.PostRequest) (models.Post, error) {
	return m.createFn(ctx, identity, request)
}

func (m *mockPostService) Get(ctx context.Context, postID, viewerID int64) (models.PostView, error) {
	return m.getFn(ctx, postID, viewerID)
}

func (m *mockPostService) List(ctx context.Context, viewerID int64) ([]models.PostView, error) {
	return m.listFn(ctx, viewerID)
}

func (m *mockPostService) Update(ctx context.Context, identity models.Identity, update models.PostUpdate) error {
	return m.updateFn(ctx, identity, update)
}

func (m *mockPostService) Delete(ctx context.Context, identity models.Identity, postID int64) error {
	return m.deleteFn(ctx, identity, postID)
}

type mockEngagementService struct {
	reactFn func(ctx context.Context, identity models.Identity, postID int64, action models.ReactionAction) (models.ReactionCounts, error)
}

func (m *mockEngagementService) React(ctx context.Context, identity models.Identity, postID int64, action models.ReactionAction) (models.ReactionCounts, error) {
	return m.reactFn(ctx, identity, postID, action)
}

type mockAppInfoService struct {
	version string
	status  string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string { return m.version }

func (m *mockAppInfoService) Health(ctx context.Context) models.HealthResponse {
	status := m.status
	if status == "" {
		status = service.HealthStatusOK
	}
	return models.HealthResponse{Status: status, Version: m.version, Storage: "memory"}
}

// Tokens accepted by acceptingSessions.
const (
	aliceToken = "alice-token"
	bobToken   = "bob-token"
)

var (
	alice = models.Identity{UserID: 1, Email: "alice@example.com"}
	bob   = models.Identity{UserID: 2, Email: "bob@example.com"}
)

// acceptingSessions verifies aliceToken and bobToken and rejects the rest.
func acceptingSessions() *mockSessionService {
	return &mockSessionService{
		verifyFn: func(_ context.Context, tokenString string) (models.Identity, error) {
			switch tokenString {
			case aliceToken:
				return alice, nil
			case bobToken:
				return bob, nil
			default:
				return models.Identity{}, service.ErrInvalidToken
			}
		},
	}
}

// newTestHandler fills unset services with mocks that panic when used.
func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.SessionService == nil {
		services.SessionService = acceptingSessions()
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if services.OTPService == nil {
		services.OTPService = &mockOTPService{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.PostService == nil {
		services.PostService = &mockPostService{}
	}
	if services.EngagementService == nil {
		services.EngagementService = &mockEngagementService{}
	}

	return NewHandler(services, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop())
}
