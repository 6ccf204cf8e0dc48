package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

func TestSessionService_IssueAndVerify(t *testing.T) {
	clock := utils.NewStubClock(testNow)
	svc := NewSessionService("sign-key", "wittywhiz", time.Hour, clock, logger.Nop())
	ctx := context.Background()

	token, err := svc.Issue(ctx, models.User{UserID: 7, Email: testEmail})
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(time.Hour), token.ExpiresAt)

	identity, err := svc.Verify(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: 7, Email: testEmail}, identity)
}

func TestSessionService_IssueWithoutUserID(t *testing.T) {
	svc := NewSessionService("sign-key", "wittywhiz", time.Hour, utils.NewStubClock(testNow), logger.Nop())

	_, err := svc.Issue(context.Background(), models.User{Email: testEmail})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// An expired token and a garbage token fail with the same error.
func TestSessionService_VerifyFailuresShareOneError(t *testing.T) {
	clock := utils.NewStubClock(testNow)
	svc := NewSessionService("sign-key", "wittywhiz", time.Hour, clock, logger.Nop())
	ctx := context.Background()

	token, err := svc.Issue(ctx, models.User{UserID: 7, Email: testEmail})
	require.NoError(t, err)

	other := NewSessionService("other-key", "wittywhiz", time.Hour, clock, logger.Nop())
	foreign, err := other.Issue(ctx, models.User{UserID: 7, Email: testEmail})
	require.NoError(t, err)

	otherIssuer := NewSessionService("sign-key", "someone-else", time.Hour, clock, logger.Nop())
	wrongIssuer, err := otherIssuer.Issue(ctx, models.User{UserID: 7, Email: testEmail})
	require.NoError(t, err)

	clock.Advance(time.Hour + time.Second)

	for name, raw := range map[string]string{
		"expired":      token.String(),
		"garbage":      "not.a.token",
		"empty":        "",
		"wrong key":    foreign.String(),
		"wrong issuer": wrongIssuer.String(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(ctx, raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
