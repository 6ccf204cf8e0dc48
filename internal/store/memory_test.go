package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	m := newMemoryStore()

	created, err := m.CreateUser(ctx, models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = m.CreateUser(ctx, models.User{Username: "other", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := m.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	byID, err := m.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	require.NoError(t, m.DeleteUserByEmail(ctx, "alice@example.com"))
	_, err = m.FindUserByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, m.DeleteUserByEmail(ctx, "alice@example.com"), ErrUserNotFound)

	// ids are never reused
	again, err := m.CreateUser(ctx, models.User{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.UserID)

	_, err = m.FindUserByID(ctx, created.UserID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	found, err = m.FindUserByID(ctx, again.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", found.Email)
}

func TestMemoryStore_OTP(t *testing.T) {
	ctx := context.Background()
	m := newMemoryStore()
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, m.UpsertOTP(ctx, models.OTPEntry{Email: "a@b.dev", Code: "111111", ExpiresAt: base}))
	require.NoError(t, m.UpsertOTP(ctx, models.OTPEntry{Email: "a@b.dev", Code: "222222", ExpiresAt: base.Add(time.Minute)}))

	entry, err := m.GetOTP(ctx, "a@b.dev")
	require.NoError(t, err)
	assert.Equal(t, "222222", entry.Code)

	require.NoError(t, m.UpsertOTP(ctx, models.OTPEntry{Email: "old@b.dev", Code: "333333", ExpiresAt: base.Add(-time.Second)}))
	removed, err := m.DeleteExpiredOTPs(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = m.GetOTP(ctx, "old@b.dev")
	assert.ErrorIs(t, err, ErrOTPNotFound)

	require.NoError(t, m.DeleteOTP(ctx, "a@b.dev"))
	require.NoError(t, m.DeleteOTP(ctx, "a@b.dev"))
	_, err = m.GetOTP(ctx, "a@b.dev")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestMemoryStore_PostsCRUD(t *testing.T) {
	ctx := context.Background()
	m := newMemoryStore()

	clock := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	keywords := []string{"go"}
	first, err := m.CreatePost(ctx, models.Post{Title: "first", Keywords: keywords, AuthorID: 1, Username: "alice"})
	require.NoError(t, err)
	second, err := m.CreatePost(ctx, models.Post{Title: "second", AuthorID: 2, Username: "bob"})
	require.NoError(t, err)

	// caller's slice is not retained
	keywords[0] = "changed"

	views, err := m.ListPosts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second.PostID, views[0].PostID)
	assert.Equal(t, first.PostID, views[1].PostID)
	assert.Equal(t, []string{"go"}, views[1].Keywords)
	assert.Equal(t, []string{}, views[0].Keywords)

	newTitle := "renamed"
	require.NoError(t, m.UpdatePost(ctx, models.PostUpdate{PostID: first.PostID, Title: &newTitle}))

	view, err := m.GetPost(ctx, first.PostID, 0)
	require.NoError(t, err)
	assert.Equal(t, "renamed", view.Title)
	assert.True(t, view.UpdatedAt.After(view.CreatedAt))

	require.NoError(t, m.DeletePost(ctx, first.PostID))
	_, err = m.GetPost(ctx, first.PostID, 0)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, m.DeletePost(ctx, first.PostID), ErrPostNotFound)
	assert.ErrorIs(t, m.UpdatePost(ctx, models.PostUpdate{PostID: first.PostID, Title: &newTitle}), ErrPostNotFound)
}

func TestMemoryStore_React(t *testing.T) {
	ctx := context.Background()
	m := newMemoryStore()

	post, err := m.CreatePost(ctx, models.Post{Title: "t", AuthorID: 1})
	require.NoError(t, err)

	counts, err := m.React(ctx, post.PostID, 1, models.ActionLike)
	require.NoError(t, err)
	assert.Equal(t, models.ReactionCounts{LikeCount: 1}, counts)

	view, err := m.GetPost(ctx, post.PostID, 1)
	require.NoError(t, err)
	assert.True(t, view.HasLiked)

	_, err = m.React(ctx, 999, 1, models.ActionLike)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

// Concurrent reactions of many users on one post must never leave a user in
// both sets, and the final counts must match each user's own toggle history.
func TestMemoryStore_React_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := newMemoryStore()

	post, err := m.CreatePost(ctx, models.Post{Title: "t", AuthorID: 1})
	require.NoError(t, err)

	const users = 20
	const rounds = 51

	var wg sync.WaitGroup
	for u := int64(1); u <= users; u++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			action := models.ActionLike
			if userID%2 == 0 {
				action = models.ActionDislike
			}
			for range rounds {
				_, _ = m.React(ctx, post.PostID, userID, action)
			}
		}(u)
	}
	wg.Wait()

	// odd round count: every user ends in the set of its action
	view, err := m.GetPost(ctx, post.PostID, 0)
	require.NoError(t, err)
	assert.Equal(t, users/2, view.Likes)
	assert.Equal(t, users/2, view.Dislikes)

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.posts[post.PostID].LikedBy {
		assert.NotContains(t, m.posts[post.PostID].DislikedBy, id)
	}
}

func TestMemoryStore_Ping(t *testing.T) {
	m := newMemoryStore()
	assert.NoError(t, m.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Ping(ctx), context.Canceled)
}

func TestNewMemoryStorages_SharesOneStore(t *testing.T) {
	s := NewMemoryStorages()

	assert.Equal(t, "memory", s.Kind)
	assert.Same(t, s.UserRepository, s.PostRepository)
	assert.NoError(t, s.Close())
}
