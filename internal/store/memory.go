// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

// memoryStore keeps users, one-time codes and posts in process memory.
// It implements [UserRepository], [OTPRepository], [PostRepository] and
// [Pinger]. A single mutex guards all three collections, so every method,
// React included, is atomic with respect to the others.
type memoryStore struct {
	mu sync.Mutex

	users      map[string]models.User
	nextUserID int64

	otps map[string]models.OTPEntry

	posts      map[int64]*models.Post
	nextPostID int64

	now func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: make(map[string]models.User),
		otps:  make(map[string]models.OTPEntry),
		posts: make(map[int64]*models.Post),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (m *memoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *memoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Email]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	m.nextUserID++
	user.UserID = m.nextUserID
	user.CreatedAt = m.now()
	m.users[user.Email] = user

	return user, nil
}

func (m *memoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

func (m *memoryStore) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.UserID == userID {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (m *memoryStore) DeleteUserByEmail(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[email]; !ok {
		return ErrUserNotFound
	}
	delete(m.users, email)

	return nil
}

func (m *memoryStore) UpsertOTP(_ context.Context, entry models.OTPEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.otps[entry.Email] = entry
	return nil
}

func (m *memoryStore) GetOTP(_ context.Context, email string) (models.OTPEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.otps[email]
	if !ok {
		return models.OTPEntry{}, ErrOTPNotFound
	}

	return entry, nil
}

func (m *memoryStore) DeleteOTP(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.otps, email)
	return nil
}

func (m *memoryStore) DeleteExpiredOTPs(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for email, entry := range m.otps {
		if entry.ExpiresAt.Before(now) {
			delete(m.otps, email)
			removed++
		}
	}

	return removed, nil
}

func (m *memoryStore) CreatePost(_ context.Context, post models.Post) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextPostID++
	now := m.now()

	stored := post
	stored.PostID = m.nextPostID
	stored.Keywords = slices.Clone(post.Keywords)
	if stored.Keywords == nil {
		stored.Keywords = []string{}
	}
	stored.LikedBy, stored.DislikedBy = nil, nil
	stored.CreatedAt, stored.UpdatedAt = now, now
	m.posts[stored.PostID] = &stored

	created := stored
	created.Keywords = slices.Clone(stored.Keywords)
	return created, nil
}

func (m *memoryStore) GetPost(_ context.Context, postID, viewerID int64) (models.PostView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[postID]
	if !ok {
		return models.PostView{}, ErrPostNotFound
	}

	return post.View(viewerID), nil
}

func (m *memoryStore) ListPosts(_ context.Context, viewerID int64) ([]models.PostView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	views := make([]models.PostView, 0, len(m.posts))
	for _, post := range m.posts {
		views = append(views, post.View(viewerID))
	}

	slices.SortFunc(views, func(a, b models.PostView) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.PostID, a.PostID)
	})

	return views, nil
}

func (m *memoryStore) UpdatePost(_ context.Context, update models.PostUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[update.PostID]
	if !ok {
		return ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Keywords != nil {
		post.Keywords = slices.Clone(*update.Keywords)
		if post.Keywords == nil {
			post.Keywords = []string{}
		}
	}
	post.UpdatedAt = m.now()

	return nil
}

func (m *memoryStore) DeletePost(_ context.Context, postID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[postID]; !ok {
		return ErrPostNotFound
	}
	delete(m.posts, postID)

	return nil
}

func (m *memoryStore) React(_ context.Context, postID, userID int64, action models.ReactionAction) (models.ReactionCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[postID]
	if !ok {
		return models.ReactionCounts{}, ErrPostNotFound
	}

	return post.ApplyReaction(userID, action), nil
}
