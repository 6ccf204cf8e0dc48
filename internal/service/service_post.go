// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/validators"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		validator:      validators.NewPostValidator(),
		logger:         logger,
	}
}

// Create stores a post authored by the caller. The author's username and
// email are copied onto the post and never refreshed afterwards.
func (s *postService) Create(ctx context.Context, identity models.Identity, request models.PostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Post{}, validationError(err)
	}

	author, err := s.resolveUser(ctx, identity)
	if err != nil {
		return models.Post{}, err
	}

	post, err := s.postRepository.CreatePost(ctx, models.Post{
		Title:    request.Title,
		Content:  request.Content,
		Keywords: request.Keywords,
		AuthorID: author.UserID,
		Username: author.Username,
		Email:    author.Email,
	})
	if err != nil {
		log.Err(err).Str("func", "postService.Create").Msg("error creating post")
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	return post, nil
}

func (s *postService) Get(ctx context.Context, postID, viewerID int64) (models.PostView, error) {
	if postID <= 0 {
		return models.PostView{}, ErrInvalidPostID
	}

	view, err := s.postRepository.GetPost(ctx, postID, viewerID)
	if err != nil {
		return models.PostView{}, s.wrapPostError(ctx, "postService.Get", err)
	}

	return view, nil
}

// List returns every post, newest first.
func (s *postService) List(ctx context.Context, viewerID int64) ([]models.PostView, error) {
	views, err := s.postRepository.ListPosts(ctx, viewerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postService.List").Msg("error listing posts")
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return views, nil
}

// Update applies a partial update to a post owned by the caller. An update
// with no fields only checks that the post exists and belongs to the caller.
func (s *postService) Update(ctx context.Context, identity models.Identity, update models.PostUpdate) error {
	if err := s.validator.Validate(ctx, update); err != nil {
		return validationError(err)
	}

	if err := s.authorize(ctx, identity, update.PostID); err != nil {
		return err
	}

	if update.Empty() {
		return nil
	}

	if err := s.postRepository.UpdatePost(ctx, update); err != nil {
		return s.wrapPostError(ctx, "postService.Update", err)
	}

	return nil
}

func (s *postService) Delete(ctx context.Context, identity models.Identity, postID int64) error {
	if postID <= 0 {
		return ErrInvalidPostID
	}

	if err := s.authorize(ctx, identity, postID); err != nil {
		return err
	}

	if err := s.postRepository.DeletePost(ctx, postID); err != nil {
		return s.wrapPostError(ctx, "postService.Delete", err)
	}

	return nil
}

// authorize fails with ErrNotFound when the caller's account is gone and
// with ErrForbidden unless the caller authored the post.
func (s *postService) authorize(ctx context.Context, identity models.Identity, postID int64) error {
	caller, err := s.resolveUser(ctx, identity)
	if err != nil {
		return err
	}

	post, err := s.postRepository.GetPost(ctx, postID, 0)
	if err != nil {
		return s.wrapPostError(ctx, "postService.authorize", err)
	}

	if post.AuthorID != caller.UserID {
		return ErrForbidden
	}

	return nil
}

// resolveUser loads the caller's account by the token's user id.
func (s *postService) resolveUser(ctx context.Context, identity models.Identity) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, identity.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postService.resolveUser").Int64("user_id", identity.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (s *postService) wrapPostError(ctx context.Context, fn string, err error) error {
	if errors.Is(err, store.ErrPostNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("post storage error")
	return fmt.Errorf("post storage error: %w", err)
}
