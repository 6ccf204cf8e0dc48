package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

type engagementService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewEngagementService(postRepository store.PostRepository, userRepository store.UserRepository, logger *logger.Logger) EngagementService {
	return &engagementService{
		postRepository: postRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// React toggles the caller's reaction on a post and returns the new counts.
// The account named by the token's user id must still exist.
func (s *engagementService) React(ctx context.Context, identity models.Identity, postID int64, action models.ReactionAction) (models.ReactionCounts, error) {
	log := logger.FromContext(ctx)

	if !action.Valid() {
		return models.ReactionCounts{}, ErrInvalidReaction
	}
	if postID <= 0 {
		return models.ReactionCounts{}, ErrInvalidPostID
	}

	user, err := s.userRepository.FindUserByID(ctx, identity.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.ReactionCounts{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "engagementService.React").Int64("user_id", identity.UserID).Msg("user search by id failed")
		return models.ReactionCounts{}, fmt.Errorf("user search by id failed: %w", err)
	}

	counts, err := s.postRepository.React(ctx, postID, user.UserID, action)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.ReactionCounts{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "engagementService.React").Int64("post_id", postID).Msg("error applying reaction")
		return models.ReactionCounts{}, fmt.Errorf("error applying reaction: %w", err)
	}

	return counts, nil
}
