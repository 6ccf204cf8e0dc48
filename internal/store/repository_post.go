package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

// postRepository is the PostgreSQL-backed implementation of
// [PostRepository]. Reaction sets live in the liked_by and disliked_by
// BIGINT[] columns of "posts" and are never read in full: queries only
// reduce them to counts and membership flags.
type postRepository struct {
	*DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with PostID, CreatedAt and
// UpdatedAt assigned by the database. Reaction sets start empty.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	keywords, err := encodeKeywords(post.Keywords)
	if err != nil {
		return models.Post{}, err
	}

	err = p.withRetry(ctx, func() error {
		return p.DB.QueryRowContext(ctx, createPost,
			post.Title, post.Content, keywords, post.AuthorID, post.Username, post.Email,
		).Scan(&post.PostID, &post.CreatedAt, &post.UpdatedAt)
	})
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Int64("author_id", post.AuthorID).
			Msg("failed to insert post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	post.LikedBy, post.DislikedBy = nil, nil
	return post, nil
}

func (p *postRepository) GetPost(ctx context.Context, postID, viewerID int64) (models.PostView, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(postID, viewerID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.GetPost").Msg("failed to create query")
		return models.PostView{}, err
	}

	var view models.PostView
	err = p.withRetry(ctx, func() error {
		var scanErr error
		view, scanErr = scanPostView(p.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PostView{}, ErrPostNotFound
		}
		log.Err(err).
			Str("func", "postRepository.GetPost").
			Int64("post_id", postID).
			Msg("failed to select post")
		return models.PostView{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return view, nil
}

// ListPosts returns all posts newest first. There is no pagination.
func (p *postRepository) ListPosts(ctx context.Context, viewerID int64) ([]models.PostView, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(viewerID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.PostView, 0, 50)
	for rows.Next() {
		view, scanErr := scanPostView(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		results = append(results, view)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("error iterating post rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (p *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(update)
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Msg("failed to create query")
		return err
	}

	return p.execAffectingPost(ctx, "postRepository.UpdatePost", update.PostID, query, args...)
}

func (p *postRepository) DeletePost(ctx context.Context, postID int64) error {
	return p.execAffectingPost(ctx, "postRepository.DeletePost", postID, deletePost, postID)
}

// React toggles the reaction of userID in one UPDATE statement, so two
// concurrent calls on the same post can never leave userID in both sets.
func (p *postRepository) React(ctx context.Context, postID, userID int64, action models.ReactionAction) (models.ReactionCounts, error) {
	log := logger.FromContext(ctx)

	var counts models.ReactionCounts
	err := p.withRetry(ctx, func() error {
		return p.DB.QueryRowContext(ctx, reactToPost, postID, userID, string(action)).
			Scan(&counts.LikeCount, &counts.DislikeCount)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ReactionCounts{}, ErrPostNotFound
		}
		log.Err(err).
			Str("func", "postRepository.React").
			Int64("post_id", postID).
			Int64("user_id", userID).
			Str("action", string(action)).
			Msg("failed to apply reaction")
		return models.ReactionCounts{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return counts, nil
}

func (p *postRepository) execAffectingPost(ctx context.Context, funcName string, postID int64, query string, args ...any) error {
	log := logger.FromContext(ctx)

	var result sql.Result
	err := p.withRetry(ctx, func() error {
		var execErr error
		result, execErr = p.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("post_id", postID).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostView(row rowScanner) (models.PostView, error) {
	var (
		view     models.PostView
		keywords []byte
	)

	err := row.Scan(
		&view.PostID,
		&view.Title,
		&view.Content,
		&keywords,
		&view.AuthorID,
		&view.Username,
		&view.Email,
		&view.Likes,
		&view.Dislikes,
		&view.HasLiked,
		&view.HasDisliked,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return models.PostView{}, err
	}

	view.Keywords, err = decodeKeywords(keywords)
	if err != nil {
		return models.PostView{}, err
	}

	return view, nil
}
