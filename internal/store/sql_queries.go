package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	deleteUserByEmail = `DELETE FROM users WHERE email = $1;`

	upsertOTP = `INSERT INTO otp_entries (email, code, expires_at)
    VALUES ($1, $2, $3)
    ON CONFLICT (email) DO UPDATE
    SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at;`

	getOTP = `SELECT email, code, expires_at
    FROM otp_entries
    WHERE email = $1;`

	deleteOTP = `DELETE FROM otp_entries WHERE email = $1;`

	deleteExpiredOTPs = `DELETE FROM otp_entries WHERE expires_at < $1;`

	createPost = `INSERT INTO posts (title, content, keywords, author_id, username, email)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at, updated_at;`

	deletePost = `DELETE FROM posts WHERE id = $1;`

	// reactToPost applies the like/dislike state machine in a single
	// statement: $1 post id, $2 user id, $3 action. The row lock taken by
	// UPDATE serialises concurrent reactions on the same post.
	reactToPost = `UPDATE posts
    SET liked_by = CASE
            WHEN $3::text = 'like' AND $2::bigint = ANY(liked_by) THEN array_remove(liked_by, $2::bigint)
            WHEN $3::text = 'like' THEN array_append(liked_by, $2::bigint)
            ELSE array_remove(liked_by, $2::bigint)
        END,
        disliked_by = CASE
            WHEN $3::text = 'dislike' AND $2::bigint = ANY(disliked_by) THEN array_remove(disliked_by, $2::bigint)
            WHEN $3::text = 'dislike' THEN array_append(disliked_by, $2::bigint)
            ELSE array_remove(disliked_by, $2::bigint)
        END
    WHERE id = $1
    RETURNING cardinality(liked_by), cardinality(disliked_by);`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectPostViews selects the columns scanned by scanPostView. viewerID
// drives the has_liked and has_disliked flags; 0 never matches.
func selectPostViews(viewerID int64) sq.SelectBuilder {
	return psql.
		Select("id", "title", "content", "keywords", "author_id", "username", "email",
			"cardinality(liked_by) AS likes", "cardinality(disliked_by) AS dislikes").
		Column(sq.Expr("(?::bigint = ANY(liked_by)) AS has_liked", viewerID)).
		Column(sq.Expr("(?::bigint = ANY(disliked_by)) AS has_disliked", viewerID)).
		Columns("created_at", "updated_at").
		From("posts")
}

func buildGetPostQuery(postID, viewerID int64) (string, []any, error) {
	query, args, err := selectPostViews(viewerID).
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListPostsQuery(viewerID int64) (string, []any, error) {
	query, args, err := selectPostViews(viewerID).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdatePostQuery sets only the non-nil fields of update and always
// refreshes updated_at.
func buildUpdatePostQuery(update models.PostUpdate) (string, []any, error) {
	builder := psql.Update("posts")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Keywords != nil {
		keywords, err := encodeKeywords(*update.Keywords)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Set("keywords", keywords)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.PostID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func encodeKeywords(keywords []string) ([]byte, error) {
	if keywords == nil {
		keywords = []string{}
	}

	data, err := json.Marshal(keywords)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingKeywords, err)
	}

	return data, nil
}

func decodeKeywords(data []byte) ([]string, error) {
	keywords := []string{}
	if len(data) == 0 {
		return keywords, nil
	}

	if err := json.Unmarshal(data, &keywords); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingKeywords, err)
	}

	return keywords, nil
}
