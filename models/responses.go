package models

import "time"

// MessageResponse is the body of every error response and of success
// responses that carry no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// PostCreatedResponse is returned when a post is created.
type PostCreatedResponse struct {
	Message string `json:"message"`
	PostID  int64  `json:"id"`
}

// PostResponse is a post in a listing. Creator reports whether the caller
// authored the post and is always false for anonymous readers.
type PostResponse struct {
	PostID    int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Keywords  []string  `json:"keywords"`
	Username  string    `json:"username"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	Creator   bool      `json:"creator"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostDetailResponse is a single post with the caller's reaction flags.
type PostDetailResponse struct {
	PostResponse

	HasLiked    bool `json:"hasLiked"`
	HasDisliked bool `json:"hasDisliked"`
}

// PostListResponse is the body of GET /api/posts.
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Storage string `json:"storage"`
}
