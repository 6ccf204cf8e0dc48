package models

import (
	"slices"
	"time"
)

// Post is a blog post together with its reaction sets.
//
// Username and Email are snapshots of the author taken at creation time and
// are never refreshed. LikedBy and DislikedBy never share a user ID.
type Post struct {
	PostID   int64    `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`

	AuthorID int64  `json:"-"`
	Username string `json:"username"`
	Email    string `json:"-"`

	LikedBy    []int64 `json:"-"`
	DislikedBy []int64 `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReactionOf returns the current relation between userID and the post.
func (p *Post) ReactionOf(userID int64) ReactionState {
	switch {
	case slices.Contains(p.LikedBy, userID):
		return ReactionLiked
	case slices.Contains(p.DislikedBy, userID):
		return ReactionDisliked
	default:
		return ReactionNeutral
	}
}

// ApplyReaction moves userID to the state reached by action and returns the
// resulting set sizes. The caller is responsible for serialising concurrent
// calls on the same post.
func (p *Post) ApplyReaction(userID int64, action ReactionAction) ReactionCounts {
	next := p.ReactionOf(userID).Next(action)

	p.LikedBy = slices.DeleteFunc(p.LikedBy, func(id int64) bool { return id == userID })
	p.DislikedBy = slices.DeleteFunc(p.DislikedBy, func(id int64) bool { return id == userID })

	switch next {
	case ReactionLiked:
		p.LikedBy = append(p.LikedBy, userID)
	case ReactionDisliked:
		p.DislikedBy = append(p.DislikedBy, userID)
	}

	return p.Counts()
}

// Counts returns the current like and dislike set sizes.
func (p *Post) Counts() ReactionCounts {
	return ReactionCounts{LikeCount: len(p.LikedBy), DislikeCount: len(p.DislikedBy)}
}

// View projects the post for viewerID. A zero viewerID is an anonymous
// reader and never matches any reaction set.
func (p *Post) View(viewerID int64) PostView {
	state := ReactionNeutral
	if viewerID != 0 {
		state = p.ReactionOf(viewerID)
	}

	return PostView{
		PostID:      p.PostID,
		Title:       p.Title,
		Content:     p.Content,
		Keywords:    slices.Clone(p.Keywords),
		AuthorID:    p.AuthorID,
		Username:    p.Username,
		Email:       p.Email,
		Likes:       len(p.LikedBy),
		Dislikes:    len(p.DislikedBy),
		HasLiked:    state == ReactionLiked,
		HasDisliked: state == ReactionDisliked,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PostView is a post as seen by one reader: reaction sets are reduced to
// counts and the reader's own membership flags.
type PostView struct {
	PostID      int64
	Title       string
	Content     string
	Keywords    []string
	AuthorID    int64
	Username    string
	Email       string
	Likes       int
	Dislikes    int
	HasLiked    bool
	HasDisliked bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PostUpdate is a partial update of a post. Nil fields are left unchanged.
type PostUpdate struct {
	PostID   int64     `json:"-"`
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Keywords *[]string `json:"keywords,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u PostUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Keywords == nil
}
