package models

// ReactionAction is the action a user applies to a post.
type ReactionAction string

const (
	ActionLike    ReactionAction = "like"
	ActionDislike ReactionAction = "dislike"
)

// Valid reports whether a is one of the known actions.
func (a ReactionAction) Valid() bool {
	return a == ActionLike || a == ActionDislike
}

// ReactionState is the relation between one user and one post.
type ReactionState int

const (
	ReactionNeutral ReactionState = iota
	ReactionLiked
	ReactionDisliked
)

// String returns the lowercase name of the state.
func (s ReactionState) String() string {
	switch s {
	case ReactionLiked:
		return "liked"
	case ReactionDisliked:
		return "disliked"
	default:
		return "neutral"
	}
}

// Next returns the state reached by applying action a in state s.
//
// Repeating the action that produced the current state returns to neutral;
// the opposite action switches sides directly.
//
//	from \ action | like     | dislike
//	neutral       | liked    | disliked
//	liked         | neutral  | disliked
//	disliked      | liked    | neutral
func (s ReactionState) Next(a ReactionAction) ReactionState {
	switch a {
	case ActionLike:
		if s == ReactionLiked {
			return ReactionNeutral
		}
		return ReactionLiked
	case ActionDislike:
		if s == ReactionDisliked {
			return ReactionNeutral
		}
		return ReactionDisliked
	}

	return s
}

// ReactionCounts are the sizes of a post's like and dislike sets right after
// a reaction was applied.
type ReactionCounts struct {
	LikeCount    int `json:"likeCount"`
	DislikeCount int `json:"dislikeCount"`
}
