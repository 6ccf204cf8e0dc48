// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/app"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/service"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

func postIDFromRequest(r *http.Request) (int64, error) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || postID <= 0 {
		return 0, ErrInvalidPostID
	}
	return postID, nil
}

// postResponse projects a view for the caller. creator is false for
// anonymous callers.
func postResponse(view models.PostView, identity models.Identity, authenticated bool) models.PostResponse {
	keywords := view.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return models.PostResponse{
		PostID:    view.PostID,
		Title:     view.Title,
		Content:   view.Content,
		Keywords:  keywords,
		Username:  view.Username,
		Likes:     view.Likes,
		Dislikes:  view.Dislikes,
		Creator:   authenticated && view.AuthorID == identity.UserID,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	identity, authenticated := identityFromRequest(r)

	views, err := h.services.PostService.List(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	posts := make([]models.PostResponse, 0, len(views))
	for _, view := range views {
		posts = append(posts, postResponse(view, identity, authenticated))
	}

	_, _ = utils.WriteJSON(w, models.PostListResponse{Posts: posts}, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	identity, authenticated := identityFromRequest(r)

	view, err := h.services.PostService.Get(r.Context(), postID, identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PostDetailResponse{
		PostResponse: postResponse(view, identity, authenticated),
		HasLiked:     view.HasLiked,
		HasDisliked:  view.HasDisliked,
	}, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var request models.PostRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Create(r.Context(), identity, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PostCreatedResponse{
		Message: app.MsgPostCreated,
		PostID:  post.PostID,
	}, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.PostUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.PostID = postID

	if err = h.services.PostService.Update(r.Context(), identity, update); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPostUpdated, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PostService.Delete(r.Context(), identity, postID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPostDeleted, http.StatusOK)
}

func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, models.ActionLike)
}

func (h *Handler) dislikePost(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, models.ActionDislike)
}

func (h *Handler) react(w http.ResponseWriter, r *http.Request, action models.ReactionAction) {
	identity, ok := identityFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	counts, err := h.services.EngagementService.React(r.Context(), identity, postID, action)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, counts, http.StatusOK)
}
