package http

import (
	"encoding/json"
	"net/http"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/app"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/service"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON document from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

func (h *Handler) requestOTP(w http.ResponseWriter, r *http.Request) {
	var request models.OTPRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.OTPService.Issue(r.Context(), request.Email); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgOTPSent, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", user.UserID).Msg("user registered")
	utils.WriteMessage(w, app.MsgUserRegistered, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.SessionService.Issue(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Message:  app.MsgLoginSuccessful,
		Username: user.Username,
		Token:    token.String(),
	}, http.StatusOK)
}

// deleteAccount removes the account named by the verified token. The body
// is ignored.
func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	if err := h.services.AuthService.DeleteAccount(r.Context(), identity); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgAccountDeleted, http.StatusOK)
}
