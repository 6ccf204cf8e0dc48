package http

import (
	"errors"
	"net/http"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/app"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/service"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/store"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is ordered: the first target matched with errors.Is wins.
// More specific validation errors come before ErrInvalidDataProvided which
// wraps them.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidPostID, http.StatusBadRequest, app.MsgInvalidPostID},
	{service.ErrMissingFields, http.StatusBadRequest, app.MsgMissingFields},
	{service.ErrInvalidEmail, http.StatusBadRequest, app.MsgInvalidEmail},
	{service.ErrInvalidPostID, http.StatusBadRequest, app.MsgInvalidPostID},
	{service.ErrInvalidReaction, http.StatusBadRequest, app.MsgUnknownReaction},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyExists},
	{service.ErrOTPNotFound, http.StatusBadRequest, app.MsgOTPNotFound},
	{service.ErrInvalidOTP, http.StatusBadRequest, app.MsgInvalidOTP},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgAuthRequired},
	{service.ErrInvalidToken, http.StatusForbidden, app.MsgInvalidToken},
	{service.ErrForbidden, http.StatusForbidden, app.MsgForbidden},

	{service.ErrNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrPostNotFound, http.StatusNotFound, app.MsgPostNotFound},

	{service.ErrOTPDeliveryFailed, http.StatusInternalServerError, app.MsgOTPDeliveryFailed},
}

// statusFromError returns the status and client message for err. Unknown
// errors are reported as 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the mapped {"message"} response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
