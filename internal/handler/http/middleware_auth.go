package http

import (
	"net/http"
	"strings"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/app"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

const bearerScheme = "Bearer"

// auth requires a verified session token.
//
// A missing or malformed "Authorization" header is answered with 401. A
// token that fails verification (bad signature, wrong issuer, expired) is
// answered with 403. On success the caller's [models.Identity] is stored in
// the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request without usable token")
			utils.WriteMessage(w, app.MsgAuthRequired, http.StatusUnauthorized)
			return
		}

		identity, err := h.services.SessionService.Verify(r.Context(), tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			utils.WriteMessage(w, app.MsgInvalidToken, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// optionalAuth attaches the caller identity when a valid token is presented
// and otherwise lets the request through anonymously. It never rejects.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := h.services.SessionService.Verify(r.Context(), tokenString)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("ignoring invalid token on public route")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// getTokenFromAuthHeader extracts the token from a header of the form
//
//	Authorization: Bearer <token>
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// identityFromRequest returns the caller identity placed by auth or
// optionalAuth. Anonymous callers get the zero identity.
func identityFromRequest(r *http.Request) (models.Identity, bool) {
	return utils.GetIdentityFromContext(r.Context())
}
