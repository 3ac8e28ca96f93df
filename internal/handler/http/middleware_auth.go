package http

import (
	"net/http"

	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication.
//
// The token is taken from an "Authorization: Bearer" header or, failing
// that, from the session cookie, and validated via
// [service.AuthService.ParseToken]. On success the caller is stored in the
// request context (see [utils.WithSession]) before delegating to the next
// handler.
//
// Requests are rejected with 401 when no token is present or when the token
// is invalid or expired.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.auth").Msg("request rejected")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), user)))
	})
}
