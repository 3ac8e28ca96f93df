package http

import (
	"net/http"

	"github.com/MKhiriev/arc-portal/internal/app"
	"github.com/MKhiriev/arc-portal/internal/utils"
	"github.com/MKhiriev/arc-portal/models"
)

// session answers whether the caller holds a valid session token and who
// it was issued to.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	user, err := h.authenticate(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.SessionResponse{
		Message: app.MsgAccessGranted,
		User:    user,
	})
}

// authenticate resolves the session token of r to the user it was issued to.
func (h *Handler) authenticate(r *http.Request) (models.SessionUser, error) {
	tokenString, err := utils.ExtractSessionToken(r, sessionCookieName)
	if err != nil {
		return models.SessionUser{}, errNoSessionToken
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return models.SessionUser{}, err
	}

	return models.SessionUser{ID: token.UserID, Email: token.Email}, nil
}
