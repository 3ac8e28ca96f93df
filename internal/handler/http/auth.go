package http

import (
	"net/http"

	"github.com/MKhiriev/arc-portal/models"
)

// credentials is the body accepted by login and registration.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c credentials) user() models.User {
	return models.User{Email: c.Email, Password: c.Password}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeObject(r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(r.Context(), creds.user())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, models.RegisterResponse{User: registeredUser.Public()})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeObject(r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), creds.user())
	if err != nil {
		writeError(w, r, err)
		return
	}

	ttl := int64(h.tokenDuration.Seconds())
	http.SetCookie(w, h.sessionCookie(token.SignedString, ttl))

	writeJSON(w, r, http.StatusOK, models.LoginResponse{Token: token.SignedString, ExpiresIn: ttl})
}

// sessionCookie builds the HttpOnly cookie carrying the session token.
func (h *Handler) sessionCookie(token string, maxAge int64) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}
