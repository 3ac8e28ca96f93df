package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json", disables caching
// with "Cache-Control: no-store" and writes the provided HTTP status code
// before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	data       - any value to be serialized as JSON (struct, map, slice, nil, etc.)
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if JSON marshaling fails
//
// Example usage:
//
//	WriteJSON(w, records, http.StatusOK)
//	WriteJSON(w, models.MessageResponse{Message: "Record not found."}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ExtractSessionToken returns the session token carried by r. A bearer
// Authorization header wins; otherwise the named cookie is used. When
// neither is present [ErrNoToken] is returned.
func ExtractSessionToken(r *http.Request, cookieName string) (string, error) {
	if token, err := ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		return token, nil
	}

	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}

	token, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return cookie.Value, nil
	}
	return token, nil
}
