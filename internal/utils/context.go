// Package utils provides general-purpose helper utilities used across the
// arc-portal server: context keys, JSON response writing, session token
// generation and validation, the outbound HTTP client and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/arc-portal/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the authenticated caller is stored
// in a request context.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying user as the authenticated caller.
func WithSession(ctx context.Context, user models.SessionUser) context.Context {
	return context.WithValue(ctx, SessionCtxKey, user)
}

// GetSessionFromContext retrieves the authenticated caller from ctx.
// ok is false when the request did not pass the session middleware.
func GetSessionFromContext(ctx context.Context) (models.SessionUser, bool) {
	user, ok := ctx.Value(SessionCtxKey).(models.SessionUser)
	return user, ok
}
