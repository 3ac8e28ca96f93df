package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// Email is carried as a private claim so the session endpoint can describe the
// caller without a database round-trip.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Email is the account email the token was issued for.
	Email string `json:"email"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	User User `json:"user"`
}

// SessionUser identifies the caller behind a valid session token.
type SessionUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// SessionResponse is returned by the session check endpoint.
type SessionResponse struct {
	Message string      `json:"message"`
	User    SessionUser `json:"user"`
}
