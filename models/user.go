package models

import "time"

// User represents a portal account held in the relational credential store.
// The plain password only ever travels inbound; the hash never leaves the
// persistence layer.
type User struct {
	// UserID is the identifier assigned by the relational store.
	UserID int64 `json:"id"`

	// Email is the unique, lowercased login identifier.
	Email string `json:"email"`

	// Password is the plain-text password received at login or registration.
	// It is never serialized in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the salted bcrypt hash stored for the account.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u with every credential field cleared so it can
// be written to a response.
func (u User) Public() User {
	return User{UserID: u.UserID, Email: u.Email, CreatedAt: u.CreatedAt}
}
