// Package models defines the DTOs exchanged with the rental tracker backend.
//
// The client does not own these entities; it only relies on their shape.
// Nullable numbers are pointers and are left out of request bodies when nil.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the public profile returned by the backend.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// MessageResponse is the generic acknowledgement body, e.g. after logout or delete.
type MessageResponse struct {
	Message string `json:"message"`
}
