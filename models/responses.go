package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile is the public projection of a [User]: everything a client may
// see, nothing it must not (no digest, no lockout counters, no reset token).
type UserProfile struct {
	UserID    primitive.ObjectID `json:"id"`
	Email     string             `json:"email"`
	Name      string             `json:"name"`
	Age       int                `json:"age,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// LoginResponse is the body returned by the register and login endpoints.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// MovieList is a single page of the catalog plus pagination metadata.
type MovieList struct {
	Movies   []Movie `json:"movies"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

// APIMessage is a generic informational response body.
type APIMessage struct {
	Message string `json:"message"`
}

// APIError is the uniform error response body. LockedUntil is set only for
// account-locked rejections so clients can display the remaining time.
type APIError struct {
	Error       string     `json:"error"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
}
