package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a viewer account used for authentication and authorization.
// It contains identity attributes, credential data, and the brute-force
// lockout counters. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the unique identifier of the account assigned by MongoDB.
	UserID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// Email is the unique, case-insensitive account identifier.
	// Stored lowercased; a unique index on this field is created at startup.
	Email string `bson:"email" json:"email"`

	// PasswordHash stores the bcrypt digest of the account password.
	// This value MUST be a bcrypt digest, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `bson:"password_hash" json:"-"`

	// Name is the display name of the account holder.
	// It is non-sensitive and may be shown in UI.
	Name string `bson:"name" json:"name"`

	// Age is an optional profile attribute.
	Age int `bson:"age,omitempty" json:"age,omitempty"`

	// FailedLoginAttempts counts consecutive failed password checks.
	// Incremented atomically on every failed login, reset to zero on
	// success. Never negative.
	FailedLoginAttempts int `bson:"failed_login_attempts,omitempty" json:"-"`

	// LockUntil, when set and in the future, marks the account as locked:
	// login attempts are rejected before the password is even checked.
	// A nil/absent value means the account is open.
	LockUntil *time.Time `bson:"lock_until,omitempty" json:"-"`

	// ResetToken is the opaque single-use password-reset token, set when the
	// account holder requests a reset by email. Never exposed via JSON.
	ResetToken string `bson:"reset_token,omitempty" json:"-"`

	// ResetTokenExpiry bounds the validity of ResetToken.
	ResetTokenExpiry *time.Time `bson:"reset_token_expiry,omitempty" json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `bson:"created_at" json:"created_at"`

	// UpdatedAt is the timestamp of the last profile or credential change.
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsLocked reports whether the account is locked at the given instant.
// An elapsed LockUntil does not count as locked; clearing the stale
// counters is the responsibility of the login flow.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}

// Profile returns the public view of the account: identity and display
// attributes only, never credential or lockout data.
func (u *User) Profile() UserProfile {
	return UserProfile{
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}

// CollectionName returns the name of the MongoDB collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}
