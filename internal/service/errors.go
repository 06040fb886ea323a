package service

import (
	"errors"
	"fmt"
	"time"
)

// Terminal, user-visible authentication failures. The HTTP layer maps all of
// them to 401 responses; callers match with [errors.Is].
var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or fails validation before any store access.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable so callers
	// cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountLocked is returned while an account's lock is active. The
	// concrete error is an [*AccountLockedError] carrying the expiry.
	ErrAccountLocked = errors.New("account is temporarily locked")

	// ErrTokenExpired is returned for a correctly signed token whose expiry
	// has passed; clients should prompt a re-login rather than treat the
	// token as tampered.
	ErrTokenExpired = errors.New("token is expired")

	// ErrInvalidToken is returned for a token with a bad signature, wrong
	// issuer, or broken structure.
	ErrInvalidToken = errors.New("token is invalid")

	// ErrAccountNotFound is returned when a valid token references an
	// account that no longer exists (deleted subject still holding a token).
	ErrAccountNotFound = errors.New("account no longer exists")

	// ErrInvalidResetToken is returned when a password-reset token is
	// unknown or expired.
	ErrInvalidResetToken = errors.New("reset token is invalid or expired")

	// ErrTokenCreationFailed wraps JWT signing failures at login.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrNotReviewOwner is returned when an account tries to modify or
	// delete a review written by someone else.
	ErrNotReviewOwner = errors.New("review belongs to another user")
)

// AccountLockedError reports an active lock together with its expiry so the
// HTTP layer can tell the caller when login attempts will be accepted again.
// It unwraps to [ErrAccountLocked].
type AccountLockedError struct {
	Until time.Time
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account is temporarily locked until %s", e.Until.Format(time.RFC3339))
}

func (e *AccountLockedError) Unwrap() error {
	return ErrAccountLocked
}
