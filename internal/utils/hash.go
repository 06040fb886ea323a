package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by HashPassword when the plaintext is empty.
var ErrEmptyPassword = errors.New("empty password provided")

// HashPassword derives a bcrypt digest from the given plaintext password.
//
// bcrypt embeds a per-call random salt, so hashing the same plaintext twice
// yields two different digests that both verify against that plaintext.
//
// Returns ErrEmptyPassword for empty input or a wrapped error if the
// underlying bcrypt call fails (e.g. the plaintext exceeds bcrypt's 72-byte
// limit).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt digest. The comparison is constant-time with respect to the
// password; any mismatch or malformed digest yields false, never a panic.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
