package service

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// minPasswordLength is the floor of the password policy.
const minPasswordLength = 8

// normalizeEmail validates the address shape and lowercases it so lookups
// are case-insensitive. Display names ("Bob <bob@x>") are rejected.
func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("email is required")
	}

	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return "", fmt.Errorf("email %q is not a valid address", email)
	}

	return strings.ToLower(email), nil
}

// validatePassword enforces the password policy: at least minPasswordLength
// characters with an upper-case letter, a lower-case letter, and a digit.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must contain an upper-case letter, a lower-case letter, and a digit")
	}

	return nil
}
