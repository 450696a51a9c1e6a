package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/spec-kit/helpdesk-api/pkg/util"
)

// bcrypt silently truncates input past 72 bytes, which would make two
// different passwords hash identically. Reject instead of truncating.
const maxPasswordBytes = 72

// HashPassword hashes a plaintext password with the configured cost.
func HashPassword(password string, cost int) (string, error) {
	if n := len(password); n > maxPasswordBytes {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("password must not exceed %d bytes, got %d", maxPasswordBytes, n),
			map[string]any{"max_bytes": maxPasswordBytes, "password_bytes": n},
		)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored hash. A malformed
// hash counts as a mismatch, never an error.
func VerifyPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
