// Package cryptox implements password hashing for user credentials and vault
// passwords: salted bcrypt hashes with a configurable cost.
package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinCost is the lowest bcrypt cost accepted for stored hashes.
const MinCost = 10

// MaxPasswordLength is the longest input bcrypt hashes without truncation.
const MaxPasswordLength = 72

var (
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
	ErrMismatch        = errors.New("password does not match")
)

// NormalizeCost clamps cost into [MinCost, bcrypt.MaxCost].
func NormalizeCost(cost int) int {
	if cost < MinCost {
		return MinCost
	}
	if cost > bcrypt.MaxCost {
		return bcrypt.MaxCost
	}
	return cost
}

// HashPassword returns the bcrypt hash of password. The salt is generated by
// bcrypt and embedded in the result together with the cost.
func HashPassword(password string, cost int) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), NormalizeCost(cost))
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares password against a hash produced by HashPassword.
// It returns ErrMismatch when they differ and a wrapped error when the hash
// itself is malformed.
func VerifyPassword(hash, password string) error {
	// bcrypt ignores input past 72 bytes; such passwords were never hashed.
	if len(password) > MaxPasswordLength {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("bcrypt: %w", err)
	}
}
