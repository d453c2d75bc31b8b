// Package common defines shared constants and sentinel errors used across
// the server layers of TimeVault. Callers should use errors.Is to match these
// values; every error returned by the core wraps exactly one of them.
package common

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Input validation.
	ErrValidation = errors.New("validation error")

	// Credential errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")

	// Vault access errors.
	ErrForbidden       = errors.New("forbidden")
	ErrLocked          = errors.New("vault is locked")
	ErrInvalidPassword = errors.New("invalid vault password")

	// Blob storage errors.
	ErrStorageFailure = errors.New("storage failure")
)

// LockedError reports that a vault cannot be read before UnlockAt.
// It matches ErrLocked with errors.Is.
type LockedError struct {
	UnlockAt time.Time
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("%s until %s", ErrLocked, e.UnlockAt.UTC().Format(time.RFC3339))
}

func (e *LockedError) Is(target error) bool {
	return target == ErrLocked
}

// NewLockedError returns a *LockedError for the given unlock time.
func NewLockedError(unlockAt time.Time) error {
	return &LockedError{UnlockAt: unlockAt}
}

// Validationf wraps ErrValidation with a formatted message describing the
// offending input.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
