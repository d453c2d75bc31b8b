package common

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockedError_MatchesSentinel(t *testing.T) {
	unlockAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	err := fmt.Errorf("access: %w", NewLockedError(unlockAt))

	require.ErrorIs(t, err, ErrLocked)
	assert.NotErrorIs(t, err, ErrInvalidPassword)

	var le *LockedError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, unlockAt, le.UnlockAt)
	assert.Contains(t, err.Error(), "2030-01-01T00:00:00Z")
}

func TestValidationf(t *testing.T) {
	err := Validationf("name must not be longer than %d bytes", 128)

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation error: name must not be longer than 128 bytes", err.Error())
}
