// Package users persists registered accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// Repository stores users. Create fails with common.ErrDuplicateUsername when
// the username is taken; GetUserByLogin fails with common.ErrorNotFound when
// no such user exists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
