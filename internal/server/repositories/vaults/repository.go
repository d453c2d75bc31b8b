// Package vaults persists vault records. File references live in the files
// repository; a vault returned from here has FileRefs unset.
package vaults

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, vault *models.Vault) (*models.Vault, error)
	// GetByID returns common.ErrorNotFound when the vault does not exist.
	GetByID(ctx context.Context, id string) (*models.Vault, error)
	// GetByIDForUpdate is GetByID that also locks the row until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*models.Vault, error)
	// FindByOwnerAndName returns every vault of ownerID called name, oldest first.
	FindByOwnerAndName(ctx context.Context, ownerID, name string) ([]*models.Vault, error)
	// ListByOwner returns summaries with FileCount filled and Locked unset.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.VaultSummary, error)
	// Delete returns common.ErrorNotFound when no row was removed.
	Delete(ctx context.Context, id string) error
}
