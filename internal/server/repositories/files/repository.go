// Package files persists the ordered file references of each vault.
package files

import (
	"context"
)

// Repository stores vault file references in append order.
type Repository interface {
	// Append adds refs to the end of vaultID's references and returns the
	// total count afterwards.
	Append(ctx context.Context, vaultID string, refs []string) (int, error)
	// List returns vaultID's references in append order.
	List(ctx context.Context, vaultID string) ([]string, error)
	Count(ctx context.Context, vaultID string) (int, error)
	DeleteByVault(ctx context.Context, vaultID string) error
}
