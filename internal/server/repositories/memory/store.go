// Package memory implements the server repositories on top of in-process
// maps. It is used when no database DSN is configured and by service tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/timevault/internal/clock"
	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// Store holds all records. Every repository vended for the same Store sees
// the same data, and deleting a vault drops its file references as well.
type Store struct {
	mu     sync.Mutex
	clock  clock.Clock
	users  map[string]models.User // by username
	vaults map[string]models.Vault
	files  map[string][]string
}

// NewStore returns an empty Store that stamps CreatedAt from clk.
func NewStore(clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.Real()
	}
	return &Store{
		clock:  clk,
		users:  make(map[string]models.User),
		vaults: make(map[string]models.Vault),
		files:  make(map[string][]string),
	}
}

// UserRepository implements users.Repository.
type UserRepository struct{ s *Store }

func NewUserRepository(s *Store) *UserRepository { return &UserRepository{s: s} }

func (r *UserRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.UserName]; ok {
		return nil, common.ErrDuplicateUsername
	}
	user.CreatedAt = r.s.clock.Now()
	r.s.users[user.UserName] = *user
	return user, nil
}

func (r *UserRepository) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

// VaultRepository implements vaults.Repository.
type VaultRepository struct{ s *Store }

func NewVaultRepository(s *Store) *VaultRepository { return &VaultRepository{s: s} }

func (r *VaultRepository) Create(_ context.Context, vault *models.Vault) (*models.Vault, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaults[vault.ID]; ok {
		return nil, common.Validationf("vault id %q already exists", vault.ID)
	}
	vault.CreatedAt = r.s.clock.Now()
	v := *vault
	v.FileRefs = nil
	r.s.vaults[v.ID] = v
	return vault, nil
}

func (r *VaultRepository) GetByID(_ context.Context, id string) (*models.Vault, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.vaults[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &v, nil
}

// GetByIDForUpdate is GetByID. The memory store has no row locks; the
// service's per-vault lock serializes writers of one vault.
func (r *VaultRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Vault, error) {
	return r.GetByID(ctx, id)
}

func (r *VaultRepository) FindByOwnerAndName(_ context.Context, ownerID, name string) ([]*models.Vault, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*models.Vault
	for _, v := range r.s.vaults {
		if v.OwnerID == ownerID && v.Name == name {
			result = append(result, &v)
		}
	}
	slices.SortFunc(result, func(a, b *models.Vault) int { return strings.Compare(a.ID, b.ID) })
	return result, nil
}

func (r *VaultRepository) ListByOwner(_ context.Context, ownerID string) ([]*models.VaultSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*models.VaultSummary, 0)
	for _, v := range r.s.vaults {
		if v.OwnerID != ownerID {
			continue
		}
		result = append(result, &models.VaultSummary{
			ID:        v.ID,
			Name:      v.Name,
			UnlockAt:  v.UnlockAt,
			CreatedAt: v.CreatedAt,
			FileCount: len(r.s.files[v.ID]),
		})
	}
	slices.SortFunc(result, func(a, b *models.VaultSummary) int { return strings.Compare(a.ID, b.ID) })
	return result, nil
}

func (r *VaultRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaults[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.vaults, id)
	delete(r.s.files, id)
	return nil
}

// FileRepository implements files.Repository.
type FileRepository struct{ s *Store }

func NewFileRepository(s *Store) *FileRepository { return &FileRepository{s: s} }

func (r *FileRepository) Append(_ context.Context, vaultID string, refs []string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaults[vaultID]; !ok {
		return 0, common.ErrorNotFound
	}
	r.s.files[vaultID] = append(r.s.files[vaultID], refs...)
	return len(r.s.files[vaultID]), nil
}

func (r *FileRepository) List(_ context.Context, vaultID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return append([]string{}, r.s.files[vaultID]...), nil
}

func (r *FileRepository) Count(_ context.Context, vaultID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return len(r.s.files[vaultID]), nil
}

func (r *FileRepository) DeleteByVault(_ context.Context, vaultID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.files, vaultID)
	return nil
}
