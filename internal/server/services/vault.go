package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timevault/internal/clock"
	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/cryptox"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/idx"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/blobstore"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
)

// MaxVaultNameLength bounds vault names in bytes.
const MaxVaultNameLength = 128

// UploadResult reports the blobs written by UploadFiles.
type UploadResult struct {
	Objects []blobstore.Object
	Count   int
}

// VaultService owns vault records: creation, file reference appends,
// uploads, deletion and listing.
//
// Appends, uploads and deletes of one vault are serialized by a per-vault
// lock; with PostgreSQL the vault row is additionally locked for the
// duration of the transaction.
type VaultService struct {
	repomanager    repomanager.RepositoryManager
	blobs          blobstore.Store
	clock          clock.Clock
	bcryptCost     int
	storageTimeout time.Duration
	locks          *keyedMutex
	guard          Guard
	log            logging.Logger
}

// NewVaultService constructs a VaultService. A nil clk means the real clock.
func NewVaultService(m repomanager.RepositoryManager, blobs blobstore.Store, cfg *config.Config, clk clock.Clock, l logging.Logger) *VaultService {
	if clk == nil {
		clk = clock.Real()
	}
	if l == nil {
		l = logging.Nop()
	}
	return &VaultService{
		repomanager:    m,
		blobs:          blobs,
		clock:          clk,
		bcryptCost:     cryptox.NormalizeCost(cfg.BcryptCost),
		storageTimeout: cfg.StorageTimeout,
		locks:          newKeyedMutex(),
		log:            l.With("module", "vault_service"),
	}
}

// CreateVault stores a new, empty vault owned by ownerID. Names need not be
// unique.
func (s *VaultService) CreateVault(ctx context.Context, ownerID, name string, unlockAt time.Time, password string) (*models.Vault, error) {
	switch {
	case ownerID == "":
		return nil, common.Validationf("owner is empty")
	case name == "":
		return nil, common.Validationf("vault name is empty")
	case len(name) > MaxVaultNameLength:
		return nil, common.Validationf("vault name exceeds %d bytes", MaxVaultNameLength)
	case unlockAt.IsZero():
		return nil, common.Validationf("unlock time is missing")
	case password == "":
		return nil, common.Validationf("vault password is empty")
	case len(password) > cryptox.MaxPasswordLength:
		return nil, common.Validationf("vault password exceeds %d bytes", cryptox.MaxPasswordLength)
	}

	hash, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	vault := &models.Vault{
		ID:           idx.New(),
		OwnerID:      ownerID,
		Name:         name,
		UnlockAt:     unlockAt.UTC(),
		PasswordHash: hash,
	}
	v, err := s.repomanager.Vaults(s.repomanager.DB()).Create(ctx, vault)
	if err != nil {
		return nil, fmt.Errorf("error creating vault: %w", err)
	}
	v.FileRefs = []string{}

	s.log.Info(ctx, "vault created", "vault_id", v.ID, "owner_id", ownerID, "unlock_at", v.UnlockAt)
	return v, nil
}

// AppendFiles appends refs to the vault as one unit and returns the new
// reference count.
func (s *VaultService) AppendFiles(ctx context.Context, vaultID, ownerID string, refs []string) (int, error) {
	if len(refs) == 0 {
		return 0, common.Validationf("no file references")
	}
	for i, r := range refs {
		if r == "" {
			return 0, common.Validationf("file reference %d is empty", i)
		}
	}

	unlock := s.locks.Lock(vaultID)
	defer unlock()

	return s.append(ctx, vaultID, ownerID, refs)
}

// append runs the locked read-check-append transaction. The caller holds
// the vault's keyed lock.
func (s *VaultService) append(ctx context.Context, vaultID, ownerID string, refs []string) (int, error) {
	var count int
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		v, err := s.repomanager.Vaults(tx).GetByIDForUpdate(ctx, vaultID)
		if err != nil {
			return err
		}
		if err := s.guard.RequireOwner(v, ownerID); err != nil {
			return err
		}
		count, err = s.repomanager.Files(tx).Append(ctx, vaultID, refs)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UploadFiles writes every file to blob storage and then appends all of the
// new refs in one unit. If any write fails, blobs already written are
// removed and nothing is appended. If the append fails, all written blobs
// are removed.
func (s *VaultService) UploadFiles(ctx context.Context, vaultID, ownerID string, files []models.NamedFile) (*UploadResult, error) {
	if len(files) == 0 {
		return nil, common.Validationf("no files")
	}
	for i, f := range files {
		if f.Name == "" {
			return nil, common.Validationf("file %d has no name", i)
		}
	}

	unlock := s.locks.Lock(vaultID)
	defer unlock()

	v, err := s.repomanager.Vaults(s.repomanager.DB()).GetByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.RequireOwner(v, ownerID); err != nil {
		return nil, err
	}

	objects := make([]blobstore.Object, 0, len(files))
	for _, f := range files {
		key := blobstore.NewKey(vaultID, f.Name)

		var obj *blobstore.Object
		err := s.withStorageTimeout(ctx, func(ctx context.Context) error {
			var err error
			obj, err = s.blobs.Put(ctx, key, f.Content)
			return err
		})
		if err != nil {
			return nil, errors.Join(err, s.discard(ctx, vaultID, objects))
		}
		objects = append(objects, *obj)
	}

	refs := make([]string, len(objects))
	for i, o := range objects {
		refs[i] = o.Ref
	}

	count, err := s.append(ctx, vaultID, ownerID, refs)
	if err != nil {
		return nil, errors.Join(err, s.discard(ctx, vaultID, objects))
	}

	s.log.Info(ctx, "files uploaded", "vault_id", vaultID, "files", len(objects), "count", count)
	return &UploadResult{Objects: objects, Count: count}, nil
}

// discard removes blobs written by a failed upload. A failure is logged and
// returned for the caller to join.
func (s *VaultService) discard(ctx context.Context, vaultID string, objects []blobstore.Object) error {
	if len(objects) == 0 {
		return nil
	}
	refs := make([]string, len(objects))
	for i, o := range objects {
		refs[i] = o.Ref
	}

	err := s.withStorageTimeout(context.WithoutCancel(ctx), func(ctx context.Context) error {
		return s.blobs.Remove(ctx, refs)
	})
	if err != nil {
		s.log.Error(ctx, "failed to remove staged blobs", "vault_id", vaultID, "refs", refs, "error", err)
		return fmt.Errorf("cleanup: %w", err)
	}
	return nil
}

// DeleteVault removes every blob of the vault and then the vault record.
// When blob removal fails the record is kept.
func (s *VaultService) DeleteVault(ctx context.Context, vaultID, ownerID string) error {
	unlock := s.locks.Lock(vaultID)
	defer unlock()

	var removed int
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		v, err := s.repomanager.Vaults(tx).GetByIDForUpdate(ctx, vaultID)
		if err != nil {
			return err
		}
		if err := s.guard.RequireOwner(v, ownerID); err != nil {
			return err
		}

		refs, err := s.repomanager.Files(tx).List(ctx, vaultID)
		if err != nil {
			return err
		}
		if len(refs) > 0 {
			err := s.withStorageTimeout(ctx, func(ctx context.Context) error {
				return s.blobs.Remove(ctx, refs)
			})
			if err != nil {
				s.log.Error(ctx, "blob removal failed, vault kept", "vault_id", vaultID, "error", err)
				return err
			}
		}
		removed = len(refs)

		if err := s.repomanager.Files(tx).DeleteByVault(ctx, vaultID); err != nil {
			return err
		}
		return s.repomanager.Vaults(tx).Delete(ctx, vaultID)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "vault deleted", "vault_id", vaultID, "blobs", removed)
	return nil
}

// ListVaults returns summaries of ownerID's vaults, oldest first.
func (s *VaultService) ListVaults(ctx context.Context, ownerID string) ([]*models.VaultSummary, error) {
	list, err := s.repomanager.Vaults(s.repomanager.DB()).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	for _, v := range list {
		v.Locked = now.Before(v.UnlockAt)
	}
	return list, nil
}

// GetVault loads a vault with its file references.
func (s *VaultService) GetVault(ctx context.Context, vaultID string) (*models.Vault, error) {
	if vaultID == "" {
		return nil, common.Validationf("vault id is empty")
	}
	v, err := s.repomanager.Vaults(s.repomanager.DB()).GetByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	return s.withRefs(ctx, v)
}

// FindVault loads ownerID's vault called name. More than one match is a
// validation error.
func (s *VaultService) FindVault(ctx context.Context, ownerID, name string) (*models.Vault, error) {
	if name == "" {
		return nil, common.Validationf("vault name is empty")
	}
	found, err := s.repomanager.Vaults(s.repomanager.DB()).FindByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, common.ErrorNotFound
	case 1:
		return s.withRefs(ctx, found[0])
	default:
		return nil, common.Validationf("ambiguous vault name %q: %d vaults match, use the vault id", name, len(found))
	}
}

// ResolveVault looks a vault up by id when vaultID is set and by ownerID
// and name otherwise.
func (s *VaultService) ResolveVault(ctx context.Context, ownerID, vaultID, name string) (*models.Vault, error) {
	if vaultID != "" {
		return s.GetVault(ctx, vaultID)
	}
	if name == "" {
		return nil, common.Validationf("vault id or name is required")
	}
	return s.FindVault(ctx, ownerID, name)
}

func (s *VaultService) withRefs(ctx context.Context, v *models.Vault) (*models.Vault, error) {
	refs, err := s.repomanager.Files(s.repomanager.DB()).List(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.FileRefs = refs
	return v, nil
}

// withStorageTimeout runs fn with the storage timeout applied and makes sure
// any failure reads as common.ErrStorageFailure.
func (s *VaultService) withStorageTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.storageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.storageTimeout)
		defer cancel()
	}

	err := fn(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrStorageFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
}
