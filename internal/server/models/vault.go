package models

import "time"

// Vault is a named, owned collection of file references that may only be
// read once UnlockAt has passed and the vault password is supplied.
type Vault struct {
	ID           string
	OwnerID      string
	Name         string
	UnlockAt     time.Time
	PasswordHash string
	CreatedAt    time.Time

	// FileRefs holds opaque blob-storage keys in append order. Repositories
	// only populate it when the caller asks for the files.
	FileRefs []string
}

// Locked reports whether the vault is still time-locked at now.
func (v *Vault) Locked(now time.Time) bool {
	return now.Before(v.UnlockAt)
}

// Summary strips the password hash and file references.
func (v *Vault) Summary(now time.Time) VaultSummary {
	return VaultSummary{
		ID:        v.ID,
		Name:      v.Name,
		UnlockAt:  v.UnlockAt,
		CreatedAt: v.CreatedAt,
		FileCount: len(v.FileRefs),
		Locked:    v.Locked(now),
	}
}

// VaultSummary is the listing view of a vault. It is safe to return while
// the vault is locked.
type VaultSummary struct {
	ID        string
	Name      string
	UnlockAt  time.Time
	CreatedAt time.Time
	FileCount int
	Locked    bool
}

// NamedFile is a file payload to be stored in a vault.
type NamedFile struct {
	Name    string
	Content []byte
}
