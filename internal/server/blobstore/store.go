// Package blobstore stores vault file contents in object storage. The core
// only sees the Store interface; S3 and Backblaze B2 implement it.
package blobstore

import (
	"context"
	"fmt"
	"path"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/google/uuid"
)

// Object describes a stored blob.
type Object struct {
	// Ref is the opaque reference recorded in the vault and later passed to
	// Remove.
	Ref string
	// URL locates the blob for the caller.
	URL string
}

// Store puts and removes blobs. Every error returned wraps
// common.ErrStorageFailure.
type Store interface {
	Put(ctx context.Context, key string, data []byte) (*Object, error)
	Remove(ctx context.Context, refs []string) error
}

// NewKey returns a fresh object key for a file named name in vaultID:
// vaults/<vaultID>/<uuid>/<name>. The name is reduced to its base and
// stripped of control characters.
func NewKey(vaultID, name string) string {
	return fmt.Sprintf("vaults/%s/%s/%s", vaultID, uuid.NewString(), sanitizeName(name))
}

func sanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "file"
	}
	return name
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrStorageFailure, op, err)
}
