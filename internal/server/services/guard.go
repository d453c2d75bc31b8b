package services

import (
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// Guard enforces vault ownership and the time lock. The zero value is ready
// to use.
type Guard struct{}

// RequireOwner fails with common.ErrForbidden unless callerUserID owns v.
func (Guard) RequireOwner(v *models.Vault, callerUserID string) error {
	if callerUserID == "" || v.OwnerID != callerUserID {
		return common.ErrForbidden
	}
	return nil
}

// RequireUnlocked fails with a *common.LockedError while now is before
// v.UnlockAt.
func (Guard) RequireUnlocked(v *models.Vault, now time.Time) error {
	if v.Locked(now) {
		return common.NewLockedError(v.UnlockAt)
	}
	return nil
}
