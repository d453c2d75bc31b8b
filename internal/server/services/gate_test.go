package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	v := &models.Vault{UnlockAt: t2030}

	assert.Equal(t, Locked, State(v, t2030.Add(-time.Nanosecond)))
	assert.Equal(t, Unlocked, State(v, t2030))
	assert.Equal(t, Unlocked, State(v, t2030.Add(time.Nanosecond)))

	assert.Equal(t, "locked", Locked.String())
	assert.Equal(t, "unlocked", Unlocked.String())
	assert.Equal(t, "VaultState(7)", VaultState(7).String())
}

func TestAccessGate_TripScenario(t *testing.T) {
	f := newFixture(t, t2025)
	ctx := context.Background()
	owner := f.register(t, "alice")

	v, err := f.vaults.CreateVault(ctx, owner, "trip", t2030, "p@ss")
	require.NoError(t, err)
	_, err = f.vaults.AppendFiles(ctx, v.ID, owner, []string{"v1/photo.jpg"})
	require.NoError(t, err)

	// 2025: locked whatever the password
	for _, pw := range []string{"p@ss", "wrong"} {
		_, err = f.gate.AccessVault(ctx, owner, VaultRef{Name: "trip"}, pw)
		var locked *common.LockedError
		require.ErrorAs(t, err, &locked)
		assert.ErrorIs(t, err, common.ErrLocked)
		assert.Equal(t, t2030, locked.UnlockAt)
		assert.Contains(t, err.Error(), "2030-01-01T00:00:00Z")
	}

	f.clock.Set(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err = f.gate.AccessVault(ctx, owner, VaultRef{Name: "trip"}, "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidPassword)

	refs, err := f.gate.AccessVault(ctx, owner, VaultRef{Name: "trip"}, "p@ss")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1/photo.jpg"}, refs)

	refs, err = f.gate.AccessVault(ctx, owner, VaultRef{ID: v.ID}, "p@ss")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1/photo.jpg"}, refs)
}

func TestAccessGate_UnlocksAtExactInstant(t *testing.T) {
	f := newFixture(t, t2030.Add(-time.Nanosecond))
	owner := f.register(t, "alice")
	v := f.createVault(t, owner, "trip")

	_, err := f.gate.AccessVault(context.Background(), owner, VaultRef{ID: v.ID}, "p@ss")
	assert.ErrorIs(t, err, common.ErrLocked)

	f.clock.Advance(time.Nanosecond)
	refs, err := f.gate.AccessVault(context.Background(), owner, VaultRef{ID: v.ID}, "p@ss")
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestAccessGate_AccessVault_Errors(t *testing.T) {
	f := newFixture(t, t2030)
	ctx := context.Background()
	owner := f.register(t, "alice")
	other := f.register(t, "mallory")
	v := f.createVault(t, owner, "trip")

	_, err := f.gate.AccessVault(ctx, other, VaultRef{ID: v.ID}, "p@ss")
	assert.ErrorIs(t, err, common.ErrForbidden)

	// names are scoped to the caller
	_, err = f.gate.AccessVault(ctx, other, VaultRef{Name: "trip"}, "p@ss")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.gate.AccessVault(ctx, owner, VaultRef{ID: "missing"}, "p@ss")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.gate.AccessVault(ctx, owner, VaultRef{}, "p@ss")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAccessGate_NonOwnerIsForbiddenEverywhere(t *testing.T) {
	f := newFixture(t, t2030)
	ctx := context.Background()
	owner := f.register(t, "alice")
	other := f.register(t, "mallory")
	v := f.createVault(t, owner, "trip")

	_, err := f.vaults.AppendFiles(ctx, v.ID, other, []string{"x"})
	assert.ErrorIs(t, err, common.ErrForbidden)

	err = f.vaults.DeleteVault(ctx, v.ID, other)
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = f.gate.ShareVault(ctx, other, v.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = f.gate.AccessVault(ctx, other, VaultRef{ID: v.ID}, "p@ss")
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestAccessGate_ShareVault(t *testing.T) {
	f := newFixture(t, t2025)
	ctx := context.Background()
	owner := f.register(t, "alice")
	v := f.createVault(t, owner, "trip")
	_, err := f.vaults.AppendFiles(ctx, v.ID, owner, []string{"v1/photo.jpg"})
	require.NoError(t, err)

	_, err = f.gate.ShareVault(ctx, owner, v.ID)
	require.ErrorIs(t, err, common.ErrLocked)

	_, err = f.gate.ShareVault(ctx, owner, "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)

	f.clock.Set(t2030)
	tok, err := f.gate.ShareVault(ctx, owner, v.ID)
	require.NoError(t, err)
	assert.Equal(t, t2030.Add(7*24*time.Hour), tok.ExpiresAt)

	pub, err := f.gate.PublicAccess(ctx, tok.Value)
	require.NoError(t, err)
	assert.Equal(t, &PublicVault{Name: "trip", FileRefs: []string{"v1/photo.jpg"}}, pub)

	// exactly at expiry still works, one nanosecond later it does not
	f.clock.Set(tok.ExpiresAt)
	_, err = f.gate.PublicAccess(ctx, tok.Value)
	require.NoError(t, err)

	f.clock.Advance(time.Nanosecond)
	_, err = f.gate.PublicAccess(ctx, tok.Value)
	assert.ErrorIs(t, err, common.ErrExpiredToken)
}

func TestAccessGate_PublicAccess_Errors(t *testing.T) {
	f := newFixture(t, t2030)
	ctx := context.Background()
	owner := f.register(t, "alice")
	v := f.createVault(t, owner, "trip")

	_, err := f.gate.PublicAccess(ctx, "garbage")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	session, err := f.users.Login(ctx, "alice", "alice-pw")
	require.NoError(t, err)
	_, err = f.gate.PublicAccess(ctx, session.Value)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	share, err := f.gate.ShareVault(ctx, owner, v.ID)
	require.NoError(t, err)
	_, err = f.tokens.VerifySessionToken(share.Value)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	require.NoError(t, f.vaults.DeleteVault(ctx, v.ID, owner))
	_, err = f.gate.PublicAccess(ctx, share.Value)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAccessGate_PublicAccess_SkipsPasswordAndLock(t *testing.T) {
	f := newFixture(t, t2030)
	ctx := context.Background()
	owner := f.register(t, "alice")
	v := f.createVault(t, owner, "trip")

	tok, err := f.tokens.IssueShareToken(v.ID)
	require.NoError(t, err)

	// a token minted out of band for a locked vault is still honoured
	f.clock.Set(t2025)
	pub, err := f.gate.PublicAccess(ctx, tok.Value)
	require.NoError(t, err)
	assert.Equal(t, "trip", pub.Name)
}

func TestGuard(t *testing.T) {
	var g Guard
	v := &models.Vault{OwnerID: "u1", UnlockAt: t2030}

	assert.NoError(t, g.RequireOwner(v, "u1"))
	assert.ErrorIs(t, g.RequireOwner(v, "u2"), common.ErrForbidden)
	assert.ErrorIs(t, g.RequireOwner(v, ""), common.ErrForbidden)

	assert.NoError(t, g.RequireUnlocked(v, t2030))
	err := g.RequireUnlocked(v, t2025)
	var locked *common.LockedError
	require.True(t, errors.As(err, &locked))
	assert.Equal(t, t2030, locked.UnlockAt)
}
