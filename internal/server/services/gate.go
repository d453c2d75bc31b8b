package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timevault/internal/clock"
	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/cryptox"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/auth"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// VaultState is the time-lock state of a vault at some instant.
type VaultState int

const (
	Locked VaultState = iota
	Unlocked
)

func (s VaultState) String() string {
	switch s {
	case Locked:
		return "locked"
	case Unlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("VaultState(%d)", int(s))
	}
}

// State reports whether v is Locked or Unlocked at now. A vault unlocks at
// exactly UnlockAt.
func State(v *models.Vault, now time.Time) VaultState {
	if v.Locked(now) {
		return Locked
	}
	return Unlocked
}

// VaultRef names a vault by id or, when ID is empty, by its owner-scoped
// name.
type VaultRef struct {
	ID   string
	Name string
}

// PublicVault is what a share token holder gets to see.
type PublicVault struct {
	Name     string
	FileRefs []string
}

// AccessGate decides whether vault contents may be revealed.
type AccessGate struct {
	vaults *VaultService
	tokens *auth.TokenService
	clock  clock.Clock
	guard  Guard
	log    logging.Logger
}

func NewAccessGate(vaults *VaultService, tokens *auth.TokenService, clk clock.Clock, l logging.Logger) *AccessGate {
	if clk == nil {
		clk = clock.Real()
	}
	if l == nil {
		l = logging.Nop()
	}
	return &AccessGate{
		vaults: vaults,
		tokens: tokens,
		clock:  clk,
		log:    l.With("module", "access_gate"),
	}
}

// AccessVault returns the file references of the caller's vault once it is
// unlocked and password matches. While locked it fails with a
// *common.LockedError whatever the password.
func (g *AccessGate) AccessVault(ctx context.Context, callerID string, ref VaultRef, password string) ([]string, error) {
	v, err := g.vaults.ResolveVault(ctx, callerID, ref.ID, ref.Name)
	if err != nil {
		return nil, err
	}
	if err := g.guard.RequireOwner(v, callerID); err != nil {
		return nil, err
	}
	if err := g.guard.RequireUnlocked(v, g.clock.Now()); err != nil {
		return nil, err
	}

	if err := cryptox.VerifyPassword(v.PasswordHash, password); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			g.log.Warn(ctx, "wrong vault password", "vault_id", v.ID)
			return nil, common.ErrInvalidPassword
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}

	return v.FileRefs, nil
}

// ShareVault issues a share token for an unlocked vault owned by callerID.
func (g *AccessGate) ShareVault(ctx context.Context, callerID, vaultID string) (*auth.Token, error) {
	v, err := g.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if err := g.guard.RequireOwner(v, callerID); err != nil {
		return nil, err
	}
	if err := g.guard.RequireUnlocked(v, g.clock.Now()); err != nil {
		return nil, err
	}

	token, err := g.tokens.IssueShareToken(v.ID)
	if err != nil {
		return nil, fmt.Errorf("issue share token: %w", err)
	}

	g.log.Info(ctx, "share token issued", "vault_id", v.ID, "expires_at", token.ExpiresAt)
	return token, nil
}

// PublicAccess returns the vault named by a share token. The token alone
// grants access: neither the password nor the unlock time is checked again.
func (g *AccessGate) PublicAccess(ctx context.Context, shareToken string) (*PublicVault, error) {
	vaultID, err := g.tokens.VerifyShareToken(shareToken)
	if err != nil {
		return nil, err
	}

	v, err := g.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	return &PublicVault{Name: v.Name, FileRefs: v.FileRefs}, nil
}
