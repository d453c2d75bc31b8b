// Package services contains server-side business logic: credential handling
// (UserService), the vault registry (VaultService), ownership checks (Guard)
// and the time-lock access gate (AccessGate).
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/cryptox"
	"github.com/dmitrijs2005/timevault/internal/idx"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/auth"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
)

// MaxUsernameLength bounds usernames in bytes.
const MaxUsernameLength = 64

// UserService provides authentication-related operations:
// - Register: create users
// - Authenticate: verify credentials
// - Login: verify credentials and mint a session token
type UserService struct {
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenService
	bcryptCost  int
	log         logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, tokens *auth.TokenService, cfg *config.Config, l logging.Logger) *UserService {
	if l == nil {
		l = logging.Nop()
	}
	return &UserService{
		repomanager: m,
		tokens:      tokens,
		bcryptCost:  cryptox.NormalizeCost(cfg.BcryptCost),
		log:         l.With("module", "user_service"),
	}
}

// Register creates a user with a bcrypt hash of password. It fails with
// common.ErrDuplicateUsername when the name is taken.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	hash, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{ID: idx.New(), UserName: username, PasswordHash: hash}
	u, err := s.repomanager.Users(s.repomanager.DB()).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Authenticate returns the id of the user identified by username and
// password. Unknown users and wrong passwords both yield
// common.ErrInvalidCredentials, and both cost one bcrypt comparison.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.repomanager.Users(s.repomanager.DB()).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = cryptox.VerifyPassword(s.dummy(), password)
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if err := cryptox.VerifyPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("verify password: %w", err)
	}

	return user.ID, nil
}

// Login authenticates the user and issues a session token.
func (s *UserService) Login(ctx context.Context, username, password string) (*auth.Token, error) {
	userID, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueSessionToken(userID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}

// dummy returns a hash with the configured cost, compared against when the
// user does not exist.
func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := cryptox.HashPassword("timevault-dummy-password", s.bcryptCost)
		if err != nil {
			panic(err)
		}
		s.dummyHash = h
	})
	return s.dummyHash
}

func validateCredentials(username, password string) error {
	switch {
	case username == "":
		return common.Validationf("username is empty")
	case len(username) > MaxUsernameLength:
		return common.Validationf("username exceeds %d bytes", MaxUsernameLength)
	case password == "":
		return common.Validationf("password is empty")
	case len(password) > cryptox.MaxPasswordLength:
		return common.Validationf("password exceeds %d bytes", cryptox.MaxPasswordLength)
	}
	return nil
}
