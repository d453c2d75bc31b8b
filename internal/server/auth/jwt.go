// Package auth issues and verifies the HS256 JWTs used by the server:
// session tokens bound to a user and share tokens bound to a vault.
package auth

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/timevault/internal/clock"
	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token audiences. A token is only accepted by the verifier of its own kind.
const (
	AudienceSession = "session"
	AudienceShare   = "share"
)

// Claims holds the registered claims plus the expiry in unix nanoseconds.
// ExpiresAtNano is authoritative; the standard exp claim is rounded to
// seconds and only written for other consumers.
type Claims struct {
	jwt.RegisteredClaims
	ExpiresAtNano int64 `json:"exp_ns"`
}

// Token is a signed token together with its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenService signs and verifies tokens with a single process-wide secret.
// It is safe for concurrent use.
type TokenService struct {
	secret          []byte
	sessionValidity time.Duration
	shareValidity   time.Duration
	clock           clock.Clock
}

// NewTokenService returns a TokenService. Both validities must be positive
// and secret must not be empty. A nil clk means the real clock.
func NewTokenService(secret []byte, sessionValidity, shareValidity time.Duration, clk clock.Clock) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth: empty secret key")
	}
	if sessionValidity <= 0 || shareValidity <= 0 {
		return nil, errors.New("auth: token validity must be positive")
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &TokenService{
		secret:          slices.Clone(secret),
		sessionValidity: sessionValidity,
		shareValidity:   shareValidity,
		clock:           clk,
	}, nil
}

// IssueSessionToken returns a session token for userID.
func (s *TokenService) IssueSessionToken(userID string) (*Token, error) {
	return s.issue(userID, AudienceSession, "", s.sessionValidity)
}

// VerifySessionToken returns the user id carried by a valid session token.
func (s *TokenService) VerifySessionToken(token string) (string, error) {
	claims, err := s.verify(token, AudienceSession)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IssueShareToken returns a share token for vaultID. The token carries a
// random id (jti) and no user identity.
func (s *TokenService) IssueShareToken(vaultID string) (*Token, error) {
	return s.issue(vaultID, AudienceShare, uuid.NewString(), s.shareValidity)
}

// VerifyShareToken returns the vault id carried by a valid share token.
func (s *TokenService) VerifyShareToken(token string) (string, error) {
	claims, err := s.verify(token, AudienceShare)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *TokenService) issue(subject, audience, id string, validity time.Duration) (*Token, error) {
	if subject == "" {
		return nil, common.Validationf("token subject is empty")
	}

	now := s.clock.Now()
	expiresAt := now.Add(validity)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        id,
		},
		ExpiresAtNano: expiresAt.UnixNano(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Token{Value: tokenString, ExpiresAt: expiresAt}, nil
}

// verify checks signature, algorithm and audience, then expiry against the
// injected clock. A token is still valid at exactly its expiry instant.
func (s *TokenService) verify(tokenString, audience string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.Subject == "" || claims.ExpiresAtNano == 0 || !slices.Contains(claims.Audience, audience) {
		return nil, common.ErrInvalidToken
	}

	if s.clock.Now().After(time.Unix(0, claims.ExpiresAtNano)) {
		return nil, common.ErrExpiredToken
	}

	return claims, nil
}
