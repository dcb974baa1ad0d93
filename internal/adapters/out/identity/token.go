// Package identity is the boundary to the identity provider. It verifies
// session tokens and turns them into domain actors; issuing tokens exists
// for operational tooling and tests. Account credentials live with the
// provider, never here.
package identity

import (
	"errors"
	"fmt"
	"time"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretIsRequired = errors.New("token secret is required")
	ErrInvalidToken     = errors.New("invalid session token")
)

// Claims carries the marketplace role next to the registered JWT claims.
// The subject is the account's UUID.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService verifies HMAC-signed session tokens. Construct one per
// process and pass it where needed; the secret is injected, not read from
// the environment at call time.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret
// and token lifetime.
func NewTokenService(secret []byte, ttl time.Duration) (TokenService, error) {
	if len(secret) == 0 {
		return TokenService{}, ErrSecretIsRequired
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return TokenService{secret: secret, ttl: ttl}, nil
}

// Issue signs a session token for the actor. Used by operational tooling
// and tests; production tokens come from the identity provider, which
// shares the signing secret.
func (s TokenService) Issue(act actor.Actor, now time.Time) (string, error) {
	if err := act.Validate(); err != nil {
		return "", err
	}

	claims := Claims{
		Role: act.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   act.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the actor it
// identifies. Any defect, bad signature, expired, unknown role, malformed
// subject, comes back wrapped in ErrInvalidToken.
func (s TokenService) Verify(tokenStr string) (actor.Actor, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return actor.Actor{}, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	role, err := actor.RoleFromString(claims.Role)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	act, err := actor.NewActor(id, role)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return act, nil
}
