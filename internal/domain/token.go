package domain

import (
	"context"
	"time"
)

// TokenClaims is the verified content of an access token. Subject is the
// user name acting as the identity claim; ID is the jti used as the
// revocation key.
type TokenClaims struct {
	Subject   string
	ID        string
	ExpiresAt time.Time
}

// TokenIssuer issues signed, time-limited access tokens for a user.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenVerifier checks signature and expiry and returns the claims.
// Verification is local; it performs no storage lookups.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// RevokedTokenRepository is the durable revocation set keyed by jti.
// Adding an already-present jti succeeds; entries are never removed.
type RevokedTokenRepository interface {
	Add(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService authenticates bearer tokens and revokes them on logout.
// Authenticate must reject a revoked token for the rest of its lifetime.
type AuthService interface {
	Authenticate(ctx context.Context, token string) (*TokenClaims, error)
	Logout(ctx context.Context, jti string) error
}
