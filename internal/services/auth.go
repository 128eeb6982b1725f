package services

import (
	"context"
	"fmt"

	"eventchat/internal/domain"
)

type authService struct {
	verifier    domain.TokenVerifier
	revokedRepo domain.RevokedTokenRepository
}

// NewAuthService creates an AuthService that verifies tokens locally and
// checks the durable revocation set on every call.
func NewAuthService(verifier domain.TokenVerifier, revokedRepo domain.RevokedTokenRepository) domain.AuthService {
	return &authService{
		verifier:    verifier,
		revokedRepo: revokedRepo,
	}
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.TokenClaims, error) {
	// Signature and expiry first: cheap and local. The revocation lookup
	// only runs for tokens that would otherwise be accepted.
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	revoked, err := s.revokedRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}
	return claims, nil
}

// Logout revokes the token identifier. Revocation is monotonic and
// idempotent: revoking an already-revoked jti succeeds.
func (s *authService) Logout(ctx context.Context, jti string) error {
	if err := s.revokedRepo.Add(ctx, jti); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
