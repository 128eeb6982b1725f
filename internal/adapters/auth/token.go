package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"eventchat/internal/domain"
)

// JWTCodec issues and verifies HS256-signed access tokens. Each issued token
// carries the subject (user name), a UUID jti, and an expiry of now+expiry.
// It implements both domain.TokenIssuer and domain.TokenVerifier.
type JWTCodec struct {
	secret []byte
	expiry time.Duration
}

// NewJWTCodec returns a JWTCodec signing with the given server-held secret.
func NewJWTCodec(secret string, expiry time.Duration) *JWTCodec {
	return &JWTCodec{secret: []byte(secret), expiry: expiry}
}

func (c *JWTCodec) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry locally and returns the claims.
// Any failure, including a missing subject or jti, maps to ErrInvalidToken.
func (c *JWTCodec) Verify(tokenString string) (*domain.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &domain.TokenClaims{
		Subject:   claims.Subject,
		ID:        claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
