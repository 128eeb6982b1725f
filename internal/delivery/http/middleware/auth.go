package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventchat/internal/delivery/http/helpers"
	"eventchat/internal/domain"
)

type contextKey string

const (
	principalKey contextKey = "principal"
	tokenIDKey   contextKey = "tokenID"
)

// SetPrincipal returns a context with the authenticated user name set.
func SetPrincipal(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, principalKey, name)
}

// PrincipalFromContext returns the authenticated user name, if present.
func PrincipalFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(principalKey).(string)
	return name, ok
}

// SetTokenID returns a context with the token's jti set. Logout uses it as
// the revocation key.
func SetTokenID(ctx context.Context, jti string) context.Context {
	return context.WithValue(ctx, tokenIDKey, jti)
}

// TokenIDFromContext returns the jti of the presented token, if present.
func TokenIDFromContext(ctx context.Context) (string, bool) {
	jti, ok := ctx.Value(tokenIDKey).(string)
	return jti, ok
}

// RequireAuth returns a wrapper that validates the Bearer token (signature,
// expiry, and revocation) and sets the principal name and token id in the
// request context. On any failure it responds 401 and does not call next.
func RequireAuth(auth domain.AuthService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				helpers.WriteResponse(w, http.StatusUnauthorized, "Missing Authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				helpers.WriteResponse(w, http.StatusUnauthorized, "Invalid Authorization header")
				return
			}
			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				helpers.WriteResponse(w, http.StatusUnauthorized, "Missing token")
				return
			}
			claims, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenRevoked):
					helpers.WriteResponse(w, http.StatusUnauthorized, "Token has been revoked")
				case errors.Is(err, domain.ErrInvalidToken):
					helpers.WriteResponse(w, http.StatusUnauthorized, "Invalid or expired token")
				default:
					logger.ErrorContext(r.Context(), "authentication failed", "path", r.URL.Path, "err", err)
					helpers.WriteResponse(w, http.StatusUnauthorized, "Invalid or expired token")
				}
				return
			}
			ctx := SetPrincipal(r.Context(), claims.Subject)
			ctx = SetTokenID(ctx, claims.ID)
			next(w, r.WithContext(ctx))
		}
	}
}
