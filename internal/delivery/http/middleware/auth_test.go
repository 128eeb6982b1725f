package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventchat/internal/delivery/http/helpers"
	"eventchat/internal/domain"
)

// fakeAuthService implements domain.AuthService for tests.
type fakeAuthService struct {
	byToken map[string]*domain.TokenClaims
	err     error
}

func (f *fakeAuthService) Authenticate(ctx context.Context, token string) (*domain.TokenClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	if claims, ok := f.byToken[token]; ok {
		return claims, nil
	}
	return nil, domain.ErrInvalidToken
}

func (f *fakeAuthService) Logout(ctx context.Context, jti string) error {
	return nil
}

func TestRequireAuth(t *testing.T) {
	auth := &fakeAuthService{byToken: map[string]*domain.TokenClaims{
		"good-token": {Subject: "kacper", ID: "jti-1"},
	}}
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name         string
		header       string
		authErr      error
		wantStatus   int
		wantResponse string
	}{
		{
			name:         "missing header",
			header:       "",
			wantStatus:   http.StatusUnauthorized,
			wantResponse: "Missing Authorization header",
		},
		{
			name:         "wrong scheme",
			header:       "Basic abc",
			wantStatus:   http.StatusUnauthorized,
			wantResponse: "Invalid Authorization header",
		},
		{
			name:         "empty token",
			header:       "Bearer ",
			wantStatus:   http.StatusUnauthorized,
			wantResponse: "Missing token",
		},
		{
			name:         "invalid token",
			header:       "Bearer bad-token",
			wantStatus:   http.StatusUnauthorized,
			wantResponse: "Invalid or expired token",
		},
		{
			name:         "revoked token",
			header:       "Bearer good-token",
			authErr:      domain.ErrTokenRevoked,
			wantStatus:   http.StatusUnauthorized,
			wantResponse: "Token has been revoked",
		},
		{
			name:       "valid token",
			header:     "Bearer good-token",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth.err = tt.authErr

			nextCalled := false
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				principal, ok := PrincipalFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, "kacper", principal)
				jti, ok := TokenIDFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, "jti-1", jti)
				w.WriteHeader(http.StatusOK)
			}

			req := httptest.NewRequest(http.MethodGet, "/event/all", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			RequireAuth(auth, logger)(next)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantResponse != "" {
				require.False(t, nextCalled, "handler must not run on auth failure")
				var body helpers.MessageResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.wantResponse, body.Response)
			} else {
				require.True(t, nextCalled)
			}
		})
	}
}
