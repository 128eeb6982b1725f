package postgres

import (
	"context"
	"database/sql"

	"eventchat/internal/domain"
)

type revokedTokenRepository struct {
	DB *sql.DB
}

func NewRevokedTokenRepository(db *sql.DB) domain.RevokedTokenRepository {
	return &revokedTokenRepository{DB: db}
}

// Add records the jti in the revocation set. Re-revoking is a no-op, which
// keeps logout idempotent.
func (r *revokedTokenRepository) Add(ctx context.Context, jti string) error {
	query := `
		INSERT INTO revoked_tokens (jti, revoked_at)
		VALUES ($1, NOW())
		ON CONFLICT (jti) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, jti)
	return err
}

func (r *revokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM revoked_tokens WHERE jti = $1
		)
	`
	var revoked bool
	if err := r.DB.QueryRowContext(ctx, query, jti).Scan(&revoked); err != nil {
		return false, err
	}
	return revoked, nil
}
