package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventchat/internal/domain"
)

// Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (name, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, u.Name, u.PasswordHash, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrNameTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	query := `
		SELECT id, name, password_hash, created_at
		FROM users
		WHERE name = $1
	`
	u := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) ListEventIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT event_id
		FROM event_members
		WHERE user_id = $1
		ORDER BY event_id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
