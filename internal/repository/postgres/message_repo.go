package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventchat/internal/domain"
)

type messageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) domain.MessageRepository {
	return &messageRepository{DB: db}
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `
		INSERT INTO messages (text, author, event, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, m.Text, m.Author, m.Event, m.CreatedAt).Scan(&m.ID)
}

func (r *messageRepository) ListByEvent(ctx context.Context, eventName string) ([]*domain.Message, error) {
	query := `
		SELECT id, text, author, event, created_at
		FROM messages
		WHERE event = $1
		ORDER BY id
	`
	return r.list(ctx, query, eventName)
}

func (r *messageRepository) ListByAuthor(ctx context.Context, author string) ([]*domain.Message, error) {
	query := `
		SELECT id, text, author, event, created_at
		FROM messages
		WHERE author = $1
		ORDER BY id
	`
	return r.list(ctx, query, author)
}

func (r *messageRepository) GetByEventAndID(ctx context.Context, eventName string, id int64) (*domain.Message, error) {
	query := `
		SELECT id, text, author, event, created_at
		FROM messages
		WHERE event = $1 AND id = $2
	`
	m := &domain.Message{}
	err := r.DB.QueryRowContext(ctx, query, eventName, id).Scan(&m.ID, &m.Text, &m.Author, &m.Event, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *messageRepository) list(ctx context.Context, query string, arg any) ([]*domain.Message, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []*domain.Message{}
	for rows.Next() {
		m := &domain.Message{}
		if err := rows.Scan(&m.ID, &m.Text, &m.Author, &m.Event, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
