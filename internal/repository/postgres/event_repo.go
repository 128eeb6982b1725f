package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventchat/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, description, creator, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, e.Name, e.Description, e.Creator, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateEvent
		}
		return err
	}
	return nil
}

func (r *eventRepository) GetByName(ctx context.Context, name string) (*domain.Event, error) {
	query := `
		SELECT id, name, description, creator, created_at
		FROM events
		WHERE name = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&e.ID, &e.Name, &e.Description, &e.Creator, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, name, description, creator, created_at
		FROM events
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Creator, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// AddMember inserts into the membership join table. The composite primary
// key (event_id, user_id) makes a duplicate join a unique violation, which
// is reported as ErrAlreadyMember.
func (r *eventRepository) AddMember(ctx context.Context, eventID, userID int64) error {
	query := `
		INSERT INTO event_members (event_id, user_id)
		VALUES ($1, $2)
	`
	if _, err := r.DB.ExecContext(ctx, query, eventID, userID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyMember
		}
		return err
	}
	return nil
}

func (r *eventRepository) RemoveMember(ctx context.Context, eventID, userID int64) error {
	query := `
		DELETE FROM event_members
		WHERE event_id = $1 AND user_id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotMember
	}
	return nil
}

func (r *eventRepository) IsMember(ctx context.Context, eventID, userID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM event_members WHERE event_id = $1 AND user_id = $2
		)
	`
	var member bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(&member); err != nil {
		return false, err
	}
	return member, nil
}

func (r *eventRepository) ListMemberNames(ctx context.Context, eventID int64) ([]string, error) {
	query := `
		SELECT u.name
		FROM event_members m
		INNER JOIN users u ON u.id = m.user_id
		WHERE m.event_id = $1
		ORDER BY u.name
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
