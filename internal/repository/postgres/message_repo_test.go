package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventchat/internal/domain"
)

func TestMessageRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO messages`).
		WithArgs("hello", "kacper", "test_event", createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := NewMessageRepository(db)
	msg := &domain.Message{Text: "hello", Author: "kacper", Event: "test_event", CreatedAt: createdAt}
	require.NoError(t, repo.Create(ctx, msg))
	require.Equal(t, int64(7), msg.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_ListByEvent(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		mock func(mock sqlmock.Sqlmock)
		want []*domain.Message
	}{
		{
			name: "messages in id order",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, text, author, event, created_at`).
					WithArgs("test_event").
					WillReturnRows(sqlmock.NewRows([]string{"id", "text", "author", "event", "created_at"}).
						AddRow(int64(1), "hi", "kacper", "test_event", createdAt).
						AddRow(int64(2), "hello", "alice", "test_event", createdAt))
			},
			want: []*domain.Message{
				{ID: 1, Text: "hi", Author: "kacper", Event: "test_event", CreatedAt: createdAt},
				{ID: 2, Text: "hello", Author: "alice", Event: "test_event", CreatedAt: createdAt},
			},
		},
		{
			name: "empty event yields empty slice",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, text, author, event, created_at`).
					WithArgs("test_event").
					WillReturnRows(sqlmock.NewRows([]string{"id", "text", "author", "event", "created_at"}))
			},
			want: []*domain.Message{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewMessageRepository(db)
			got, err := repo.ListByEvent(ctx, "test_event")
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMessageRepository_GetByEventAndID(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, text, author, event, created_at`).
		WithArgs("test_event", int64(99)).
		WillReturnError(sql.ErrNoRows)

	repo := NewMessageRepository(db)
	_, err = repo.GetByEventAndID(ctx, "test_event", 99)
	require.ErrorIs(t, err, domain.ErrMessageNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
