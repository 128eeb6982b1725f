package domain

import (
	"context"
	"time"
)

// Event represents a named event users can join and chat in. Creator is the
// name of the user who created it and is immutable after creation.
// swagger:model Event
type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Creator     string    `json:"creator"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(name, description, creator string, createdAt time.Time) *Event {
	return &Event{
		Name:        name,
		Description: description,
		Creator:     creator,
		CreatedAt:   createdAt,
	}
}

// EventDetails is the full event representation returned by the API: the
// event plus its member names and its messages in posting order.
// swagger:model EventDetails
type EventDetails struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Creator     string     `json:"creator"`
	Members     []string   `json:"members"`
	Messages    []*Message `json:"messages"`
}

// EventRepository defines the interface for event and membership storage.
// Membership is a join table with a composite primary key, so AddMember
// reports ErrAlreadyMember on a duplicate and RemoveMember reports
// ErrNotMember when no row was deleted.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByName(ctx context.Context, name string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	AddMember(ctx context.Context, eventID, userID int64) error
	RemoveMember(ctx context.Context, eventID, userID int64) error
	IsMember(ctx context.Context, eventID, userID int64) (bool, error)
	ListMemberNames(ctx context.Context, eventID int64) ([]string, error)
}

// EventService defines the business logic for events and membership.
type EventService interface {
	Create(ctx context.Context, name, description, creator string) (*Event, error)
	List(ctx context.Context) ([]*EventDetails, error)
	Get(ctx context.Context, name string) (*EventDetails, error)
	Join(ctx context.Context, eventName, userName string) error
	Leave(ctx context.Context, eventName, userName string) error
}
