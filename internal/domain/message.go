package domain

import (
	"context"
	"time"
)

// Message is a chat message posted to an event. Author and Event are name
// references; messages are ordered by id within an event.
// swagger:model Message
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageRepository defines the interface for message storage
type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	ListByEvent(ctx context.Context, eventName string) ([]*Message, error)
	ListByAuthor(ctx context.Context, author string) ([]*Message, error)
	GetByEventAndID(ctx context.Context, eventName string, id int64) (*Message, error)
}

// MessageService posts and reads messages scoped to an event. Sending as a
// non-member joins the author to the event first.
type MessageService interface {
	Send(ctx context.Context, eventName, author, text string) (*Message, error)
	ListByEvent(ctx context.Context, eventName string) ([]*Message, error)
	Get(ctx context.Context, eventName string, id int64) (*Message, error)
}
