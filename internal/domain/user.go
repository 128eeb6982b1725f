package domain

import (
	"context"
	"time"
)

// User represents a registered user. PasswordHash holds a bcrypt digest and
// is never serialized.
// swagger:model User
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(name, passwordHash string, createdAt time.Time) *User {
	return &User{
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}
}

// UserProfile is the full user representation returned by the API: the user
// plus the ids of the events they belong to and the messages they authored.
// swagger:model UserProfile
type UserProfile struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Events   []int64    `json:"events"`
	Messages []*Message `json:"messages"`
}

// PasswordHasher hashes and verifies passwords. Implementations must use a
// slow salted algorithm; the plaintext never leaves this interface.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByName(ctx context.Context, name string) (*User, error)
	ListEventIDs(ctx context.Context, userID int64) ([]int64, error)
}

// UserService defines the business logic for registration, login, and
// profile reads.
type UserService interface {
	Register(ctx context.Context, name, password string) (*User, error)
	Login(ctx context.Context, name, password string) (token string, err error)
	GetProfile(ctx context.Context, name string) (*UserProfile, error)
}
