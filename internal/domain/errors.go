package domain

import "errors"

// Sentinel errors. Services and repositories return these so callers can
// translate them with errors.Is; repositories map driver-level conflicts
// (unique violations, missing rows) onto them.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNameTaken          = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("wrong username or password")

	ErrInvalidToken = errors.New("invalid or expired token")
	ErrTokenRevoked = errors.New("token has been revoked")

	ErrEventNotFound  = errors.New("event not found")
	ErrDuplicateEvent = errors.New("event already exists")
	ErrAlreadyMember  = errors.New("user already in event")
	ErrNotMember      = errors.New("user not in event")

	ErrMessageNotFound = errors.New("message not found")
)
