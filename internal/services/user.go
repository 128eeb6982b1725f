package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventchat/internal/domain"
)

type userService struct {
	userRepo    domain.UserRepository
	messageRepo domain.MessageRepository
	hasher      domain.PasswordHasher
	tokens      domain.TokenIssuer
}

// NewUserService creates a UserService with the given repositories and auth ports.
func NewUserService(userRepo domain.UserRepository, messageRepo domain.MessageRepository, hasher domain.PasswordHasher, tokens domain.TokenIssuer) domain.UserService {
	return &userService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		hasher:      hasher,
		tokens:      tokens,
	}
}

func (s *userService) Register(ctx context.Context, name, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	if _, err := s.userRepo.GetByName(ctx, name); err == nil {
		return nil, domain.ErrNameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique constraint on users.name backs up the existence check when
	// two registrations race; the repository reports it as ErrNameTaken.
	user := domain.NewUser(name, hash, time.Now())
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, name, password string) (string, error) {
	// Unknown name and wrong password must be indistinguishable to the
	// caller, so both collapse to ErrInvalidCredentials.
	user, err := s.userRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.Name)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *userService) GetProfile(ctx context.Context, name string) (*domain.UserProfile, error) {
	user, err := s.userRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	eventIDs, err := s.userRepo.ListEventIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user events: %w", err)
	}
	messages, err := s.messageRepo.ListByAuthor(ctx, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list user messages: %w", err)
	}
	return &domain.UserProfile{
		ID:       user.ID,
		Name:     user.Name,
		Events:   eventIDs,
		Messages: messages,
	}, nil
}
