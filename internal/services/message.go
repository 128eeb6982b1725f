package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventchat/internal/domain"
)

type messageService struct {
	messageRepo domain.MessageRepository
	eventRepo   domain.EventRepository
	userRepo    domain.UserRepository
}

// NewMessageService creates a MessageService with the given repositories.
func NewMessageService(messageRepo domain.MessageRepository, eventRepo domain.EventRepository, userRepo domain.UserRepository) domain.MessageService {
	return &messageService{
		messageRepo: messageRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
	}
}

func (s *messageService) Send(ctx context.Context, eventName, author, text string) (*domain.Message, error) {
	user, err := s.userRepo.GetByName(ctx, author)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	event, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	member, err := s.eventRepo.IsMember(ctx, event.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !member {
		// Implicit join on post. A concurrent explicit join is not an error
		// here, so the already-a-member conflict is swallowed.
		if err := s.eventRepo.AddMember(ctx, event.ID, user.ID); err != nil && !errors.Is(err, domain.ErrAlreadyMember) {
			return nil, fmt.Errorf("failed to join event: %w", err)
		}
	}

	msg := &domain.Message{
		Text:      text,
		Author:    user.Name,
		Event:     event.Name,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

func (s *messageService) ListByEvent(ctx context.Context, eventName string) ([]*domain.Message, error) {
	if _, err := s.eventRepo.GetByName(ctx, eventName); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	messages, err := s.messageRepo.ListByEvent(ctx, eventName)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (s *messageService) Get(ctx context.Context, eventName string, id int64) (*domain.Message, error) {
	if _, err := s.eventRepo.GetByName(ctx, eventName); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	msg, err := s.messageRepo.GetByEventAndID(ctx, eventName, id)
	if err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}
