package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventchat/internal/domain"
)

type eventService struct {
	eventRepo   domain.EventRepository
	userRepo    domain.UserRepository
	messageRepo domain.MessageRepository
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(eventRepo domain.EventRepository, userRepo domain.UserRepository, messageRepo domain.MessageRepository) domain.EventService {
	return &eventService{
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		messageRepo: messageRepo,
	}
}

func (s *eventService) Create(ctx context.Context, name, description, creator string) (*domain.Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	user, err := s.userRepo.GetByName(ctx, creator)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Creating an event does not make the creator a member.
	event := domain.NewEvent(name, description, user.Name, time.Now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.EventDetails, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	details := make([]*domain.EventDetails, 0, len(events))
	for _, event := range events {
		d, err := s.details(ctx, event)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *eventService) Get(ctx context.Context, name string) (*domain.EventDetails, error) {
	event, err := s.eventRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return s.details(ctx, event)
}

func (s *eventService) Join(ctx context.Context, eventName, userName string) error {
	event, user, err := s.lookup(ctx, eventName, userName)
	if err != nil {
		return err
	}
	// The composite key on the membership table reports a duplicate join as
	// ErrAlreadyMember even when two joins race.
	if err := s.eventRepo.AddMember(ctx, event.ID, user.ID); err != nil {
		if errors.Is(err, domain.ErrAlreadyMember) {
			return err
		}
		return fmt.Errorf("failed to join event: %w", err)
	}
	return nil
}

func (s *eventService) Leave(ctx context.Context, eventName, userName string) error {
	event, user, err := s.lookup(ctx, eventName, userName)
	if err != nil {
		return err
	}
	if err := s.eventRepo.RemoveMember(ctx, event.ID, user.ID); err != nil {
		if errors.Is(err, domain.ErrNotMember) {
			return err
		}
		return fmt.Errorf("failed to leave event: %w", err)
	}
	return nil
}

func (s *eventService) lookup(ctx context.Context, eventName, userName string) (*domain.Event, *domain.User, error) {
	user, err := s.userRepo.GetByName(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	event, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, user, nil
}

func (s *eventService) details(ctx context.Context, event *domain.Event) (*domain.EventDetails, error) {
	members, err := s.eventRepo.ListMemberNames(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	messages, err := s.messageRepo.ListByEvent(ctx, event.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return &domain.EventDetails{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		Creator:     event.Creator,
		Members:     members,
		Messages:    messages,
	}, nil
}
