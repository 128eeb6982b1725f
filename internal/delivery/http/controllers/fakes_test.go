package controllers

import (
	"context"

	"eventchat/internal/domain"
)

// fakeUserService implements domain.UserService for tests.
type fakeUserService struct {
	registerErr error
	loginToken  string
	loginErr    error
	profile     *domain.UserProfile
	profileErr  error
}

func (f *fakeUserService) Register(ctx context.Context, name, password string) (*domain.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &domain.User{ID: 1, Name: name}, nil
}

func (f *fakeUserService) Login(ctx context.Context, name, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeUserService) GetProfile(ctx context.Context, name string) (*domain.UserProfile, error) {
	return f.profile, f.profileErr
}

// fakeAuthService implements domain.AuthService for tests.
type fakeAuthService struct {
	loggedOut []string
	logoutErr error
}

func (f *fakeAuthService) Authenticate(ctx context.Context, token string) (*domain.TokenClaims, error) {
	return nil, domain.ErrInvalidToken
}

func (f *fakeAuthService) Logout(ctx context.Context, jti string) error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.loggedOut = append(f.loggedOut, jti)
	return nil
}

// fakeEventService implements domain.EventService for tests.
type fakeEventService struct {
	createErr error
	list      []*domain.EventDetails
	listErr   error
	details   *domain.EventDetails
	getErr    error
	joinErr   error
	leaveErr  error
}

func (f *fakeEventService) Create(ctx context.Context, name, description, creator string) (*domain.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Event{ID: 1, Name: name, Description: description, Creator: creator}, nil
}

func (f *fakeEventService) List(ctx context.Context) ([]*domain.EventDetails, error) {
	return f.list, f.listErr
}

func (f *fakeEventService) Get(ctx context.Context, name string) (*domain.EventDetails, error) {
	return f.details, f.getErr
}

func (f *fakeEventService) Join(ctx context.Context, eventName, userName string) error {
	return f.joinErr
}

func (f *fakeEventService) Leave(ctx context.Context, eventName, userName string) error {
	return f.leaveErr
}

// fakeMessageService implements domain.MessageService for tests.
type fakeMessageService struct {
	sendErr error
	msgs    []*domain.Message
	listErr error
	msg     *domain.Message
	getErr  error
}

func (f *fakeMessageService) Send(ctx context.Context, eventName, author, text string) (*domain.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &domain.Message{ID: 1, Text: text, Author: author, Event: eventName}, nil
}

func (f *fakeMessageService) ListByEvent(ctx context.Context, eventName string) ([]*domain.Message, error) {
	return f.msgs, f.listErr
}

func (f *fakeMessageService) Get(ctx context.Context, eventName string, id int64) (*domain.Message, error) {
	return f.msg, f.getErr
}
