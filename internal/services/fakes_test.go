package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"eventchat/internal/domain"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byName map[string]*domain.User
	nextID int64
	getErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byName[u.Name]; ok {
		return domain.ErrNameTaken
	}
	f.nextID++
	u.ID = f.nextID
	f.byName[u.Name] = u
	return nil
}

func (f *fakeUserRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byName[name]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) ListEventIDs(ctx context.Context, userID int64) ([]int64, error) {
	return []int64{}, nil
}

// fakeEventRepo implements domain.EventRepository for tests. userNames maps
// user ids to names so ListMemberNames can resolve members.
type fakeEventRepo struct {
	byName    map[string]*domain.Event
	members   map[int64]map[int64]struct{}
	userNames map[int64]string
	nextID    int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byName:    make(map[string]*domain.Event),
		members:   make(map[int64]map[int64]struct{}),
		userNames: make(map[int64]string),
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if _, ok := f.byName[e.Name]; ok {
		return domain.ErrDuplicateEvent
	}
	f.nextID++
	e.ID = f.nextID
	f.byName[e.Name] = e
	f.members[e.ID] = make(map[int64]struct{})
	return nil
}

func (f *fakeEventRepo) GetByName(ctx context.Context, name string) (*domain.Event, error) {
	if e, ok := f.byName[name]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	events := []*domain.Event{}
	for _, e := range f.byName {
		cp := *e
		events = append(events, &cp)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (f *fakeEventRepo) AddMember(ctx context.Context, eventID, userID int64) error {
	if _, ok := f.members[eventID][userID]; ok {
		return domain.ErrAlreadyMember
	}
	f.members[eventID][userID] = struct{}{}
	return nil
}

func (f *fakeEventRepo) RemoveMember(ctx context.Context, eventID, userID int64) error {
	if _, ok := f.members[eventID][userID]; !ok {
		return domain.ErrNotMember
	}
	delete(f.members[eventID], userID)
	return nil
}

func (f *fakeEventRepo) IsMember(ctx context.Context, eventID, userID int64) (bool, error) {
	_, ok := f.members[eventID][userID]
	return ok, nil
}

func (f *fakeEventRepo) ListMemberNames(ctx context.Context, eventID int64) ([]string, error) {
	names := []string{}
	for id := range f.members[eventID] {
		names = append(names, f.userNames[id])
	}
	sort.Strings(names)
	return names, nil
}

// fakeMessageRepo implements domain.MessageRepository for tests.
type fakeMessageRepo struct {
	msgs   []*domain.Message
	nextID int64
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (f *fakeMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	f.nextID++
	m.ID = f.nextID
	cp := *m
	f.msgs = append(f.msgs, &cp)
	return nil
}

func (f *fakeMessageRepo) ListByEvent(ctx context.Context, eventName string) ([]*domain.Message, error) {
	out := []*domain.Message{}
	for _, m := range f.msgs {
		if m.Event == eventName {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) ListByAuthor(ctx context.Context, author string) ([]*domain.Message, error) {
	out := []*domain.Message{}
	for _, m := range f.msgs {
		if m.Author == author {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) GetByEventAndID(ctx context.Context, eventName string, id int64) (*domain.Message, error) {
	for _, m := range f.msgs {
		if m.Event == eventName && m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, domain.ErrMessageNotFound
}

// fakeRevokedRepo implements domain.RevokedTokenRepository for tests.
type fakeRevokedRepo struct {
	revoked map[string]struct{}
	addErr  error
	isErr   error
}

func newFakeRevokedRepo() *fakeRevokedRepo {
	return &fakeRevokedRepo{revoked: make(map[string]struct{})}
}

func (f *fakeRevokedRepo) Add(ctx context.Context, jti string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.revoked[jti] = struct{}{}
	return nil
}

func (f *fakeRevokedRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if f.isErr != nil {
		return false, f.isErr
	}
	_, ok := f.revoked[jti]
	return ok, nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (fakePasswordHasher) Hash(password string) (string, error) {
	return "hash:" + password, nil
}

func (fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(subject string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + subject, nil
}

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	byToken map[string]*domain.TokenClaims
}

func newFakeTokenVerifier() *fakeTokenVerifier {
	return &fakeTokenVerifier{byToken: make(map[string]*domain.TokenClaims)}
}

func (f *fakeTokenVerifier) add(token, subject, jti string) {
	f.byToken[token] = &domain.TokenClaims{
		Subject:   subject,
		ID:        jti,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func (f *fakeTokenVerifier) Verify(token string) (*domain.TokenClaims, error) {
	if claims, ok := f.byToken[token]; ok {
		return claims, nil
	}
	return nil, domain.ErrInvalidToken
}
