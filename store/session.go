package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/utafrali/storefront-sdk/domain"
)

// SessionStore holds the optional current user. The authenticated flag
// is derived: it is true exactly when a user is present. Authentication
// itself happens upstream; the store only records its outcome.
type SessionStore struct {
	notifier

	mu      sync.Mutex
	user    *domain.User
	persist Persister
	logger  *slog.Logger
}

// UserUpdate carries the fields of a shallow user patch. Nil fields are
// left untouched.
type UserUpdate struct {
	Email       *string
	Name        *string
	Avatar      *string
	Addresses   *[]domain.Address
	Preferences *domain.UserPreferences
}

type sessionState struct {
	User *domain.User `json:"user"`
}

// NewSessionStore creates a session store hydrated from p.
func NewSessionStore(ctx context.Context, p Persister, logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &SessionStore{persist: p, logger: logger}
	s.user = loadState[sessionState](ctx, p, SessionKey, logger).User
	return s
}

// Login records the authenticated user.
func (s *SessionStore) Login(ctx context.Context, user domain.User) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.afterMutation(ctx)
}

// Logout clears the session.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.afterMutation(ctx)
}

// UpdateUser shallow-merges the set fields of the patch into the
// current user. With no user logged in it is a no-op.
func (s *SessionStore) UpdateUser(ctx context.Context, update UserUpdate) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	if update.Email != nil {
		s.user.Email = *update.Email
	}
	if update.Name != nil {
		s.user.Name = *update.Name
	}
	if update.Avatar != nil {
		s.user.Avatar = *update.Avatar
	}
	if update.Addresses != nil {
		s.user.Addresses = *update.Addresses
	}
	if update.Preferences != nil {
		s.user.Preferences = *update.Preferences
	}
	s.mu.Unlock()
	s.afterMutation(ctx)
}

// User returns a copy of the current user and whether one is present.
func (s *SessionStore) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is logged in.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *SessionStore) afterMutation(ctx context.Context) {
	s.mu.Lock()
	state := sessionState{}
	if s.user != nil {
		u := *s.user
		state.User = &u
	}
	s.mu.Unlock()

	saveState(ctx, s.persist, SessionKey, state, s.logger)
	s.notify()
}
