package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ugchub/ugchub-backend/internal/auth/domain"
	"github.com/ugchub/ugchub-backend/internal/events"
)

// SessionStore holds at most one authenticated identity.
type SessionStore struct {
	mu          sync.RWMutex
	identity    *domain.Identity
	credentials CredentialMatcher
	hub         *events.Hub
	now         func() time.Time
}

// NewSessionStore creates an empty store. hub may be nil.
func NewSessionStore(credentials CredentialMatcher, hub *events.Hub) *SessionStore {
	return &SessionStore{
		credentials: credentials,
		hub:         hub,
		now:         time.Now,
	}
}

// Login replaces the resident identity when the triple matches a credential.
// On mismatch the store is left untouched and false is returned.
func (s *SessionStore) Login(email, password string, role domain.Role) bool {
	if !role.Valid() {
		return false
	}
	name, ok := s.credentials.Match(email, password, role)
	if !ok {
		return false
	}

	identity := domain.Identity{
		ID:         newIdentityID(role),
		Email:      email,
		Name:       name,
		Role:       role,
		LoggedInAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.identity = &identity
	s.mu.Unlock()

	s.hub.Publish(events.Event{
		Topic:   events.TopicSession,
		Type:    events.TypeLogin,
		Subject: identity.ID,
		Payload: identity,
	})
	return true
}

// Logout clears the resident identity. It is idempotent; an event is only
// published when an identity was actually removed.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	prev := s.identity
	s.identity = nil
	s.mu.Unlock()

	if prev == nil {
		return
	}
	s.hub.Publish(events.Event{
		Topic:   events.TopicSession,
		Type:    events.TypeLogout,
		Subject: prev.ID,
	})
}

// Current returns a copy of the resident identity.
func (s *SessionStore) Current() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Authorize checks the route-guard contract: a resident identity whose role
// is one of roles. An empty roles list accepts any identity.
func (s *SessionStore) Authorize(roles ...domain.Role) (domain.Identity, error) {
	identity, ok := s.Current()
	if !ok {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}
	if len(roles) == 0 {
		return identity, nil
	}
	for _, r := range roles {
		if identity.Role == r {
			return identity, nil
		}
	}
	return identity, domain.ErrRoleNotAllowed
}

func newIdentityID(role domain.Role) string {
	return fmt.Sprintf("%s-%s", role, uuid.NewString())
}
