package token

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// User is the principal a session token resolves to.
type User struct {
	Identity string
	Name     string
}

// Manager is the process-wide identity to session-token store. A single
// identity holds at most one live token: Grant returns the existing token
// when one is present, and the lookup and insert happen under one lock so
// two concurrent logins for the same identity cannot mint two tokens.
// Identities match case-insensitively.
type Manager struct {
	mu         sync.Mutex
	byToken    map[string]User
	byIdentity map[string]string
}

func NewManager() *Manager {
	return &Manager{
		byToken:    map[string]User{},
		byIdentity: map[string]string{},
	}
}

// Grant returns the token of the user's identity, creating one if absent.
func (m *Manager) Grant(user User) string {
	identity := canonical(user.Identity)

	m.mu.Lock()
	defer m.mu.Unlock()

	if token, ok := m.byIdentity[identity]; ok {
		return token
	}
	token := uuid.NewString()
	m.byToken[token] = user
	m.byIdentity[identity] = token
	return token
}

// Lookup resolves a token to its user.
func (m *Manager) Lookup(token string) (User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.byToken[token]
	return user, ok
}

// Valid reports whether the token belongs to a live session.
func (m *Manager) Valid(token string) bool {
	_, ok := m.Lookup(token)
	return ok
}

// Revoke removes a session by its token.
func (m *Manager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.byToken[token]; ok {
		delete(m.byIdentity, canonical(user.Identity))
		delete(m.byToken, token)
	}
}

// RevokeUser removes the session of an identity, if any.
func (m *Manager) RevokeUser(identity string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token, ok := m.byIdentity[canonical(identity)]; ok {
		delete(m.byToken, token)
		delete(m.byIdentity, canonical(identity))
	}
}

func canonical(identity string) string {
	return strings.ToLower(identity)
}
