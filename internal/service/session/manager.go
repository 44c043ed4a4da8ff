// Package session tracks one storefront visitor: authentication state, the
// active view, the chosen locale, and the cart. Sessions live in memory and
// are addressed by signed tokens.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	"github.com/muerroui/gsm-ma-achat-simple/internal/i18n"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/cart"
)

var (
	// ErrSessionNotFound is returned for unknown or expired sessions.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNotLoggedIn is returned when an operation needs an authenticated
	// session.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrInvalidView is returned for view names outside the fixed set.
	ErrInvalidView = errors.New("unknown view")
)

// State is one visitor's session. A session starts anonymous (logged out, on
// the home view, French locale) and is upgraded in place by Login.
type State struct {
	ID        string
	CreatedAt time.Time
	Cart      *cart.Engine

	mu         sync.RWMutex
	customerID string
	loggedIn   bool
	view       domain.View
	locale     string
}

// LoggedIn reports whether the session is authenticated.
func (s *State) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// CustomerID returns the bound customer id, or "" while anonymous.
func (s *State) CustomerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customerID
}

// View returns the active storefront view.
func (s *State) View() domain.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetView switches the active view. Transitions are free: any view is
// reachable from any other.
func (s *State) SetView(v domain.View) error {
	if !v.Valid() {
		return ErrInvalidView
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
	return nil
}

// Locale returns the active locale.
func (s *State) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// SetLocale switches the display language. Unsupported locales are kept as
// given; translation lookups then go through the fallback locale.
func (s *State) SetLocale(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale
}

// Translator returns an i18n translator bound to the session's locale.
func (s *State) Translator() *i18n.Translator {
	return i18n.New(s.Locale())
}

// Login binds the session to a customer. The cart is kept: items picked
// before logging in stay in the basket.
func (s *State) Login(customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerID = customerID
	s.loggedIn = true
}

// Logout drops the authentication and returns the session to the home view.
// The cart is preserved for the duration of the session.
func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerID = ""
	s.loggedIn = false
	s.view = domain.ViewHome
}

// Manager owns all live sessions. Safe for concurrent use.
type Manager struct {
	tokens *tokenCodec
	ttl    time.Duration
	policy cart.Policy
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*State
}

// NewManager builds a Manager issuing tokens signed with secret and lets
// sessions live for ttl.
func NewManager(secret string, ttl time.Duration, policy cart.Policy) *Manager {
	return &Manager{
		tokens:   newTokenCodec([]byte(secret), ttl),
		ttl:      ttl,
		policy:   policy,
		now:      time.Now,
		sessions: make(map[string]*State),
	}
}

// Open creates a new anonymous session and returns it with its bearer
// token.
func (m *Manager) Open(locale string) (*State, string, error) {
	if locale == "" {
		locale = i18n.FallbackLocale
	}
	s := &State{
		ID:        uuid.NewString(),
		CreatedAt: m.now(),
		Cart:      cart.NewEngine(m.policy),
		view:      domain.ViewHome,
		locale:    locale,
	}

	token, err := m.tokens.issue(s.ID)
	if err != nil {
		return nil, "", err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, token, nil
}

// Resolve returns the session addressed by a bearer token.
func (m *Manager) Resolve(token string) (*State, error) {
	id, err := m.tokens.parse(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.now().Sub(s.CreatedAt) > m.ttl {
		m.Close(s.ID)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close discards a session.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Sweep drops expired sessions and returns how many were removed. Meant to
// be called periodically from a janitor goroutine.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int
	for id, s := range m.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired sessions every interval until stop is closed.
func (m *Manager) StartJanitor(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
