package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/cart"
)

func newManager() *Manager {
	return NewManager("test-secret", time.Hour, cart.Policy{})
}

func TestOpenStartsAnonymousOnHome(t *testing.T) {
	m := newManager()

	s, token, err := m.Open("")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.False(t, s.LoggedIn())
	assert.Equal(t, domain.ViewHome, s.View())
	assert.Equal(t, "fr", s.Locale())
	assert.True(t, s.Cart.IsEmpty())
}

func TestResolveRoundTrip(t *testing.T) {
	m := newManager()

	s, token, err := m.Open("ar")
	require.NoError(t, err)

	got, err := m.Resolve(token)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, "ar", got.Locale())
}

func TestResolveRejectsForgedToken(t *testing.T) {
	m := newManager()
	other := NewManager("other-secret", time.Hour, cart.Policy{})

	_, token, err := other.Open("")
	require.NoError(t, err)

	_, err = m.Resolve(token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.Resolve("not-a-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestResolveExpiredSession(t *testing.T) {
	m := newManager()
	s, token, err := m.Open("")
	require.NoError(t, err)

	m.now = func() time.Time { return s.CreatedAt.Add(2 * time.Hour) }

	_, err = m.Resolve(token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLoginLogout(t *testing.T) {
	m := newManager()
	s, _, err := m.Open("")
	require.NoError(t, err)

	s.Login("cust-demo-1")
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "cust-demo-1", s.CustomerID())

	require.NoError(t, s.SetView(domain.ViewCatalog))
	assert.Equal(t, domain.ViewCatalog, s.View())

	s.Logout()
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.CustomerID())
	assert.Equal(t, domain.ViewHome, s.View())
}

func TestSetViewRejectsUnknownView(t *testing.T) {
	m := newManager()
	s, _, err := m.Open("")
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetView(domain.View("checkout")), ErrInvalidView)
}

func TestSessionTranslatorFollowsLocale(t *testing.T) {
	m := newManager()
	s, _, err := m.Open("fr")
	require.NoError(t, err)

	assert.Equal(t, "Se connecter", s.Translator().T("header.login"))
	s.SetLocale("ar")
	assert.Equal(t, "تسجيل الدخول", s.Translator().T("header.login"))
}

func TestSweepRemovesExpired(t *testing.T) {
	m := newManager()
	s, _, err := m.Open("")
	require.NoError(t, err)
	_, _, err = m.Open("")
	require.NoError(t, err)

	m.now = func() time.Time { return s.CreatedAt.Add(2 * time.Hour) }
	assert.Equal(t, 2, m.Sweep())
	assert.Equal(t, 0, m.Sweep())
}
