package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingualeap/lingualeap/internal/config"
	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

// newTestSessionManager builds a SessionManager with a 30-day window and a
// movable clock starting at testClock.
func newTestSessionManager(t *testing.T) (*SessionManager, *time.Time) {
	t.Helper()

	clock := testClock
	m := NewSessionManager(config.Security{SessionExpiryDays: 30}, logger.Nop())
	m.now = func() time.Time { return clock }

	return m, &clock
}

func TestSessionManager_NoSessionByDefault(t *testing.T) {
	m, _ := newTestSessionManager(t)

	_, ok := m.Current()
	assert.False(t, ok)
	assert.False(t, m.IsAuthenticated())
	assert.False(t, m.IsAdmin())
}

func TestSessionManager_LoginLogout(t *testing.T) {
	m, _ := newTestSessionManager(t)

	m.Login(models.User{ID: 7, Username: "learner"})

	got, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, int64(7), got.ID)
	assert.True(t, m.IsAuthenticated())
	assert.False(t, m.IsAdmin())

	m.Logout()
	assert.False(t, m.IsAuthenticated())

	// Logging out twice is harmless.
	m.Logout()
	assert.False(t, m.IsAuthenticated())
}

func TestSessionManager_IsAdmin(t *testing.T) {
	m, _ := newTestSessionManager(t)

	m.Login(models.User{ID: 1, Username: "admin", IsAdmin: true})
	assert.True(t, m.IsAdmin())
}

func TestSessionManager_LoginReplacesSession(t *testing.T) {
	m, _ := newTestSessionManager(t)

	m.Login(models.User{ID: 1, Username: "first"})
	m.Login(models.User{ID: 2, Username: "second"})

	got, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "second", got.Username)
}

func TestSessionManager_LazyExpiry(t *testing.T) {
	m, clock := newTestSessionManager(t)

	m.Login(models.User{ID: 7, Username: "learner"})

	// Still valid at the exact expiry moment.
	*clock = testClock.Add(30 * 24 * time.Hour)
	assert.True(t, m.IsAuthenticated())

	// One day past the window the first read discards the session.
	*clock = testClock.Add(31 * 24 * time.Hour)
	_, ok := m.Current()
	assert.False(t, ok)

	// Subsequent reads see no session at all, even after the clock moves
	// back inside what would have been the window.
	*clock = testClock.Add(1 * time.Hour)
	assert.False(t, m.IsAuthenticated())
}

func TestSessionManager_RefreshExtendsWindow(t *testing.T) {
	m, clock := newTestSessionManager(t)

	m.Login(models.User{ID: 7, Username: "learner"})

	*clock = testClock.Add(20 * 24 * time.Hour)
	m.Refresh()

	// 45 days after login but only 25 after the refresh.
	*clock = testClock.Add(45 * 24 * time.Hour)
	assert.True(t, m.IsAuthenticated())

	*clock = testClock.Add(51 * 24 * time.Hour)
	assert.False(t, m.IsAuthenticated())
}

func TestSessionManager_RefreshOnExpiredSessionIsNoop(t *testing.T) {
	m, clock := newTestSessionManager(t)

	m.Login(models.User{ID: 7, Username: "learner"})

	*clock = testClock.Add(31 * 24 * time.Hour)
	m.Refresh()

	assert.False(t, m.IsAuthenticated())
}
