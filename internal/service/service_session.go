package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lingualeap/lingualeap/internal/config"
	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/models"
)

// session is the in-memory record of the single authenticated user.
type session struct {
	user    models.User
	id      string
	loginAt time.Time
}

// SessionManager tracks the single in-process session of a desktop client.
// At most one user is logged in at a time; a new Login replaces any existing
// session.
//
// Expiry is evaluated lazily: no timer runs in the background, the session is
// discarded by the first read that observes it past its validity window.
// All methods are safe for concurrent use, since TUI commands run on their
// own goroutines.
type SessionManager struct {
	mu      sync.Mutex
	expiry  time.Duration
	current *session

	// now is the clock used for login and expiry decisions. Replaced in
	// tests.
	now func() time.Time

	logger *logger.Logger
}

// NewSessionManager constructs a SessionManager with the validity window from
// cfg. No session exists until the first Login.
func NewSessionManager(cfg config.Security, logger *logger.Logger) *SessionManager {
	return &SessionManager{
		expiry: cfg.SessionExpiry(),
		now:    time.Now,
		logger: logger,
	}
}

// Login establishes a session for user, replacing any existing one. Each
// session gets a fresh id used to correlate log entries.
func (m *SessionManager) Login(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = &session{
		user:    user,
		id:      uuid.NewString(),
		loginAt: m.now(),
	}

	m.logger.Info().
		Str("session_id", m.current.id).
		Str("username", user.Username).
		Msg("session started")
}

// Logout ends the current session. Calling Logout with no session is a no-op.
func (m *SessionManager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return
	}

	m.logger.Info().
		Str("session_id", m.current.id).
		Str("username", m.current.user.Username).
		Msg("session ended")

	m.current = nil
}

// Current returns the logged-in user, or ok=false when no valid session
// exists. A session read after its expiry moment is discarded here, so a
// subsequent read reports no session rather than expiring a second time.
func (m *SessionManager) Current() (user models.User, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.validSession()
	if s == nil {
		return models.User{}, false
	}

	return s.user, true
}

// IsAuthenticated reports whether a valid session exists.
func (m *SessionManager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.validSession() != nil
}

// IsAdmin reports whether a valid session exists for an administrator
// account. No session means false, never an error.
func (m *SessionManager) IsAdmin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.validSession()
	return s != nil && s.user.IsAdmin
}

// Refresh restarts the validity window of the current session from now.
// A missing or already expired session is left alone.
func (m *SessionManager) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.validSession()
	if s == nil {
		return
	}

	s.loginAt = m.now()

	m.logger.Debug().Str("session_id", s.id).Msg("session refreshed")
}

// validSession returns the current session if it is still inside its
// validity window, discarding it otherwise. Callers must hold mu.
// A session is valid through its exact expiry moment and invalid after it.
func (m *SessionManager) validSession() *session {
	if m.current == nil {
		return nil
	}

	if m.now().After(m.current.loginAt.Add(m.expiry)) {
		m.logger.Info().
			Str("session_id", m.current.id).
			Str("username", m.current.user.Username).
			Msg("session expired")
		m.current = nil
		return nil
	}

	return m.current
}
