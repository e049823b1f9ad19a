package service

import (
	"sync"
	"time"

	"github.com/brainbridge/catalog-gateway/internal/models"
)

// HomeRoute is where session teardown sends the frontend.
const HomeRoute = "/"

// Session holds the bearer token captured for one view plus any pending
// redirect. The token is the only capability the catalog and bookmark
// flows depend on; clearing it degrades both to their anonymous branch.
type Session struct {
	mu       sync.Mutex
	token    string
	redirect *models.Redirect
}

// NewSession wraps the token presented at view creation. An empty token
// is a valid anonymous session.
func NewSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the current bearer token, or empty when anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// ClearToken drops the token without scheduling a redirect. Used by the
// bookmark load path, which degrades silently on auth failure.
func (s *Session) ClearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// ScheduleRedirect clears the token and records a pending redirect the
// frontend honours after the delay.
func (s *Session) ScheduleRedirect(to string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.redirect = &models.Redirect{To: to, AfterMs: delay.Milliseconds()}
}

// Redirect returns a copy of the pending redirect, or nil.
func (s *Session) Redirect() *models.Redirect {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.redirect == nil {
		return nil
	}
	copied := *s.redirect
	return &copied
}
