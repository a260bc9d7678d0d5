// Package auth implements the password gate and its in-memory sessions.
package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service checks submitted passwords against the configured one and tracks
// the session tokens it has issued. The password is injected at construction
// and never read from process-global state.
type Service struct {
	password string
	ttl      time.Duration

	mu     sync.Mutex
	tokens map[string]time.Time // token -> expiry
	now    func() time.Time
}

// NewService constructs a Service for the given password and session TTL.
func NewService(password string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{
		password: password,
		ttl:      ttl,
		tokens:   make(map[string]time.Time),
		now:      time.Now,
	}
}

// Login compares the submitted password byte for byte. On a match it mints a
// session token; a mismatch is a normal negative result, not an error. An
// empty configured password never matches, so an unconfigured gate stays shut.
func (s *Service) Login(password string) (string, bool) {
	if s.password == "" || password != s.password {
		return "", false
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = s.now().Add(s.ttl)
	s.mu.Unlock()
	return token, true
}

// Validate reports whether token belongs to a live session. Expired tokens
// are pruned on sight.
func (s *Service) Validate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if s.now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// Logout drops the session token if it exists.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
