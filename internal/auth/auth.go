// Package auth implements the shared-secret gate.
//
// This is not a security control: the secret is a plaintext value stored in
// the snapshot and the gate merely mirrors the single-user unlock behavior.
// Sessions live in process memory only and disappear on restart.
package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrWrongPassword is returned when the supplied secret does not match.
var ErrWrongPassword = errors.New("the password is incorrect")

// DefaultTTL is how long a session stays valid without a configured override.
const DefaultTTL = 12 * time.Hour

// Sessions is an in-memory registry of issued session tokens.
type Sessions struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration

	// now is replaceable for tests.
	now func() time.Time
}

// NewSessions returns a session registry with the given token lifetime.
func NewSessions(ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Sessions{
		tokens: map[string]time.Time{},
		ttl:    ttl,
		now:    time.Now,
	}
}

// Login compares the supplied secret with the stored one and issues a token
// on success.
func (s *Sessions) Login(supplied, stored string) (string, error) {
	if supplied != stored {
		return "", ErrWrongPassword
	}

	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = s.now().Add(s.ttl)

	return token, nil
}

// Verify reports whether the token belongs to a live session. Expired tokens
// are dropped on sight.
func (s *Sessions) Verify(token string) bool {
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

// Logout invalidates the token. Unknown tokens are ignored.
func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}
