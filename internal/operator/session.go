// Package operator gates the catalog-editing mode behind an access code.
// Exactly two states exist: Guest and Operator. A fresh process always
// starts as Guest; only a successful Login moves to Operator and only an
// explicit Logout moves back. There is no lockout, rate limiting or expiry.
package operator

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks an entered access code. Injecting it keeps the session
// flow independent of how the real code is stored.
type Verifier interface {
	Verify(code string) bool
}

// StaticVerifier compares against a fixed plaintext code.
type StaticVerifier struct {
	Code string
}

// Verify reports whether code matches exactly.
func (v StaticVerifier) Verify(code string) bool {
	return code != "" && code == v.Code
}

// BcryptVerifier compares against a bcrypt hash of the code, for setups
// that do not want the plaintext in the environment.
type BcryptVerifier struct {
	Hash string
}

// Verify reports whether code matches the stored hash.
func (v BcryptVerifier) Verify(code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(v.Hash), []byte(code)) == nil
}

// Session tracks whether the operator mode is unlocked.
type Session struct {
	mu       sync.Mutex
	verifier Verifier
	operator bool
}

// NewSession returns a Guest session using the given verifier.
func NewSession(v Verifier) *Session {
	return &Session{verifier: v}
}

// Login attempts to unlock operator mode. On failure the state is left
// unchanged and false is returned.
func (s *Session) Login(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.verifier.Verify(code) {
		return false
	}
	s.operator = true
	return true
}

// Logout returns to Guest unconditionally.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operator = false
}

// IsOperator reports whether operator mode is unlocked.
func (s *Session) IsOperator() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.operator
}
