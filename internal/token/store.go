// Package token issues signed session tokens and tracks the single live
// token per user. Issuing a new token replaces the previous one, so an
// old token is rejected even while its signature is still valid. The
// table is process-wide state and resets on restart.
package token

import (
	"errors"
	"sync"
	"time"

	"github.com/shoplite/shoplite-go/internal/crypto"
)

// ErrUnauthenticated is returned when a token is missing, malformed,
// expired, or superseded by a newer login.
var ErrUnauthenticated = errors.New("invalid or missing token")

// Store mints session tokens and maps each user to their current one.
type Store struct {
	mu     sync.Mutex
	secret string
	expiry time.Duration
	byUser map[int64]string
}

// NewStore creates a Store signing tokens with secret, valid for expiry.
func NewStore(secret string, expiry time.Duration) *Store {
	return &Store{
		secret: secret,
		expiry: expiry,
		byUser: make(map[int64]string),
	}
}

// Issue mints a signed token for the user, replacing any prior token.
func (s *Store) Issue(userID int64) (string, error) {
	tok, err := crypto.SignToken(userID, s.secret, s.expiry)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.byUser[userID] = tok
	s.mu.Unlock()

	return tok, nil
}

// Authenticate validates the token signature and expiry, then requires
// it to be the owning user's current token. Returns the user id.
func (s *Store) Authenticate(tok string) (int64, error) {
	if tok == "" {
		return 0, ErrUnauthenticated
	}

	claims, err := crypto.ParseToken(tok, s.secret)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	s.mu.Lock()
	current, ok := s.byUser[claims.UserID]
	s.mu.Unlock()

	if !ok || current != tok {
		return 0, ErrUnauthenticated
	}

	return claims.UserID, nil
}
