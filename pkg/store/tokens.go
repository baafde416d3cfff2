package store

import (
	"sync"
	"time"
)

// TokenRecord is the server-side state behind an issued bearer token.
// Tokens never expire and are never revoked; a token is valid for as long
// as the server process lives.
type TokenRecord struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenStore is a thread-safe collection of active tokens keyed by the
// opaque token string.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]TokenRecord
}

// NewTokenStore creates an empty TokenStore.
func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]TokenRecord)}
}

// Put stores a token record under the given token string.
func (s *TokenStore) Put(token string, rec TokenRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = rec
}

// Get returns the record for a token and whether the token is active.
func (s *TokenStore) Get(token string) (TokenRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.tokens[token]
	return rec, ok
}

// Count returns the number of active tokens.
func (s *TokenStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}
