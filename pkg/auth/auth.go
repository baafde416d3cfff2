// Package auth implements the bearer-token gate protecting the item API.
// Tokens are opaque strings minted at login and validated against the
// token store on every protected request.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/imitatus/imitatus/pkg/store"
)

// Authentication failures. Both map to HTTP 401 at the handler boundary;
// the distinction is kept for error messages and tests.
var (
	// ErrMissingToken means the Authorization header is absent or does not
	// carry a bearer token.
	ErrMissingToken = errors.New("no token provided")

	// ErrInvalidToken means the presented token is not an active token.
	ErrInvalidToken = errors.New("invalid token")
)

const bearerPrefix = "Bearer "

// Gate validates bearer tokens against a token store and mints new ones.
type Gate struct {
	tokens *store.TokenStore
}

// NewGate creates a Gate over the given token store.
func NewGate(tokens *store.TokenStore) *Gate {
	return &Gate{tokens: tokens}
}

// Issue mints a fresh token and user ID, stores the record, and returns
// both. Every login issues a new token; nothing ties tokens to a single
// user identity.
func (g *Gate) Issue() (token string, rec store.TokenRecord) {
	token = uuid.NewString()
	rec = store.TokenRecord{
		UserID:    uuid.NewString(),
		CreatedAt: time.Now(),
	}
	g.tokens.Put(token, rec)
	return token, rec
}

// Authenticate extracts the bearer token from the request headers and looks
// it up. On success the associated record is returned unmodified.
func (g *Gate) Authenticate(headers http.Header) (store.TokenRecord, error) {
	authHeader := headers.Get("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return store.TokenRecord{}, ErrMissingToken
	}
	token := authHeader[len(bearerPrefix):]
	rec, ok := g.tokens.Get(token)
	if !ok {
		return store.TokenRecord{}, ErrInvalidToken
	}
	return rec, nil
}
