// Package store holds the shared in-memory state of the mock server: issued
// tokens, the item collection, and the request history. Each collection is
// independently guarded; no handler needs cross-collection atomicity.
package store

import "github.com/imitatus/imitatus/pkg/requestlog"

// Store aggregates the three server-side collections. It is constructed once
// at startup and handed to the engine, so multiple independent servers can
// coexist in one process (nothing here is package-level state).
type Store struct {
	Tokens   *TokenStore
	Items    *ItemStore
	Requests *requestlog.Store
}

// New creates an empty Store. logCapacity bounds the request history;
// zero or negative selects requestlog.DefaultCapacity.
func New(logCapacity int) *Store {
	return &Store{
		Tokens:   NewTokenStore(),
		Items:    NewItemStore(),
		Requests: requestlog.NewStore(logCapacity),
	}
}
