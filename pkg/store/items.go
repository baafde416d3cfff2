package store

import "sync"

// Item is a generic JSON-object resource. The server controls the "id" and
// timestamp fields; everything else is client-supplied.
type Item = map[string]any

// ItemStore is a thread-safe collection of items keyed by ID. Insertion
// order is preserved so that collection listings are deterministic.
type ItemStore struct {
	mu    sync.RWMutex
	items map[string]Item
	order []string
}

// NewItemStore creates an empty ItemStore.
func NewItemStore() *ItemStore {
	return &ItemStore{items: make(map[string]Item)}
}

// Set inserts or replaces the item stored under id.
func (s *ItemStore) Set(id string, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = cloneItem(item)
}

// Get returns a copy of the item stored under id.
func (s *ItemStore) Get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return cloneItem(item), true
}

// Exists reports whether an item is stored under id. Missing keys are not
// errors at this layer; the routing layer decides what a miss means.
func (s *ItemStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[id]
	return ok
}

// Update atomically replaces the item stored under id with fn(existing).
// fn receives a copy, so it may mutate its argument freely. Returns the
// stored result and false when no item exists under id (fn is not called).
func (s *ItemStore) Update(id string, fn func(existing Item) Item) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.items[id]
	if !ok {
		return nil, false
	}
	updated := fn(cloneItem(existing))
	s.items[id] = updated
	return cloneItem(updated), true
}

// Delete removes and returns the item stored under id.
func (s *ItemStore) Delete(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, false
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return item, true
}

// List returns copies of all items in insertion order.
func (s *ItemStore) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, cloneItem(s.items[id]))
	}
	return result
}

// Count returns the number of stored items.
func (s *ItemStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// cloneItem makes a shallow copy so callers never share the stored map.
func cloneItem(item Item) Item {
	c := make(Item, len(item))
	for k, v := range item {
		c[k] = v
	}
	return c
}
