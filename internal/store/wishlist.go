package store

import (
	"log"
	"sync"
)

// WishlistStorage is the durable backing for wishlists: a list of
// perfume IDs per session. Implementations must round-trip the list
// exactly.
type WishlistStorage interface {
	Load(sessionID string) ([]string, error)
	Save(sessionID string, ids []string) error
}

// WishlistStore tracks, per session, the set of perfume IDs a customer
// has marked. Memory is the source of truth for the running session;
// the storage backend is written fire-and-forget on every toggle and a
// failure to persist never blocks or fails the toggle itself.
type WishlistStore struct {
	mu      sync.Mutex
	storage WishlistStorage
	sets    map[string][]string
	loaded  map[string]bool
}

// NewWishlistStore constructs a WishlistStore on top of the given
// storage backend.
func NewWishlistStore(storage WishlistStorage) *WishlistStore {
	return &WishlistStore{
		storage: storage,
		sets:    make(map[string][]string),
		loaded:  make(map[string]bool),
	}
}

// ensureLoaded rehydrates the session's wishlist from storage on first
// touch. A missing or unreadable value yields an empty set. Caller
// must hold the lock.
func (s *WishlistStore) ensureLoaded(sessionID string) {
	if s.loaded[sessionID] {
		return
	}
	s.loaded[sessionID] = true

	ids, err := s.storage.Load(sessionID)
	if err != nil {
		log.Printf("[Wishlist] load failed for session %s: %v", sessionID, err)
		return
	}
	s.sets[sessionID] = ids
}

// Toggle flips membership of the perfume ID and reports the new state.
func (s *WishlistStore) Toggle(sessionID, perfumeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	ids := s.sets[sessionID]
	member := false
	for i, id := range ids {
		if id == perfumeID {
			ids = append(ids[:i], ids[i+1:]...)
			member = true
			break
		}
	}
	if !member {
		ids = append(ids, perfumeID)
	}
	s.sets[sessionID] = ids

	if err := s.storage.Save(sessionID, ids); err != nil {
		log.Printf("[Wishlist] save failed for session %s: %v", sessionID, err)
	}

	return !member
}

// IsMember reports whether the perfume ID is on the session's wishlist.
func (s *WishlistStore) IsMember(sessionID, perfumeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	for _, id := range s.sets[sessionID] {
		if id == perfumeID {
			return true
		}
	}
	return false
}

// IDs returns the session's wishlisted perfume IDs in the order they
// were added.
func (s *WishlistStore) IDs(sessionID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	ids := s.sets[sessionID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
