package store

import (
	"encoding/json"
	"fmt"
	"sync"

	bolt "go.etcd.io/bbolt"
)

var wishlistBucket = []byte("wishlists")

// BoltStorage persists wishlists in a bbolt database: one bucket, one
// key per session, value a JSON-encoded list of perfume IDs.
type BoltStorage struct {
	db *bolt.DB
}

// OpenBoltStorage opens (or creates) the bbolt file at path and
// ensures the wishlist bucket exists.
func OpenBoltStorage(path string) (*BoltStorage, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("wishlist storage open: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(wishlistBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("wishlist bucket create: %w", err)
	}

	return &BoltStorage{db: db}, nil
}

// Load reads the session's wishlist. A missing key yields an empty
// list, not an error.
func (s *BoltStorage) Load(sessionID string) ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(wishlistBucket).Get([]byte(sessionID))
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &ids)
	})
	if err != nil {
		return nil, fmt.Errorf("wishlist load: %w", err)
	}
	return ids, nil
}

// Save writes the session's wishlist, replacing any previous value.
func (s *BoltStorage) Save(sessionID string, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("wishlist marshal: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(wishlistBucket).Put([]byte(sessionID), raw)
	})
	if err != nil {
		return fmt.Errorf("wishlist save: %w", err)
	}
	return nil
}

// Close releases the underlying bbolt file.
func (s *BoltStorage) Close() error {
	return s.db.Close()
}

// MemoryStorage is a map-backed WishlistStorage used in tests and as
// the fallback when the durable file cannot be opened.
type MemoryStorage struct {
	mu    sync.Mutex
	lists map[string][]string
}

// NewMemoryStorage constructs an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{lists: make(map[string][]string)}
}

// Load returns the stored list for the session, or nil if absent.
func (s *MemoryStorage) Load(sessionID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.lists[sessionID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

// Save replaces the stored list for the session.
func (s *MemoryStorage) Save(sessionID string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]string, len(ids))
	copy(stored, ids)
	s.lists[sessionID] = stored
	return nil
}
